package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage recorded answer sessions",
	Long:  `List, inspect and remove the answer sets recorded by previous runs.`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := requireStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		ids, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs found.")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the answers of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := requireStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		run, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load run %s: %w", args[0], err)
		}
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>...",
	Short: "Remove one or more recorded runs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := requireStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		failed := 0
		for _, id := range args {
			if err := store.Delete(cmd.Context(), id); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error removing '%s': %v\n", id, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed run '%s'\n", id)
		}
		if failed > 0 {
			return fmt.Errorf("%d run(s) could not be removed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
}
