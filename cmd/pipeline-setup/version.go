package main

import (
	"fmt"
	"strings"

	pipelinesetup "github.com/rnacentral/pipeline-setup"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pipeline-setup",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pipeline-setup version %s\n", strings.TrimSpace(pipelinesetup.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
