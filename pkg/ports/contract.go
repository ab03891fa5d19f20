package ports

import (
	"context"
	"testing"
	"time"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAnswerStoreContract runs a suite of tests to verify that an AnswerStore implementation
// adheres to the defined interface contract.
func RunAnswerStoreContract(t *testing.T, store AnswerStore) {
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	newRun := func(id string) *domain.Run {
		return &domain.Run{
			ID:        id,
			Databases: domain.Answers{"ena": true, "ensembl": false},
			Pipeline:  domain.Answers{"release": "27", "qa": true, "qa.rfam.run": false},
			CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun(runID)

		err := store.Save(ctx, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, runID, loaded.ID)
		assert.Equal(t, run.Databases, loaded.Databases)
		assert.Equal(t, run.Pipeline, loaded.Pipeline)
		assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRun(runID)))

		err := store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		require.NoError(t, store.Save(ctx, newRun(id1)))
		require.NoError(t, store.Save(ctx, newRun(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
