package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rnacentral/pipeline-setup/pkg/adapters/file"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements AnswerStore
var _ ports.AnswerStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunAnswerStoreContract(t, store)
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "does-not-exist"))
	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestFileStore_RejectsPathIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	err := store.Save(ctx, &domain.Run{ID: "../escape"})
	assert.Error(t, err)

	_, err = store.Load(ctx, "")
	assert.Error(t, err)
}

func TestFileStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Run{ID: "r27", Pipeline: domain.Answers{"release": "27"}}))
	require.NoError(t, store.Save(ctx, &domain.Run{ID: "r27", Pipeline: domain.Answers{"release": "28"}}))

	run, err := store.Load(ctx, "r27")
	require.NoError(t, err)
	assert.Equal(t, "28", run.Pipeline["release"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestWriteAtomic_Permissions(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "run.sh")
	require.NoError(t, file.WriteAtomic(dest, []byte("#!/bin/bash\n"), 0o755))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\n", string(data))
}
