package experiment

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreInsertAndAggregate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	results := []Result{
		{NumBlocks: 3, Config: ConfigBaseline, Run: 0, Success: true, Iterations: 4},
		{NumBlocks: 3, Config: ConfigBaseline, Run: 1, Success: true, Iterations: 6},
		{NumBlocks: 3, Config: ConfigEnhanced, Run: 0, Success: true, Iterations: 2},
		{NumBlocks: 4, Config: ConfigEnhanced, Run: 0, Success: false, Iterations: 25},
	}
	require.NoError(t, store.InsertAll(ctx, "gpt-4o", results))

	means, err := store.MeanIterations(ctx, "gpt-4o")
	require.NoError(t, err)
	require.Len(t, means, 3)

	assert.Equal(t, Mean{NumBlocks: 3, Config: ConfigBaseline, Iterations: 5}, means[0])
	assert.Equal(t, Mean{NumBlocks: 3, Config: ConfigEnhanced, Iterations: 2}, means[1])
	assert.Equal(t, Mean{NumBlocks: 4, Config: ConfigEnhanced, Iterations: 25}, means[2])
}

func TestStoreSeparatesModels(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "gpt-4o",
		Result{NumBlocks: 3, Config: ConfigBaseline, Run: 0, Success: true, Iterations: 3}))
	require.NoError(t, store.Insert(ctx, "llama3.1:8b",
		Result{NumBlocks: 3, Config: ConfigBaseline, Run: 0, Success: false, Iterations: 9}))

	means, err := store.MeanIterations(ctx, "gpt-4o")
	require.NoError(t, err)
	require.Len(t, means, 1)
	assert.Equal(t, float64(3), means[0].Iterations)
}

func TestStoreEmptyModel(t *testing.T) {
	store := openTestStore(t)

	means, err := store.MeanIterations(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, means)
}
