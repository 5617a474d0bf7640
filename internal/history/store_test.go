// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-workbench/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(op string, at time.Time) types.HistoryRecord {
	return types.HistoryRecord{
		Operation: op,
		Inputs:    []string{"a.pdf", "b.pdf"},
		Outputs:   []string{op + ".pdf"},
		Status:    types.StatusOK,
		StartedAt: at,
		Duration:  1500 * time.Millisecond,
	}
}

func TestRecordAndList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	first, err := store.Record(ctx, record("merge", base))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	failed := record("split", base.Add(time.Minute))
	failed.Status = types.StatusFailed
	failed.Message = "Page range error: page 9 is outside the document (pages 1-5)"
	failed.Outputs = nil
	_, err = store.Record(ctx, failed)
	require.NoError(t, err)

	got, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "split", got[0].Operation)
	assert.Equal(t, types.StatusFailed, got[0].Status)
	assert.Equal(t, failed.Message, got[0].Message)
	assert.Empty(t, got[0].Outputs)

	assert.Equal(t, "merge", got[1].Operation)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, got[1].Inputs)
	assert.Equal(t, []string{"merge.pdf"}, got[1].Outputs)
	assert.Equal(t, 1500*time.Millisecond, got[1].Duration)
	assert.True(t, base.Equal(got[1].StartedAt))
}

func TestList_Limit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, record("rotate", base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	got, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].StartedAt.After(got[1].StartedAt))
}

func TestRecord_NoOperation(t *testing.T) {
	_, err := testStore(t).Record(context.Background(), types.HistoryRecord{})
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	_, err := store.Record(ctx, record("merge", time.Now()))
	require.NoError(t, err)

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	_, err := store.Record(ctx, record("decrypt", time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, &buf, 0))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "decrypt", got[0]["operation"])
	assert.Equal(t, "ok", got[0]["status"])
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, types.StatusOK, StatusOf(types.BatchResult{Succeeded: 2}))
	assert.Equal(t, types.StatusPartial, StatusOf(types.BatchResult{Succeeded: 1, Failed: 1}))
	assert.Equal(t, types.StatusFailed, StatusOf(types.BatchResult{Failed: 2}))
}
