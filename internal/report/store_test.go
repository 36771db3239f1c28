// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/incipit-engine/internal/rewrite"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rep := &rewrite.Report{NotesTotal: 3, NotesRewritten: 2}
	rep.Warnings = append(rep.Warnings, rewrite.Warning{NoteIndex: 3, Reason: "citation did not match any known shape; raw text retained"})

	id, err := s.Record(ctx, "osheroff-draft", "chicago", rep)
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, "osheroff-draft", runs[0].Document)
	assert.Equal(t, "chicago", runs[0].Style)
	assert.Equal(t, 3, runs[0].NotesTotal)
	assert.Equal(t, 2, runs[0].NotesRewritten)
	assert.Equal(t, 1, runs[0].NotesDegraded)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, doc := range []string{"first", "second", "third"} {
		_, err := s.Record(ctx, doc, "chicago", &rewrite.Report{NotesTotal: 1, NotesRewritten: 1})
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].Document)
	assert.Equal(t, "second", runs[1].Document)
}

func TestWarnings(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rep := &rewrite.Report{NotesTotal: 2}
	rep.Warnings = []rewrite.Warning{
		{NoteIndex: 2, Reason: "second"},
		{NoteIndex: 1, Reason: "first"},
	}
	id, err := s.Record(ctx, "doc", "ama", rep)
	require.NoError(t, err)

	warnings, err := s.Warnings(ctx, id)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	// Ordered by note index regardless of insertion order.
	assert.Equal(t, 1, warnings[0].NoteIndex)
	assert.Equal(t, "first", warnings[0].Reason)
	assert.Equal(t, 2, warnings[1].NoteIndex)
}

func TestWarningsUnknownRun(t *testing.T) {
	s := testStore(t)
	warnings, err := s.Warnings(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
