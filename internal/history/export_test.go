package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokermentor/internal/handid"
)

func TestEntryHidesUnshownCards(t *testing.T) {
	t.Parallel()
	rec, err := NewRecord("1", "tag", "user_1", playFoldedHand(t, 1), time.Now(), time.Now())
	require.NoError(t, err)

	e := rec.Entry()
	assert.Equal(t, handid.Encode(rec.ID), e.ID)
	assert.Equal(t, "tag", e.Opponent)
	assert.Empty(t, e.Villain, "folded hands keep the opponent's cards private")
	assert.Empty(t, e.Made)
	assert.Empty(t, e.Board)
	assert.True(t, e.Won)
	assert.Equal(t, 2, e.Net)
	require.Len(t, e.Actions, len(rec.Actions))
	assert.True(t, strings.HasPrefix(e.Actions[len(e.Actions)-1], "preflop: "), e.Actions)
	assert.Len(t, e.Hole, 4)
}

func TestExportWritesOldestFirst(t *testing.T) {
	t.Parallel()
	store := NewStore(10, nil)
	for seed := int64(1); seed <= 3; seed++ {
		_, err := store.Record("u", "tag", "user_1", playFoldedHand(t, seed), time.Now())
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "hands.jsonl")
	n, err := store.Export("u", path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		ids = append(ids, e.ID)
	}
	require.NoError(t, scanner.Err())

	recent := store.Recent("u", 0)
	require.Len(t, ids, 3)
	assert.Equal(t, handid.Encode(recent[2].ID), ids[0])
	assert.Equal(t, handid.Encode(recent[0].ID), ids[2])
}

func TestExportNothing(t *testing.T) {
	t.Parallel()
	_, err := NewStore(10, nil).Export("nobody", filepath.Join(t.TempDir(), "hands.jsonl"))
	assert.Error(t, err)
}
