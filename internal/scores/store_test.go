package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(filepath.Join(dir, "best_score.txt"), filepath.Join(dir, "rankingboard.yaml"), zerolog.Nop())
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	assert.Equal(t, 0, store.BestScore(), "missing file reads as zero")
	require.NoError(t, store.SaveBestScore(42))
	assert.Equal(t, 42, store.BestScore())
}

func TestBestScoreCorruptFile(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.bestPath, []byte("not a number"), 0o644))
	assert.Equal(t, 0, store.BestScore())
}

func TestSaveRankingOrdersDescending(t *testing.T) {
	store := tempStore(t)

	inputs := []Entry{
		{Name: "ada", Score: 50},
		{Name: "bob", Score: 80},
		{Name: "cleo", Score: 30},
		{Name: "dai", Score: 80},
	}
	var board []Entry
	var err error
	for _, in := range inputs {
		board, err = store.SaveRanking(in.Name, in.Score)
		require.NoError(t, err)
	}

	require.Len(t, board, 4)
	scores := []int{board[0].Score, board[1].Score, board[2].Score, board[3].Score}
	assert.Equal(t, []int{80, 80, 50, 30}, scores)
	// Tie order between equal scores is unspecified.
	assert.ElementsMatch(t, []string{"bob", "dai"}, []string{board[0].Name, board[1].Name})

	// Reload from disk matches what SaveRanking returned.
	assert.Equal(t, board, store.Board())
}

func TestSaveRankingTruncatesToTen(t *testing.T) {
	store := tempStore(t)

	var board []Entry
	var err error
	for i := 1; i <= 15; i++ {
		board, err = store.SaveRanking(fmt.Sprintf("player-%d", i), i)
		require.NoError(t, err)
	}

	require.Len(t, board, MaxBoardEntries)
	assert.Equal(t, 15, board[0].Score)
	assert.Equal(t, 6, board[len(board)-1].Score, "lowest survivors are the ten best")
	assert.Len(t, store.Board(), MaxBoardEntries)
}

func TestSaveRankingBoundsName(t *testing.T) {
	store := tempStore(t)

	board, err := store.SaveRanking("", 10)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", board[0].Name)

	long := "abcdefghijklmnopqrstuvwxyz"
	board, err = store.SaveRanking(long, 20)
	require.NoError(t, err)
	assert.Equal(t, long[:MaxNameLength], board[0].Name)

	// Truncation counts runes, never splitting a multibyte character.
	wide := "ééééééééééééééééééééééééé"
	board, err = store.SaveRanking(wide, 30)
	require.NoError(t, err)
	assert.Equal(t, "éééééééééééééééééééé", board[0].Name)
	assert.True(t, utf8.ValidString(board[0].Name))
}

func TestBoardCorruptFileDegradesToEmpty(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.boardPath, []byte(":\tnot yaml ["), 0o644))
	assert.Empty(t, store.Board())

	// A later save starts a fresh board rather than failing.
	board, err := store.SaveRanking("ada", 5)
	require.NoError(t, err)
	assert.Len(t, board, 1)
}
