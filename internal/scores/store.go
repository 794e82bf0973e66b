package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// MaxBoardEntries caps the persisted ranking board.
const MaxBoardEntries = 10

// MaxNameLength bounds the display name saved with a score.
const MaxNameLength = 20

// Entry is one ranking-board row.
type Entry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// FileStore persists the best score and the ranking board to local files.
// The best score is a single integer; the board is a YAML list rewritten
// whole on every update. Unreadable files degrade to zero/empty so a broken
// disk never aborts a match.
type FileStore struct {
	bestPath  string
	boardPath string
	logger    zerolog.Logger
}

func NewFileStore(bestPath, boardPath string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		bestPath:  bestPath,
		boardPath: boardPath,
		logger:    logger,
	}
}

// BestScore loads the persisted best score, or 0 when absent or unreadable.
func (s *FileStore) BestScore() int {
	data, err := os.ReadFile(s.bestPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.bestPath).Msg("best score unreadable")
		}
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		s.logger.Warn().Str("path", s.bestPath).Msg("best score corrupted, treating as 0")
		return 0
	}
	return score
}

// SaveBestScore rewrites the best-score file. Callers only invoke it when the
// score is a new high.
func (s *FileStore) SaveBestScore(score int) error {
	if err := os.WriteFile(s.bestPath, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// Board loads the persisted ranking board, descending by score. Missing or
// corrupt files yield an empty board.
func (s *FileStore) Board() []Entry {
	data, err := os.ReadFile(s.boardPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.boardPath).Msg("ranking board unreadable")
		}
		return nil
	}
	var board []Entry
	if err := yaml.Unmarshal(data, &board); err != nil {
		s.logger.Warn().Err(err).Str("path", s.boardPath).Msg("ranking board corrupted, starting fresh")
		return nil
	}
	return board
}

// SaveRanking inserts a score, re-sorts descending, truncates to the top 10
// and rewrites the whole board file. The resulting board is returned even if
// the write fails, so callers can still display it.
func (s *FileStore) SaveRanking(name string, score int) ([]Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Anonymous"
	}
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}

	board := append(s.Board(), Entry{Name: name, Score: score})
	sort.SliceStable(board, func(i, j int) bool { return board[i].Score > board[j].Score })
	if len(board) > MaxBoardEntries {
		board = board[:MaxBoardEntries]
	}

	data, err := yaml.Marshal(board)
	if err != nil {
		return board, fmt.Errorf("encode ranking board: %w", err)
	}
	if err := os.WriteFile(s.boardPath, data, 0o644); err != nil {
		return board, fmt.Errorf("save ranking board: %w", err)
	}
	return board, nil
}
