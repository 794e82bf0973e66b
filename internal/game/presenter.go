package game

import (
	"context"
	"time"

	"github.com/yileiCS/Game-Quizzical/internal/scores"
	"github.com/yileiCS/Game-Quizzical/internal/trivia"
)

// CommandKind enumerates what the player asked for during a question.
type CommandKind int

const (
	// CmdNone means no key arrived within the read timeout.
	CmdNone CommandKind = iota
	CmdUp
	CmdDown
	// CmdEnter selects the currently highlighted answer.
	CmdEnter
	// CmdSelect carries a 1-based answer number in Command.Index.
	CmdSelect
	CmdHint
	CmdPause
	CmdAsk
	CmdQuit
)

// Command is one decoded player input.
type Command struct {
	Kind  CommandKind
	Index int
}

// Tone colors a message.
type Tone int

const (
	ToneNormal Tone = iota
	ToneCorrect
	ToneWrong
	ToneHighlight
)

// View is everything the presenter needs to draw the in-question screen.
type View struct {
	Score     int
	BestScore int
	TimeLeft  int

	Category   string
	Difficulty string
	IsBonus    bool
	Question   string
	Answers    []string
	Selected   int

	HintsRemaining   int
	PausesRemaining  int
	AskHostRemaining int

	Message     string
	MessageTone Tone
}

// CategoryOption is one bonus-category candidate shown to the player.
type CategoryOption struct {
	ID   int
	Name string
}

// Presenter is the capability boundary to the screen and keyboard. The
// session never touches the terminal directly.
type Presenter interface {
	// Greet shows the pre-game banner.
	Greet()
	// PromptStart waits in the lobby; false means leave the game.
	PromptStart() bool
	// Render paints the in-question screen.
	Render(v View)
	// ReadCommand returns the next decoded input, or CmdNone after timeout
	// so the caller can refresh the countdown.
	ReadCommand(timeout time.Duration) Command
	// PromptDifficulty returns the chosen difficulty; ok=false means quit.
	PromptDifficulty() (difficulty string, ok bool)
	// PromptBonusCategory returns an index into options; ok=false means quit.
	PromptBonusCategory(options []CategoryOption) (index int, ok bool)
	// PromptName collects a display name of at most 20 characters.
	PromptName() string
	ShowMessage(text string, tone Tone)
	// ShowPaused renders the blocking pause window countdown.
	ShowPaused(secondsLeft int)
	ShowGameOver(finalScore int)
	ShowRankingBoard(entries []scores.Entry)
	PromptReplay() bool
}

// QuestionSource supplies raw question batches and the category list, and
// owns the provider session-token lifecycle.
type QuestionSource interface {
	Categories(ctx context.Context) (map[int]string, error)
	FetchBatch(ctx context.Context, amount, category int) ([]trivia.Question, error)
	RefreshToken(ctx context.Context) error
}

// ScoreStore persists the best score and the ranking board.
type ScoreStore interface {
	BestScore() int
	SaveBestScore(score int) error
	SaveRanking(name string, score int) ([]scores.Entry, error)
}
