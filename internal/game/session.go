package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yileiCS/Game-Quizzical/internal/trivia"
)

// ErrNoQuestions means the provider returned an empty batch even after a
// token refresh.
var ErrNoQuestions = errors.New("game: no questions available")

const bonusCategoryChoices = 4

// askHostConfidence is the per-difficulty chance the host reveals the
// correct answer.
func askHostConfidence(difficulty string) float64 {
	switch difficulty {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 0.3
	default:
		return 0.5
	}
}

// Config carries the gameplay knobs the session needs at construction.
type Config struct {
	AnswerTimeLimit time.Duration
	PauseGrant      time.Duration
	BatchSize       int

	// TickInterval is the countdown granularity; InputPoll bounds how long a
	// single input read may block so the visible countdown stays fresh.
	// Production uses the defaults (1s / 100ms); tests shorten both.
	TickInterval time.Duration
	InputPoll    time.Duration
}

func (c *Config) withDefaults() {
	if c.AnswerTimeLimit <= 0 {
		c.AnswerTimeLimit = 20 * time.Second
	}
	if c.PauseGrant <= 0 {
		c.PauseGrant = 60 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 30
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.InputPoll <= 0 {
		c.InputPoll = 100 * time.Millisecond
	}
}

// Session drives matches one question at a time: difficulty selection, the
// answer loop with its hint/pause/ask sub-commands, scoring, life loss, and
// the game-over/replay transitions. It owns the MatchState exclusively.
type Session struct {
	cfg       Config
	source    QuestionSource
	store     ScoreStore
	presenter Presenter
	rng       *rand.Rand
	logger    zerolog.Logger

	timer *Countdown
	state *MatchState
}

func NewSession(cfg Config, source QuestionSource, store ScoreStore, presenter Presenter, rng *rand.Rand, logger zerolog.Logger) *Session {
	cfg.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		cfg:       cfg,
		source:    source,
		store:     store,
		presenter: presenter,
		rng:       rng,
		logger:    logger,
		timer:     NewCountdown(cfg.TickInterval),
	}
}

type matchOutcome int

const (
	// matchSetupFailed sends the player back to the lobby prompt.
	matchSetupFailed matchOutcome = iota
	// matchReplay starts a fresh match through category selection again.
	matchReplay
	// matchDone ends the process-level game loop.
	matchDone
)

type questionResult int

const (
	resultCorrect questionResult = iota
	resultWrong
	resultQuit
)

// Run is the process-level game loop: greeting, lobby, matches, replays.
func (s *Session) Run(ctx context.Context) error {
	s.presenter.Greet()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.presenter.PromptStart() {
			return nil
		}
		for {
			outcome := s.playMatch(ctx)
			if outcome == matchReplay {
				continue
			}
			if outcome == matchDone {
				return ctx.Err()
			}
			break // back to the lobby
		}
	}
}

// playMatch runs match setup and, if it succeeds, the match itself.
func (s *Session) playMatch(ctx context.Context) matchOutcome {
	logger := s.logger.With().Str("match_id", uuid.NewString()).Logger()

	categories, err := s.source.Categories(ctx)
	if err != nil || len(categories) == 0 {
		logger.Warn().Err(err).Msg("category fetch failed")
		s.presenter.ShowMessage("Failed to get categories!", ToneWrong)
		return matchSetupFailed
	}

	options := s.sampleCategories(categories, bonusCategoryChoices)
	index, ok := s.presenter.PromptBonusCategory(options)
	if !ok || index < 0 || index >= len(options) {
		return matchSetupFailed
	}
	bonus := options[index]

	state := NewMatchState(s.store.BestScore())
	state.BonusCategory = bonus.ID
	state.BonusCategoryName = bonus.Name

	batch, err := s.fetchBatch(ctx, bonus.ID)
	if err != nil {
		logger.Warn().Err(err).Int("category", bonus.ID).Msg("question fetch failed")
		s.presenter.ShowMessage("Failed to obtain questions, please try again later", ToneWrong)
		return matchSetupFailed
	}
	state.queue = batch
	s.state = state

	logger.Info().
		Int("category", bonus.ID).
		Str("category_name", bonus.Name).
		Int("questions", len(batch)).
		Msg("match started")
	return s.runMatch(ctx, logger)
}

// runMatch loops questions until quit, the third lost life, or an exhausted
// question supply.
func (s *Session) runMatch(ctx context.Context, logger zerolog.Logger) matchOutcome {
	state := s.state
	for {
		if err := ctx.Err(); err != nil {
			return matchDone
		}
		if len(state.queue) == 0 {
			batch, err := s.fetchBatch(ctx, state.BonusCategory)
			if err != nil {
				logger.Warn().Err(err).Msg("batch refill failed, match ends")
				break
			}
			state.queue = batch
		}

		raw := state.queue[0]
		state.queue = state.queue[1:]

		// The player picks the next question's difficulty before seeing it;
		// the final question of the batch keeps the provider's.
		if len(state.queue) > 0 {
			difficulty, ok := s.presenter.PromptDifficulty()
			if !ok {
				return s.finalize(logger)
			}
			raw.Difficulty = difficulty
		}

		question, err := ProcessQuestion(s.rng, &raw, state.BonusCategoryName)
		if err != nil {
			logger.Debug().Err(err).Msg("discarding unplayable question")
			continue
		}

		switch s.playQuestion(ctx, logger, question) {
		case resultQuit:
			return s.finalize(logger)
		case resultWrong:
			if state.LivesLost >= maxLivesLost {
				s.presenter.ShowGameOver(state.Score)
				return s.finalize(logger)
			}
		}
	}
	s.presenter.ShowGameOver(state.Score)
	return s.finalize(logger)
}

// playQuestion runs the answer-collection loop for one question: countdown
// concurrent with input, sub-commands checked against their one-shot
// counters, and a single scoring transition on selection or expiry.
func (s *Session) playQuestion(ctx context.Context, logger zerolog.Logger, q *Playable) questionResult {
	state := s.state
	s.timer.Start(int(s.cfg.AnswerTimeLimit / time.Second))
	defer s.timer.Cancel()

	selected := 0
	message := ""
	tone := ToneNormal
	for {
		if ctx.Err() != nil {
			return resultQuit
		}
		if s.timer.Remaining() <= 0 {
			return s.scoreAnswer(logger, q, -1)
		}
		s.presenter.Render(s.view(q, selected, message, tone))

		cmd := s.presenter.ReadCommand(s.cfg.InputPoll)
		switch cmd.Kind {
		case CmdNone:
			// Timed-out read; loop to refresh the countdown.
		case CmdUp:
			if selected > 0 {
				selected--
			}
		case CmdDown:
			if selected < len(q.Answers)-1 {
				selected++
			}
		case CmdQuit:
			return resultQuit
		case CmdEnter:
			return s.scoreAnswer(logger, q, selected)
		case CmdSelect:
			if cmd.Index < 1 || cmd.Index > len(q.Answers) {
				message = fmt.Sprintf("Please enter 1-%d, H for hint, or Q to quit", len(q.Answers))
				tone = ToneHighlight
				continue
			}
			return s.scoreAnswer(logger, q, cmd.Index-1)
		case CmdHint:
			if state.HintsRemaining <= 0 {
				message, tone = "No hints remaining!", ToneHighlight
				continue
			}
			if q.UseHint(s.rng) {
				state.HintsRemaining--
				selected = 0
				message, tone = "Hint used! Half of the wrong answers are gone.", ToneHighlight
			}
		case CmdPause:
			if state.PausesRemaining <= 0 {
				message, tone = "No pauses remaining!", ToneHighlight
				continue
			}
			state.PausesRemaining--
			s.pause(ctx)
		case CmdAsk:
			if state.AskHostRemaining <= 0 {
				message, tone = "The host already answered once!", ToneHighlight
				continue
			}
			state.AskHostRemaining--
			message, tone = s.askHost(q), ToneHighlight
		}
	}
}

// scoreAnswer applies the Scoring transition. index -1 means no answer was
// given before the timer expired.
func (s *Session) scoreAnswer(logger zerolog.Logger, q *Playable, index int) questionResult {
	state := s.state
	if index >= 0 && index < len(q.Answers) && q.Answers[index] == q.Correct {
		points := PointsFor(q.Difficulty, q.IsBonus)
		state.Score += points
		text := fmt.Sprintf("Correct! (+%d points)", points)
		if q.IsBonus {
			text += "\nDouble points for the bonus category!"
		}
		s.presenter.ShowMessage(text, ToneCorrect)
		if state.Score > state.BestScore {
			state.BestScore = state.Score
			if err := s.store.SaveBestScore(state.Score); err != nil {
				logger.Warn().Err(err).Msg("best score not persisted")
			}
		}
		logger.Info().Int("points", points).Int("score", state.Score).Msg("correct answer")
		return resultCorrect
	}

	state.LivesLost++
	if index < 0 {
		s.presenter.ShowMessage("Time's up!\nThe answer is: "+q.Correct, ToneWrong)
	} else {
		s.presenter.ShowMessage("Wrong!\nThe answer is: "+q.Correct, ToneWrong)
	}
	logger.Info().Int("lives_lost", state.LivesLost).Bool("timeout", index < 0).Msg("wrong answer")
	return resultWrong
}

// pause suspends the countdown, adds the pause grant, and blocks for the
// grant's wall-clock window. No other input is serviced until it elapses.
func (s *Session) pause(ctx context.Context) {
	s.timer.Pause()
	s.timer.Grant(int(s.cfg.PauseGrant / time.Second))
	deadline := time.Now().Add(s.cfg.PauseGrant)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			break
		}
		s.presenter.ShowPaused(int(left/time.Second) + 1)
		wait := time.Second
		if left < wait {
			wait = left
		}
		select {
		case <-ctx.Done():
			s.timer.Resume()
			return
		case <-time.After(wait):
		}
	}
	s.timer.Resume()
}

// askHost produces the host's probabilistic guess. Flavor only: it never
// touches score or answers.
func (s *Session) askHost(q *Playable) string {
	confidence := askHostConfidence(q.Difficulty)
	if s.rng.Float64() < confidence {
		return fmt.Sprintf("Host: I'm %d%% sure it's %q", int(confidence*100), q.Correct)
	}
	if s.rng.Float64() < 0.5 {
		incorrect := make([]string, 0, len(q.Answers))
		for _, a := range q.Answers {
			if a != q.Correct {
				incorrect = append(incorrect, a)
			}
		}
		if len(incorrect) > 0 {
			pick := incorrect[s.rng.Intn(len(incorrect))]
			return fmt.Sprintf("Host: I think it's %q but I'm not sure...", pick)
		}
	}
	return "Host: Sorry, I have no idea..."
}

// finalize is the single exit funnel for a match: record the score on the
// ranking board, show it, then offer a replay.
func (s *Session) finalize(logger zerolog.Logger) matchOutcome {
	state := s.state
	name := s.presenter.PromptName()
	board, err := s.store.SaveRanking(name, state.Score)
	if err != nil {
		logger.Warn().Err(err).Msg("ranking board not persisted")
	}
	s.presenter.ShowRankingBoard(board)
	logger.Info().Int("final_score", state.Score).Msg("match finished")

	if s.presenter.PromptReplay() {
		return matchReplay
	}
	return matchDone
}

// fetchBatch pulls a question batch for the category, falling back to one
// token refresh when the first attempt yields nothing.
func (s *Session) fetchBatch(ctx context.Context, category int) ([]trivia.Question, error) {
	batch, err := s.source.FetchBatch(ctx, s.cfg.BatchSize, category)
	if err == nil && len(batch) > 0 {
		return batch, nil
	}
	if refreshErr := s.source.RefreshToken(ctx); refreshErr != nil {
		return nil, fmt.Errorf("refresh session token: %w", refreshErr)
	}
	batch, err = s.source.FetchBatch(ctx, s.cfg.BatchSize, category)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, ErrNoQuestions
	}
	return batch, nil
}

// sampleCategories picks n distinct categories uniformly at random.
func (s *Session) sampleCategories(categories map[int]string, n int) []CategoryOption {
	options := make([]CategoryOption, 0, len(categories))
	for id, name := range categories {
		options = append(options, CategoryOption{ID: id, Name: name})
	}
	// Map order is random but not uniformly so; sort then shuffle.
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	if len(options) > n {
		options = options[:n]
	}
	return options
}

func (s *Session) view(q *Playable, selected int, message string, tone Tone) View {
	state := s.state
	return View{
		Score:            state.Score,
		BestScore:        state.BestScore,
		TimeLeft:         s.timer.Remaining(),
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		IsBonus:          q.IsBonus,
		Question:         q.Text,
		Answers:          q.Answers,
		Selected:         selected,
		HintsRemaining:   state.HintsRemaining,
		PausesRemaining:  state.PausesRemaining,
		AskHostRemaining: state.AskHostRemaining,
		Message:          message,
		MessageTone:      tone,
	}
}
