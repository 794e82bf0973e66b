package game

import (
	"errors"
	"html"
	"math/rand"
	"net/url"

	"github.com/yileiCS/Game-Quizzical/internal/trivia"
)

// Difficulty constants for readability.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ErrInvalidQuestion is returned for provider payloads that cannot be played.
var ErrInvalidQuestion = errors.New("game: question must carry exactly 3 incorrect answers")

// Playable is a question ready for display: text decoded once, answers under
// a single creation-time shuffle. Answers mutates at most once (hint use) and
// HintBudget only ever drops to 0.
type Playable struct {
	Category   string
	Text       string
	Answers    []string
	Correct    string
	Difficulty string
	HintBudget int
	IsBonus    bool
}

// ProcessQuestion normalizes a raw provider question. The provider sends
// url3986 percent-encoded text that may still carry HTML entities, so both
// decodes happen here, exactly once; everything downstream sees readable text.
func ProcessQuestion(rng *rand.Rand, raw *trivia.Question, bonusCategory string) (*Playable, error) {
	if raw == nil || len(raw.IncorrectAnswers) != 3 {
		return nil, ErrInvalidQuestion
	}

	correct := decodeText(raw.CorrectAnswer)
	answers := make([]string, 0, len(raw.IncorrectAnswers)+1)
	for _, a := range raw.IncorrectAnswers {
		answers = append(answers, decodeText(a))
	}
	answers = append(answers, correct)
	rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	category := decodeText(raw.Category)
	return &Playable{
		Category:   category,
		Text:       decodeText(raw.Question),
		Answers:    answers,
		Correct:    correct,
		Difficulty: raw.Difficulty,
		HintBudget: 1,
		IsBonus:    bonusCategory != "" && category == bonusCategory,
	}, nil
}

// UseHint removes half (rounded down) of the incorrect answers at random,
// never the correct one, and reshuffles the survivors. Returns false when the
// budget is spent; the answer set is then left untouched.
func (p *Playable) UseHint(rng *rand.Rand) bool {
	if p.HintBudget <= 0 {
		return false
	}
	p.HintBudget = 0

	incorrect := make([]string, 0, len(p.Answers)-1)
	for _, a := range p.Answers {
		if a != p.Correct {
			incorrect = append(incorrect, a)
		}
	}
	removeCount := len(incorrect) / 2
	if removeCount == 0 {
		return true
	}
	rng.Shuffle(len(incorrect), func(i, j int) {
		incorrect[i], incorrect[j] = incorrect[j], incorrect[i]
	})
	answers := append(incorrect[:len(incorrect)-removeCount], p.Correct)
	rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	p.Answers = answers
	return true
}

func decodeText(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	return html.UnescapeString(s)
}
