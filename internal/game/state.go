package game

import "github.com/yileiCS/Game-Quizzical/internal/trivia"

// maxLivesLost ends the match on the third wrong or timed-out answer.
// The count is cumulative: correct answers never reset it.
const maxLivesLost = 3

// PointsFor returns the score for a correct answer at the effective
// difficulty, doubled for the bonus category.
func PointsFor(difficulty string, bonus bool) int {
	points := 1
	switch difficulty {
	case DifficultyMedium:
		points = 2
	case DifficultyHard:
		points = 3
	}
	if bonus {
		points *= 2
	}
	return points
}

// MatchState is the mutable state of one match. It is owned exclusively by
// the Session and replaced wholesale on replay.
type MatchState struct {
	Score            int
	LivesLost        int
	BestScore        int
	HintsRemaining   int
	PausesRemaining  int
	AskHostRemaining int

	BonusCategory     int
	BonusCategoryName string

	queue []trivia.Question
}

// NewMatchState returns initial-match counters with the persisted best score.
func NewMatchState(bestScore int) *MatchState {
	return &MatchState{
		BestScore:        bestScore,
		HintsRemaining:   1,
		PausesRemaining:  1,
		AskHostRemaining: 1,
	}
}
