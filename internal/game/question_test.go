package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yileiCS/Game-Quizzical/internal/trivia"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func validRaw() *trivia.Question {
	return &trivia.Question{
		Category:         "General%20Knowledge",
		Difficulty:       DifficultyMedium,
		Question:         "What%20is%202%2B2%3F",
		CorrectAnswer:    "4",
		IncorrectAnswers: []string{"3", "5", "22"},
	}
}

func TestProcessQuestionRejectsInvalidShapes(t *testing.T) {
	rng := testRNG()

	_, err := ProcessQuestion(rng, nil, "")
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	short := validRaw()
	short.IncorrectAnswers = short.IncorrectAnswers[:2]
	for i := 0; i < 3; i++ {
		_, err = ProcessQuestion(rng, short, "")
		assert.ErrorIs(t, err, ErrInvalidQuestion, "invalid input stays invalid on retry")
	}

	long := validRaw()
	long.IncorrectAnswers = append(long.IncorrectAnswers, "extra")
	_, err = ProcessQuestion(rng, long, "")
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestProcessQuestionBuildsAnswerSet(t *testing.T) {
	q, err := ProcessQuestion(testRNG(), validRaw(), "")
	require.NoError(t, err)

	assert.Len(t, q.Answers, 4)
	assert.ElementsMatch(t, []string{"3", "4", "5", "22"}, q.Answers)
	assert.Contains(t, q.Answers, q.Correct)
	assert.Equal(t, "4", q.Correct)
	assert.Equal(t, 1, q.HintBudget)
}

func TestProcessQuestionDecodesTextOnce(t *testing.T) {
	raw := validRaw()
	raw.Question = "Caf%C3%A9%20%26amp%3B%20Bar%3F"
	raw.CorrectAnswer = "Fish%20%26%20Chips"
	raw.IncorrectAnswers = []string{"a", "b", "c"}

	q, err := ProcessQuestion(testRNG(), raw, "")
	require.NoError(t, err)
	assert.Equal(t, "Café & Bar?", q.Text)
	assert.Equal(t, "Fish & Chips", q.Correct)
	assert.Equal(t, "General Knowledge", q.Category)
}

func TestProcessQuestionBonusFlag(t *testing.T) {
	q, err := ProcessQuestion(testRNG(), validRaw(), "General Knowledge")
	require.NoError(t, err)
	assert.True(t, q.IsBonus)

	q, err = ProcessQuestion(testRNG(), validRaw(), "Film")
	require.NoError(t, err)
	assert.False(t, q.IsBonus)

	q, err = ProcessQuestion(testRNG(), validRaw(), "")
	require.NoError(t, err)
	assert.False(t, q.IsBonus, "no bonus category selected")
}

func TestUseHintRemovesOneIncorrectAnswer(t *testing.T) {
	rng := testRNG()
	q, err := ProcessQuestion(rng, validRaw(), "")
	require.NoError(t, err)

	require.True(t, q.UseHint(rng))
	assert.Len(t, q.Answers, 3, "floor(3/2)=1 incorrect answer removed")
	assert.Contains(t, q.Answers, q.Correct, "the correct answer survives")
	assert.Equal(t, 0, q.HintBudget)

	before := append([]string(nil), q.Answers...)
	assert.False(t, q.UseHint(rng), "second hint is a no-op")
	assert.Equal(t, before, q.Answers)
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 1, PointsFor(DifficultyEasy, false))
	assert.Equal(t, 2, PointsFor(DifficultyMedium, false))
	assert.Equal(t, 3, PointsFor(DifficultyHard, false))
	assert.Equal(t, 6, PointsFor(DifficultyHard, true))
	assert.Equal(t, 2, PointsFor(DifficultyEasy, true))
	assert.Equal(t, 1, PointsFor("unknown", false), "unrecognized difficulty scores as easy")
}
