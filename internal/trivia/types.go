package trivia

import "errors"

// Open Trivia DB response codes.
const (
	codeSuccess       = 0
	codeNoResults     = 1
	codeInvalidParams = 2
	codeTokenNotFound = 3
	codeTokenEmpty    = 4
	codeRateLimited   = 5
)

var (
	// ErrNoResults means the provider has too few questions for the query.
	ErrNoResults = errors.New("trivia: not enough questions for this query")
	// ErrInvalidParams means the request carried an invalid parameter.
	ErrInvalidParams = errors.New("trivia: invalid request parameters")
	// ErrTokenNotFound means the session token does not exist on the provider.
	ErrTokenNotFound = errors.New("trivia: session token not found")
	// ErrTokenEmpty means the session token has served every question for the
	// query and must be reset.
	ErrTokenEmpty = errors.New("trivia: session token exhausted")
	// ErrRateLimited means the provider rejected the request for pacing.
	ErrRateLimited = errors.New("trivia: rate limited")
	// ErrNoToken is returned by calls that need a session token before
	// Connect has obtained one.
	ErrNoToken = errors.New("trivia: no session token")
)

func responseCodeError(code int) error {
	switch code {
	case codeSuccess:
		return nil
	case codeNoResults:
		return ErrNoResults
	case codeInvalidParams:
		return ErrInvalidParams
	case codeTokenNotFound:
		return ErrTokenNotFound
	case codeTokenEmpty:
		return ErrTokenEmpty
	case codeRateLimited:
		return ErrRateLimited
	default:
		return errors.New("trivia: unknown response code")
	}
}

// Question is one raw multiple-choice question as served by the provider.
// Text fields arrive percent-encoded (encode=url3986) and may carry HTML
// entities underneath; decoding happens once, in the game layer.
type Question struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}
