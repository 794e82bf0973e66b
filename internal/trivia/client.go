package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

const incorrectAnswersPerQuestion = 3

// Client fetches questions from the Open Trivia DB (no API key) and owns the
// session-token lifecycle: the token guarantees no duplicate questions until
// the provider reports it exhausted, at which point the client resets it once
// in-flight and retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	attempts   int
	delay      time.Duration
	logger     zerolog.Logger

	mu    sync.Mutex
	token string
}

// ClientOptions tunes the retry policy and logging.
type ClientOptions struct {
	RetryAttempts int           // total attempts per call, default 3
	RetryDelay    time.Duration // fixed delay between attempts, default 1s
	Logger        zerolog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, opts ClientOptions) *Client {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if opts.RetryAttempts <= 0 {
		opts.RetryAttempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		attempts:   opts.RetryAttempts,
		delay:      opts.RetryDelay,
		logger:     opts.Logger,
	}
}

type tokenResponse struct {
	ResponseCode int    `json:"response_code"`
	Token        string `json:"token"`
}

type questionsResponse struct {
	ResponseCode int        `json:"response_code"`
	Results      []Question `json:"results"`
}

type categoriesResponse struct {
	TriviaCategories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"trivia_categories"`
}

// Connect requests the session token. The game cannot start without one.
func (c *Client) Connect(ctx context.Context) error {
	var payload tokenResponse
	if err := c.getJSON(ctx, "/api_token.php", url.Values{"command": {"request"}}, &payload); err != nil {
		return fmt.Errorf("request session token: %w", err)
	}
	if err := responseCodeError(payload.ResponseCode); err != nil {
		return fmt.Errorf("request session token: %w", err)
	}
	c.mu.Lock()
	c.token = payload.Token
	c.mu.Unlock()
	return nil
}

// RefreshToken discards the current session token and requests a new one.
func (c *Client) RefreshToken(ctx context.Context) error {
	return c.Connect(ctx)
}

// resetToken asks the provider to reset the current token in place, making
// every question available again.
func (c *Client) resetToken(ctx context.Context) error {
	token := c.currentToken()
	if token == "" {
		return ErrNoToken
	}
	var payload tokenResponse
	values := url.Values{"command": {"reset"}, "token": {token}}
	if err := c.getJSON(ctx, "/api_token.php", values, &payload); err != nil {
		return fmt.Errorf("reset session token: %w", err)
	}
	if err := responseCodeError(payload.ResponseCode); err != nil {
		return fmt.Errorf("reset session token: %w", err)
	}
	return nil
}

// Categories returns the provider's category listing as id -> name.
func (c *Client) Categories(ctx context.Context) (map[int]string, error) {
	var payload categoriesResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.getJSON(ctx, "/api_category.php", nil, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	categories := make(map[int]string, len(payload.TriviaCategories))
	for _, cat := range payload.TriviaCategories {
		categories[cat.ID] = cat.Name
	}
	return categories, nil
}

// FetchBatch retrieves up to amount multiple-choice questions for a category
// (0 means any). Questions without exactly 3 incorrect answers are discarded.
// A token-exhausted response triggers one token reset before the retry.
func (c *Client) FetchBatch(ctx context.Context, amount, category int) ([]Question, error) {
	token := c.currentToken()
	if token == "" {
		return nil, ErrNoToken
	}

	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	values.Set("token", token)
	values.Set("encode", "url3986")
	values.Set("type", "multiple")
	if category > 0 {
		values.Set("category", fmt.Sprint(category))
	}

	var payload questionsResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		payload = questionsResponse{}
		if err := c.getJSON(ctx, "/api.php", values, &payload); err != nil {
			return err
		}
		if err := responseCodeError(payload.ResponseCode); err != nil {
			if errors.Is(err, ErrTokenEmpty) {
				if resetErr := c.resetToken(ctx); resetErr != nil {
					c.logger.Warn().Err(resetErr).Msg("token reset failed")
				}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	valid := payload.Results[:0]
	for _, q := range payload.Results {
		if len(q.IncorrectAnswers) == incorrectAnswersPerQuestion {
			valid = append(valid, q)
		}
	}
	if len(valid) > amount {
		valid = valid[:amount]
	}
	return valid, nil
}

// withRetry runs fn with the fixed-delay policy. Every failure is treated as
// transient until the attempt budget runs out.
func (c *Client) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(c.attempts-1), retry.NewConstant(c.delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			c.logger.Debug().Err(err).Msg("trivia request failed")
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (c *Client) getJSON(ctx context.Context, path string, values url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("trivia: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
