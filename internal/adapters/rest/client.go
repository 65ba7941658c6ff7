package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

const (
	loginPath     = "/api/users/login"
	registerPath  = "/api/users/register"
	scorePath     = "/api/credit/score"
	calculatePath = "/api/credit/calculate"
	chatPath      = "/api/ai/chat"
)

// TokenSource supplies the current session token, or "" when logged out.
type TokenSource func() string

// Client talks to the three backend capabilities through the API gateway. It
// performs no retries; every call is at-most-once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, token TokenSource) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("gateway base url is empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse gateway base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("gateway base url must use http or https")
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{baseURL: trimmed, httpClient: httpClient, token: token}, nil
}

type authRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullname,omitempty"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string        `json:"token"`
	UserID   domain.UserID `json:"userId"`
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
	Message  string        `json:"message"`
}

func (c *Client) Authenticate(ctx context.Context, mode domain.AuthMode, creds domain.Credentials) (domain.AuthGrant, error) {
	if !mode.Valid() {
		return domain.AuthGrant{}, domain.ErrUnsupportedAuthMode
	}

	path := loginPath
	payload := authRequest{Email: creds.Email, Password: creds.Password}
	if mode == domain.AuthModeRegister {
		path = registerPath
		payload.Username = creds.Username
		payload.FullName = creds.FullName
	}

	var decoded authResponse
	if err := c.postJSON(ctx, path, payload, &decoded); err != nil {
		return domain.AuthGrant{}, fmt.Errorf("authenticate %s: %w", mode, err)
	}

	if mode == domain.AuthModeRegister {
		return domain.AuthGrant{Confirmation: decoded.Message}, nil
	}

	userID := decoded.UserID
	if userID == 0 {
		userID = decoded.ID
	}

	return domain.AuthGrant{
		Token:    decoded.Token,
		UserID:   userID,
		Username: decoded.Username,
	}, nil
}

func (c *Client) FetchScore(ctx context.Context, userID domain.UserID) (domain.ScoreResult, error) {
	var decoded scoreResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", scorePath, userID), &decoded); err != nil {
		return domain.ScoreResult{}, fmt.Errorf("fetch score: %w", err)
	}

	return decoded.toDomain(), nil
}

type calculateRequest struct {
	UserID            domain.NumericField   `json:"userId"`
	MonthlyIncome     domain.NumericField   `json:"monthlyIncome"`
	ExistingLoans     domain.NumericField   `json:"existingLoans"`
	CreditUtilization domain.NumericField   `json:"creditUtilization"`
	PaymentHistory    domain.PaymentHistory `json:"paymentHistory"`
}

func (c *Client) CalculateScore(ctx context.Context, input domain.CalculationInput) (domain.ScoreResult, error) {
	payload := calculateRequest{
		UserID:            input.UserID,
		MonthlyIncome:     input.MonthlyIncome,
		ExistingLoans:     input.ExistingLoans,
		CreditUtilization: input.CreditUtilization,
		PaymentHistory:    input.PaymentHistory,
	}

	var decoded scoreResponse
	if err := c.postJSON(ctx, calculatePath, payload, &decoded); err != nil {
		return domain.ScoreResult{}, fmt.Errorf("calculate score: %w", err)
	}

	return decoded.toDomain(), nil
}

type chatRequest struct {
	Message      string        `json:"message"`
	UserID       domain.UserID `json:"userId"`
	CurrentScore int           `json:"currentScore"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (c *Client) Chat(ctx context.Context, prompt domain.ChatPrompt) (string, error) {
	payload := chatRequest{
		Message:      prompt.Message,
		UserID:       prompt.UserID,
		CurrentScore: prompt.ScoreHint,
	}

	var decoded chatResponse
	if err := c.postJSON(ctx, chatPath, payload, &decoded); err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	return decoded.Response, nil
}

type scoreResponse struct {
	Score             int      `json:"score"`
	RiskCategory      string   `json:"riskCategory"`
	ScoreRange        string   `json:"scoreRange"`
	Recommendations   []string `json:"recommendations"`
	PointsToNextLevel int      `json:"pointsToNextLevel"`
}

func (r scoreResponse) toDomain() domain.ScoreResult {
	return domain.ScoreResult{
		Score:             r.Score,
		RiskCategory:      domain.RiskCategory(strings.ToUpper(r.RiskCategory)),
		ScoreRange:        r.ScoreRange,
		Recommendations:   r.Recommendations,
		PointsToNextLevel: r.PointsToNextLevel,
	}
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return remoteError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

// remoteError extracts the backend's error payload message when present.
func remoteError(status int, data []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(data, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	return &domain.RemoteError{Status: status, Message: message}
}
