package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, server.Client(), func() string { return token })
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsEmptyOrInvalidBaseURL(t *testing.T) {
	_, err := NewClient("", nil, nil)
	require.Error(t, err)

	_, err = NewClient("ftp://backend", nil, nil)
	require.Error(t, err)
}

func TestAuthenticateLoginDecodesGrant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret1", body["password"])
		assert.NotContains(t, body, "username")

		_, _ = fmt.Fprint(w, `{"token":"t1","userId":42,"username":"alice"}`)
	}, "")

	grant, err := client.Authenticate(context.Background(), domain.AuthModeLogin, domain.Credentials{
		Email:    "a@b.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", grant.Token)
	assert.Equal(t, domain.UserID(42), grant.UserID)
	assert.Equal(t, "alice", grant.Username)
}

func TestAuthenticateLoginAcceptsLegacyIDField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"token":"t1","id":42}`)
	}, "")

	grant, err := client.Authenticate(context.Background(), domain.AuthModeLogin, domain.Credentials{
		Email:    "a@b.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(42), grant.UserID)
}

func TestAuthenticateRegisterReturnsConfirmationOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "Alice Example", body["fullname"])

		_, _ = fmt.Fprint(w, `{"message":"User registered"}`)
	}, "")

	grant, err := client.Authenticate(context.Background(), domain.AuthModeRegister, domain.Credentials{
		Email:    "a@b.com",
		Username: "alice",
		FullName: "Alice Example",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Empty(t, grant.Token)
	assert.Equal(t, "User registered", grant.Confirmation)
}

func TestAuthenticateSurfacesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"message":"Invalid email or password"}`)
	}, "")

	_, err := client.Authenticate(context.Background(), domain.AuthModeLogin, domain.Credentials{
		Email:    "a@b.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Equal(t, "Invalid email or password", remote.Message)
}

func TestFetchScoreDecodesResultAndAttachesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/credit/score/42", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"score":720,"riskCategory":"LOW","scoreRange":"700-749","recommendations":["Pay on time"],"pointsToNextLevel":30}`)
	}, "t1")

	result, err := client.FetchScore(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 720, result.Score)
	assert.Equal(t, domain.RiskLow, result.RiskCategory)
	assert.Equal(t, "700-749", result.ScoreRange)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, 30, result.PointsToNextLevel)
}

func TestFetchScoreReturnsRemoteErrorWhenNoScoreOnRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"message":"No score found for user 42"}`)
	}, "t1")

	_, err := client.FetchScore(context.Background(), 42)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "No score found for user 42", remote.Message)
}

func TestCalculateScoreSubmitsCoercedFieldsVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/credit/calculate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(42), body["userId"])
		assert.Equal(t, float64(50000), body["monthlyIncome"])
		// Out-of-range utilization passes through untouched.
		assert.Equal(t, float64(150), body["creditUtilization"])
		// Non-numeric input is sent as the raw string for the backend to reject.
		assert.Equal(t, "lots", body["existingLoans"])
		assert.Equal(t, "GOOD", body["paymentHistory"])

		_, _ = fmt.Fprint(w, `{"score":640,"riskCategory":"MEDIUM","scoreRange":"600-649","recommendations":["Reduce utilization"],"pointsToNextLevel":10}`)
	}, "t1")

	result, err := client.CalculateScore(context.Background(), domain.CalculationInput{
		UserID:            domain.IntegerFieldOf(42),
		MonthlyIncome:     domain.DecimalField("50000"),
		ExistingLoans:     domain.DecimalField("lots"),
		CreditUtilization: domain.IntegerField("150"),
		PaymentHistory:    domain.PaymentHistoryGood,
	})
	require.NoError(t, err)
	assert.Equal(t, 640, result.Score)
	assert.Equal(t, domain.RiskMedium, result.RiskCategory)
}

func TestChatDecodesReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/chat", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "How to improve my credit score?", body["message"])
		assert.Equal(t, float64(42), body["userId"])
		assert.Equal(t, float64(720), body["currentScore"])

		_, _ = fmt.Fprint(w, `{"response":"Pay your bills on time."}`)
	}, "t1")

	reply, err := client.Chat(context.Background(), domain.ChatPrompt{
		Message:   "How to improve my credit score?",
		UserID:    42,
		ScoreHint: 720,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pay your bills on time.", reply)
}

func TestTransportFailureYieldsNoRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := NewClient(server.URL, server.Client(), nil)
	require.NoError(t, err)
	server.Close()

	_, err = client.FetchScore(context.Background(), 42)
	require.Error(t, err)

	var remote *domain.RemoteError
	assert.False(t, errors.As(err, &remote))
	assert.Equal(t, domain.ConnectivityFailure, domain.FailureMessage(err, ""))
}
