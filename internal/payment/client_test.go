package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	var got struct {
		Amount   int    `json:"amount"`
		Currency string `json:"currency"`
	}
	var auth string

	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"client_secret": "pi_secret_123"})
	}))
	defer processor.Close()

	client := NewClient(processor.URL, "sk_test_abc")
	intent, err := client.CreateIntent(context.Background(), 123.45, nil)
	require.NoError(t, err)

	assert.Equal(t, "pi_secret_123", intent.ClientSecret)
	assert.Equal(t, 12345, got.Amount, "amount must be converted to minor units")
	assert.Equal(t, "inr", got.Currency)
	assert.Equal(t, "Bearer sk_test_abc", auth)
}

func TestCreateIntentProcessorFailure(t *testing.T) {
	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer processor.Close()

	client := NewClient(processor.URL, "sk_test_abc")
	_, err := client.CreateIntent(context.Background(), 10, nil)
	assert.Error(t, err)
}
