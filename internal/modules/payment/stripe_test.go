package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeClient_DryRunWithoutKey(t *testing.T) {
	client := NewStripeClient("", nil)

	intent, err := client.CreateIntent(context.Background(), 6000, "usd")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.ID, "pi_dryrun_"))
	assert.Contains(t, intent.ClientSecret, "_secret_")
}

func TestStripeClient_CreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "6000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_123", nil)
	client.baseURL = srv.URL

	intent, err := client.CreateIntent(context.Background(), 6000, "usd")

	assert.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)
}

func TestStripeClient_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_123", nil)
	client.baseURL = srv.URL

	_, err := client.CreateIntent(context.Background(), 6000, "usd")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "card was declined")
}

func TestStripeClient_RejectsNonPositiveAmount(t *testing.T) {
	client := NewStripeClient("", nil)

	_, err := client.CreateIntent(context.Background(), 0, "usd")
	assert.Error(t, err)
}
