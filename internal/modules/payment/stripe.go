package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abir-25/doctors-portal-server/internal/pkg/logging"
)

const stripeAPIBase = "https://api.stripe.com"

// StripeClient creates payment intents against the Stripe API. With no
// secret key configured it runs in dry-run mode and fabricates intents, so
// local development needs no Stripe account.
type StripeClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	dryRun     bool
}

func NewStripeClient(secretKey string, logger *logging.Logger) *StripeClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &StripeClient{
		secretKey:  secretKey,
		baseURL:    stripeAPIBase,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		dryRun:     secretKey == "",
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("stripe: amount must be positive, got %d", amountCents)
	}
	if currency == "" {
		currency = "usd"
	}

	if c.dryRun {
		id := "pi_dryrun_" + strings.ReplaceAll(uuid.NewString(), "-", "")
		c.logger.Info("stripe dry-run, fabricating payment intent", "intent_id", id, "amount_cents", amountCents)
		return &Intent{
			ID:           id,
			ClientSecret: id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		}, nil
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stripe: read response: %w", err)
	}

	var parsed stripeIntentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("stripe: decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("stripe: status %d: %s", resp.StatusCode, msg)
	}
	if parsed.ClientSecret == "" {
		return nil, fmt.Errorf("stripe: response missing client_secret")
	}

	c.logger.Info("payment intent created", "intent_id", parsed.ID, "amount_cents", amountCents)
	return &Intent{ID: parsed.ID, ClientSecret: parsed.ClientSecret}, nil
}
