// Package payment talks to the external card processor. Only intent
// creation is needed here; capture and webhooks live with the frontend.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Intent struct {
	ClientSecret string `json:"client_secret"`
}

type intentRequest struct {
	Amount      int         `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	Shipping    interface{} `json:"shipping,omitempty"`
}

// CreateIntent registers a payment intent for the given amount in major
// currency units. The processor API wants minor units, hence the x100.
func (c *Client) CreateIntent(ctx context.Context, amount float64, shipping interface{}) (*Intent, error) {
	body, err := json.Marshal(intentRequest{
		Amount:      int(math.Round(amount * 100)),
		Currency:    "inr",
		Description: "payment",
		Shipping:    shipping,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment processor returned %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
