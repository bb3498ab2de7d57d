package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"
)

// Client is a thin passthrough to the PayPal Orders v2 API. No payment logic
// lives here; responses are relayed to the caller verbatim.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
}

func NewClient(clientID, clientSecret string, live bool) *Client {
	baseURL := sandboxBaseURL
	if live {
		baseURL = liveBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)

	return &Client{
		http:         httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// OrderResponse carries the upstream status code and raw body for relaying.
type OrderResponse struct {
	StatusCode int
	Body       json.RawMessage
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	var token tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("failed to request PayPal access token: %w", err)
	}
	if resp.IsError() || token.AccessToken == "" {
		log.Errorf("PayPal token request failed with status %d", resp.StatusCode())
		return "", fmt.Errorf("PayPal token request failed with status %d", resp.StatusCode())
	}
	return token.AccessToken, nil
}

// CreateOrder creates a CAPTURE-intent USD order for the given amount.
func (c *Client) CreateOrder(ctx context.Context, amount string) (*OrderResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{"amount": map[string]string{"currency_code": "USD", "value": amount}},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Prefer", "return=minimal").
		SetBody(body).
		Post("/v2/checkout/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create PayPal order: %w", err)
	}

	return &OrderResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// CaptureOrder captures a previously approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetPathParam("orderID", orderID).
		Post("/v2/checkout/orders/{orderID}/capture")
	if err != nil {
		return nil, fmt.Errorf("failed to capture PayPal order: %w", err)
	}

	return &OrderResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
