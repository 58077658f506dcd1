package crossmint

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ordersAPIVersion pins the provider's versioned orders endpoint.
const ordersAPIVersion = "2022-06-09"

type Config struct {
	ServerAPIKey string
	Environment  string // "staging" or "production"
	ChainID      string
	TokenMint    string
}

type Client struct {
	config *Config
	http   *resty.Client
}

func Setup(cfg *Config) *Client {
	env := cfg.Environment
	if env == "" {
		env = "staging"
	}

	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s.crossmint.com", env)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		http:   httpClient,
	}
}

// SetBaseURL overrides the provider endpoint. Tests point this at a local
// stub server.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// HasServerKey reports whether a server credential is configured. Callers
// must check this before CreateOrder; the key is never exposed to them.
func (c *Client) HasServerKey() bool {
	return c.config.ServerAPIKey != ""
}

// TokenLocator composes the chain + token identity the checkout delivers,
// in the provider's "chain:contract:mint" form.
func (c *Client) TokenLocator() string {
	return fmt.Sprintf("%s:%s:%s", c.config.ChainID, c.config.TokenMint, c.config.TokenMint)
}

// CreateOrder posts one order-creation request and returns the provider's
// status and body untouched. A non-nil error means the request never
// produced a provider reply (transport failure, cancelled context).
func (c *Client) CreateOrder(ctx context.Context, req *OrderRequest) (*APIResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.config.ServerAPIKey).
		SetBody(req).
		Post(fmt.Sprintf("/api/%s/orders", ordersAPIVersion))
	if err != nil {
		return nil, fmt.Errorf("crossmint create order: %w", err)
	}

	return &APIResult{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
