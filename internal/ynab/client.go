// Package ynab provides a client for the budgeting service's REST API and
// translates its records into the projection engine's domain types.
package ynab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.ynab.com/v1"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API token is missing, expired or invalid.
	ErrUnauthorized = errors.New("ynab: unauthorized (check API token)")
	// ErrNotFound indicates the budget or account does not exist.
	ErrNotFound = errors.New("ynab: resource not found")
)

// Client fetches budget data over the service's v1 REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client authenticating with the given bearer token.
func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests and self-hosted deployments.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// Account returns a single account of the budget.
func (c *Client) Account(ctx context.Context, budgetID, accountID string) (Account, error) {
	body, err := c.get(ctx, fmt.Sprintf("/budgets/%s/accounts/%s", budgetID, accountID))
	if err != nil {
		return Account{}, err
	}
	var resp accountResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Account{}, fmt.Errorf("ynab: parsing account: %w", err)
	}
	return resp.Data.Account, nil
}

// Accounts returns all accounts of the budget.
func (c *Client) Accounts(ctx context.Context, budgetID string) ([]Account, error) {
	body, err := c.get(ctx, fmt.Sprintf("/budgets/%s/accounts", budgetID))
	if err != nil {
		return nil, err
	}
	var resp accountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ynab: parsing accounts: %w", err)
	}
	return resp.Data.Accounts, nil
}

// ScheduledTransactions returns all scheduled transaction definitions of the
// budget, across every account.
func (c *Client) ScheduledTransactions(ctx context.Context, budgetID string) ([]ScheduledTransaction, error) {
	body, err := c.get(ctx, fmt.Sprintf("/budgets/%s/scheduled_transactions", budgetID))
	if err != nil {
		return nil, err
	}
	var resp scheduledTransactionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ynab: parsing scheduled transactions: %w", err)
	}
	return resp.Data.ScheduledTransactions, nil
}

// Categories returns the budget's category groups with their categories.
func (c *Client) Categories(ctx context.Context, budgetID string) ([]CategoryGroup, error) {
	body, err := c.get(ctx, fmt.Sprintf("/budgets/%s/categories", budgetID))
	if err != nil {
		return nil, err
	}
	var resp categoriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ynab: parsing categories: %w", err)
	}
	return resp.Data.CategoryGroups, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("ynab: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ynab: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("ynab: unexpected status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("ynab: reading response: %w", err)
	}
	return body, nil
}
