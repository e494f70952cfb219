package iex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"iex-companies/internal/models"
)

var ErrUnexpectedStatus = errors.New("unexpected status from IEX")

// Client fetches quote snapshots from the IEX "tops" endpoint.
type Client struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// TopsURL builds <base>/tops?symbols=A,B,C. Commas are left unescaped,
// which is what the endpoint expects.
func (c *Client) TopsURL(symbols []string) string {
	q := make([]string, len(symbols))
	for i, s := range symbols {
		q[i] = url.QueryEscape(s)
	}
	return c.BaseURL + "/tops?symbols=" + strings.Join(q, ",")
}

// FetchTops issues a single GET for the given symbols and decodes the JSON
// array response.
func (c *Client) FetchTops(ctx context.Context, symbols []string) ([]models.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.TopsURL(symbols), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tops: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tops response: %w", err)
	}

	return models.DecodeCompanies(responseBytes)
}
