package iex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iex-companies/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultSymbols = []string{"FB", "MSFT", "NFLX", "AAPL", "GOOGL"}

func TestTopsURL(t *testing.T) {
	c := NewClient("https://api.iextrading.com/1.0/", time.Second)

	assert.Equal(t,
		"https://api.iextrading.com/1.0/tops?symbols=FB,MSFT,NFLX,AAPL,GOOGL",
		c.TopsURL(defaultSymbols))
}

func TestFetchTops(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectError error
		expectLen   int
	}{
		{
			name:      "two quotes",
			status:    http.StatusOK,
			body:      `[{"symbol":"FB","price":10},{"symbol":"MSFT","price":20}]`,
			expectLen: 2,
		},
		{
			name:      "empty array",
			status:    http.StatusOK,
			body:      `[]`,
			expectLen: 0,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectError: ErrUnexpectedStatus,
		},
		{
			name:        "not an array",
			status:      http.StatusOK,
			body:        `{"error":"bad symbols"}`,
			expectError: models.ErrMalformedCompany,
		},
		{
			name:        "malformed element",
			status:      http.StatusOK,
			body:        `[{"price":10}]`,
			expectError: models.ErrMalformedCompany,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			companies, err := c.FetchTops(context.Background(), defaultSymbols)

			assert.Equal(t, 1, calls)
			assert.Equal(t, "/tops", gotPath)
			assert.Equal(t, "symbols=FB,MSFT,NFLX,AAPL,GOOGL", gotQuery)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, companies)
				return
			}
			require.NoError(t, err)
			assert.Len(t, companies, tt.expectLen)
		})
	}
}

func TestFetchTopsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).FetchTops(context.Background(), defaultSymbols)
	assert.Error(t, err)
}

func TestFetchTopsContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second).FetchTops(ctx, defaultSymbols)
	assert.ErrorIs(t, err, context.Canceled)
}
