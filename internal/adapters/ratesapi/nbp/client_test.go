package nbp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pbialczyk/nbp_rates_app/internal/adapters/ratesapi/nbp"
	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesPayload = `{
	"table": "A",
	"currency": "euro",
	"code": "EUR",
	"rates": [
		{"no": "045/A/NBP/2024", "effectiveDate": "2024-03-04", "mid": 4.3069},
		{"no": "046/A/NBP/2024", "effectiveDate": "2024-03-05", "mid": 4.3123}
	]
}`

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}
}

func TestFetchSeries(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ratesPayload))
	}))
	defer srv.Close()

	client := nbp.New(
		nbp.WithBaseURL(srv.URL),
		nbp.WithHTTPClient(srv.Client()),
		nbp.WithClock(testClock()),
	)

	obs, err := client.FetchSeries(context.Background(), "eur", domain.DateWindow{DaysToStart: 70, DaysToEnd: 0})

	require.NoError(t, err)
	assert.Equal(t, "/exchangerates/rates/a/eur/2024-01-05/2024-03-15/", gotPath)
	require.Len(t, obs, 2)
	assert.Equal(t, "2024-03-04", obs[0].EffectiveDate)
	assert.True(t, obs[0].Mid.Equal(decimal.RequireFromString("4.3069")), "mid: got %s", obs[0].Mid)
	assert.Equal(t, "2024-03-05", obs[1].EffectiveDate)
	assert.True(t, obs[1].Mid.Equal(decimal.RequireFromString("4.3123")), "mid: got %s", obs[1].Mid)
}

func TestFetchSeries_UppercaseCodeAndTableType(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(ratesPayload))
	}))
	defer srv.Close()

	client := nbp.New(
		nbp.WithBaseURL(srv.URL+"/"),
		nbp.WithHTTPClient(srv.Client()),
		nbp.WithTableType("c"),
		nbp.WithClock(testClock()),
	)

	_, err := client.FetchSeries(context.Background(), "EUR", domain.DateWindow{DaysToStart: 1, DaysToEnd: 0})

	require.NoError(t, err)
	assert.Equal(t, "/exchangerates/rates/c/eur/2024-03-14/2024-03-15/", gotPath)
}

func TestFetchSeries_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound - Brak danych", http.StatusNotFound)
	}))
	defer srv.Close()

	client := nbp.New(nbp.WithBaseURL(srv.URL), nbp.WithHTTPClient(srv.Client()), nbp.WithClock(testClock()))

	_, err := client.FetchSeries(context.Background(), "eur", domain.DateWindow{DaysToStart: 7, DaysToEnd: 0})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchSeries_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := nbp.New(nbp.WithBaseURL(srv.URL), nbp.WithHTTPClient(srv.Client()), nbp.WithClock(testClock()))

	_, err := client.FetchSeries(context.Background(), "eur", domain.DateWindow{DaysToStart: 7, DaysToEnd: 0})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse rates response")
}

func TestFetchSeries_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"table":"A","currency":"euro","code":"EUR","rates":[]}`))
	}))
	defer srv.Close()

	client := nbp.New(nbp.WithBaseURL(srv.URL), nbp.WithHTTPClient(srv.Client()), nbp.WithClock(testClock()))

	_, err := client.FetchSeries(context.Background(), "eur", domain.DateWindow{DaysToStart: 7, DaysToEnd: 0})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rates in response")
}

func TestFetchSeries_EmptyCurrencyCode(t *testing.T) {
	client := nbp.New()

	_, err := client.FetchSeries(context.Background(), "", domain.DateWindow{DaysToStart: 7, DaysToEnd: 0})

	require.Error(t, err)
}

func TestFetchSeries_InvalidWindow(t *testing.T) {
	client := nbp.New()

	_, err := client.FetchSeries(context.Background(), "eur", domain.DateWindow{DaysToStart: 0, DaysToEnd: 7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fetch window")
}
