package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFXRatesAPIProvider_GetRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest", r.URL.Path)
			assert.Equal(t, "EUR", r.URL.Query().Get("base"))
			assert.Equal(t, "USD", r.URL.Query().Get("symbols"))
			assert.Equal(t, "test-key", r.Header.Get("apikey"))
			_, _ = w.Write([]byte(`{"rates": {"USD": 1.0842}}`))
		}))
		defer srv.Close()

		p := NewFXRatesAPIProvider(srv.URL, "test-key", 5)
		rate, ts, err := p.GetRate(context.Background(), "EUR", "USD")
		require.NoError(t, err)
		assert.Equal(t, 1.0842, rate)
		assert.False(t, ts.IsZero())
	})

	t.Run("missing symbol in response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"rates": {"GBP": 0.79}}`))
		}))
		defer srv.Close()

		p := NewFXRatesAPIProvider(srv.URL, "test-key", 5)
		_, _, err := p.GetRate(context.Background(), "EUR", "USD")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rate for USD")
	})

	t.Run("zero rate is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"rates": {"USD": 0}}`))
		}))
		defer srv.Close()

		p := NewFXRatesAPIProvider(srv.URL, "test-key", 5)
		_, _, err := p.GetRate(context.Background(), "EUR", "USD")
		require.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "invalid api key"}`))
		}))
		defer srv.Close()

		p := NewFXRatesAPIProvider(srv.URL, "bad-key", 5)
		_, _, err := p.GetRate(context.Background(), "EUR", "USD")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		p := NewFXRatesAPIProvider(srv.URL, "test-key", 5)
		_, _, err := p.GetRate(context.Background(), "EUR", "USD")
		require.Error(t, err)
	})
}

func TestNewFXRatesAPIProvider_DefaultBaseURL(t *testing.T) {
	p := NewFXRatesAPIProvider("", "key", 5)
	assert.Equal(t, "https://api.fxratesapi.com/latest?base=EUR&symbols=USD", p.latestURL("EUR", "USD"))
}
