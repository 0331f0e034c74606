package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrankfurterProvider_GetRate(t *testing.T) {
	t.Run("success with response date", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "USD", r.URL.Query().Get("base"))
			assert.Equal(t, "EUR", r.URL.Query().Get("symbols"))
			_, _ = w.Write([]byte(`{"amount": 1, "base": "USD", "date": "2026-08-27", "rates": {"EUR": 0.9214}}`))
		}))
		defer srv.Close()

		p := NewFrankfurterProvider(srv.URL, 5)
		rate, ts, err := p.GetRate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.Equal(t, 0.9214, rate)
		assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), ts)
	})

	t.Run("unparsable date falls back to now", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"date": "yesterday", "rates": {"EUR": 0.92}}`))
		}))
		defer srv.Close()

		p := NewFrankfurterProvider(srv.URL, 5)
		rate, ts, err := p.GetRate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.Equal(t, 0.92, rate)
		assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
	})

	t.Run("missing symbol", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"date": "2026-08-27", "rates": {}}`))
		}))
		defer srv.Close()

		p := NewFrankfurterProvider(srv.URL, 5)
		_, _, err := p.GetRate(context.Background(), "USD", "EUR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rate for EUR")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		p := NewFrankfurterProvider(srv.URL, 5)
		_, _, err := p.GetRate(context.Background(), "USD", "EUR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})
}
