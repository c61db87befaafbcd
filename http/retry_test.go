package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mkleven/osloplan"
	osloplanhttp "github.com/mkleven/osloplan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Retry(t *testing.T) {
	t.Parallel()

	t.Run("retries transient server errors until success", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if attempts.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		docs := []*osloplan.Document{
			{ID: "doc-1", Title: "Plan", URL: srv.URL + "/"},
		}

		v := osloplanhttp.NewVerifier(
			osloplanhttp.WithRate(1000),
			osloplanhttp.WithRetryDelays(time.Millisecond, time.Millisecond, time.Millisecond),
		)
		statuses, err := v.VerifyLinks(context.Background(), docs)
		require.NoError(t, err)
		require.Len(t, statuses, 1)

		assert.True(t, statuses[0].OK)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		docs := []*osloplan.Document{
			{ID: "doc-1", Title: "Plan", URL: srv.URL + "/"},
		}

		v := osloplanhttp.NewVerifier(
			osloplanhttp.WithRate(1000),
			osloplanhttp.WithRetryDelays(time.Millisecond, time.Millisecond),
		)
		statuses, err := v.VerifyLinks(context.Background(), docs)
		require.NoError(t, err)
		require.Len(t, statuses, 1)

		assert.False(t, statuses[0].OK)
		assert.Equal(t, http.StatusInternalServerError, statuses[0].StatusCode)
		// 1 initial + 2 retries
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry definitive answers", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			http.NotFound(w, r)
		}))
		defer srv.Close()

		docs := []*osloplan.Document{
			{ID: "doc-1", Title: "Borte plan", URL: srv.URL + "/"},
		}

		v := osloplanhttp.NewVerifier(
			osloplanhttp.WithRate(1000),
			osloplanhttp.WithRetryDelays(time.Millisecond, time.Millisecond),
		)
		statuses, err := v.VerifyLinks(context.Background(), docs)
		require.NoError(t, err)
		require.Len(t, statuses, 1)

		assert.False(t, statuses[0].OK)
		assert.Equal(t, http.StatusNotFound, statuses[0].StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("stops retrying when context is canceled during backoff", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		docs := []*osloplan.Document{
			{ID: "doc-1", Title: "Plan", URL: srv.URL + "/"},
		}

		ctx, cancel := context.WithCancel(context.Background())

		v := osloplanhttp.NewVerifier(
			osloplanhttp.WithRate(1000),
			osloplanhttp.WithRetryDelays(time.Minute),
		)

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		_, err := v.VerifyLinks(ctx, docs)
		require.Error(t, err)
	})
}
