package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFeed(url string) *Feed {
	return NewFeed(url, 17.0, 2*time.Second, zap.NewNop())
}

func TestRefreshAppliesFetchedRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("17.45\n"))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	require.NoError(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.45, feed.Current())
}

func TestRefreshKeepsRateOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-a-number"))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	assert.Error(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.0, feed.Current())
}

func TestRefreshKeepsRateOnNonPositiveValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("-3.2"))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	assert.Error(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.0, feed.Current())
}

func TestRefreshKeepsRateOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	assert.Error(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.0, feed.Current())
}

func TestRefreshTimesOutOnSlowSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("18.0"))
	}))
	defer srv.Close()

	feed := NewFeed(srv.URL, 17.0, 50*time.Millisecond, zap.NewNop())
	assert.Error(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.0, feed.Current())
}

func TestRefreshErrorsWithoutConfiguredSource(t *testing.T) {
	feed := newTestFeed("")
	assert.Error(t, feed.Refresh(context.Background()))
	assert.Equal(t, 17.0, feed.Current())
}
