package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLoader struct {
	html     string
	failures int
	calls    int
	closed   bool
}

func (s *stubLoader) LoadPage(ctx context.Context, url string) (string, error) {
	s.calls++
	if s.calls <= s.failures {
		return "", errors.New("boom")
	}
	return s.html, nil
}

func (s *stubLoader) Close() error {
	s.closed = true
	return nil
}

func testProvider(loader Loader) *Provider {
	p := NewProviderWithLoader(loader, nil, zap.NewNop())
	p.minInterval = time.Millisecond
	return p
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	loader := &stubLoader{html: "<table></table>", failures: 2}
	p := testProvider(loader)

	html, err := p.Fetch(context.Background(), "http://example.com/x")
	require.NoError(t, err)
	require.Equal(t, "<table></table>", html)
	require.Equal(t, 3, loader.calls)
}

func TestFetchExhaustsRetryBudget(t *testing.T) {
	loader := &stubLoader{failures: 99}
	p := testProvider(loader)

	_, err := p.Fetch(context.Background(), "http://example.com/x")
	require.True(t, errors.Is(err, ErrFetchFailed))
	require.Equal(t, maxAttempts, loader.calls)
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	loader := &stubLoader{html: "ok"}
	p := testProvider(loader)
	p.minInterval = time.Minute
	p.lastRequest = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Fetch(ctx, "http://example.com/x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProviderCloseReleasesLoader(t *testing.T) {
	loader := &stubLoader{}
	p := testProvider(loader)
	require.NoError(t, p.Close())
	require.True(t, loader.closed)
}

func TestHTTPLoaderStripsComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><!--<table id="hidden"></table>--></body></html>`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader()
	html, err := loader.LoadPage(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, html, `<table id="hidden">`)
	require.NotContains(t, html, "<!--")
}

func TestHTTPLoaderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	loader := NewHTTPLoader()
	_, err := loader.LoadPage(context.Background(), srv.URL)
	require.Error(t, err)
}
