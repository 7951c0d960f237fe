// Package fetch retrieves raw page markup from the stats site, choosing
// between a lightweight HTTP client and a headless browser when anti-bot
// defenses block the plain client, and pacing every request to stay inside
// the site's rate limit.
package fetch

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// UserAgent presented by the HTTP loader.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// requestTimeout bounds a single page load on either loader.
	requestTimeout = 30 * time.Second
)

// commentPattern strips HTML comments: the stats site wraps many tables
// inside comment markers so they only render via client-side script.
var commentPattern = regexp.MustCompile(`(?s)<!--|-->`)

// Loader is one way of pulling raw markup for a URL.
type Loader interface {
	LoadPage(ctx context.Context, url string) (string, error)
	Close() error
}

// HTTPLoader fetches pages over plain HTTP with a browser user-agent.
type HTTPLoader struct {
	client *resty.Client
}

// NewHTTPLoader creates the lightweight loader.
func NewHTTPLoader() *HTTPLoader {
	client := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", UserAgent)
	return &HTTPLoader{client: client}
}

// LoadPage fetches the page and strips comment markers so hidden tables
// become parseable.
func (l *HTTPLoader) LoadPage(ctx context.Context, url string) (string, error) {
	resp, err := l.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch: GET %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("fetch: GET %s: status %d", url, resp.StatusCode())
	}
	return commentPattern.ReplaceAllString(string(resp.Body()), ""), nil
}

// Close is a no-op; resty owns no long-lived resources here.
func (l *HTTPLoader) Close() error { return nil }

// BrowserLoader fetches pages through a headless browser. Slower, but the
// anti-bot filter that sometimes blocks the plain client session-wide does
// not trip on it.
type BrowserLoader struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	log      *zap.Logger
}

// NewBrowserLoader starts a headless browser allocator.
func NewBrowserLoader(log *zap.Logger) *BrowserLoader {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &BrowserLoader{allocCtx: allocCtx, cancel: cancel, log: log}
}

// LoadPage navigates to the URL, waits for a table to be present, and
// returns the rendered markup with comment markers stripped.
func (l *BrowserLoader) LoadPage(ctx context.Context, url string) (string, error) {
	browserCtx, cancelBrowser := chromedp.NewContext(l.allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, requestTimeout)
	defer cancelTimeout()

	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithDeadline(browserCtx, deadline)
		defer cancel()
	}

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(`table`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("fetch: browser load %s: %w", url, err)
	}
	if html == "" {
		return "", fmt.Errorf("fetch: browser load %s: empty document", url)
	}
	return commentPattern.ReplaceAllString(html, ""), nil
}

// Close shuts the browser allocator down.
func (l *BrowserLoader) Close() error {
	if l.cancel != nil {
		l.cancel()
		l.log.Info("headless browser closed")
	}
	return nil
}
