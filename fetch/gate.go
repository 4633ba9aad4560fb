// Package fetch retrieves remote HTML behind a robots.txt gate.
//
// Before the target page is fetched, the site's robots.txt is retrieved and
// evaluated for the configured user-agent; a disallowed path refuses the
// fetch. Robots policies are re-fetched on every call, never cached. A fixed
// pacing delay is applied once after each successful content fetch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"a11yscan/robots"
)

// Config configures the gate.
type Config struct {
	// Timeout is the per-request HTTP timeout. Default: 30s.
	Timeout time.Duration

	// MaxBytes caps the response body size. Default: 10MB.
	MaxBytes int64

	// UserAgent identifies the tool to remote sites and is the agent the
	// robots evaluator matches against.
	UserAgent string

	// Delay is the pacing delay applied after a successful content fetch.
	// Default: 1s.
	Delay time.Duration

	// Logger for debug messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 10 * 1024 * 1024 // 10MB
	}
	if c.UserAgent == "" {
		c.UserAgent = "AccessibilityAnalysisTool/1.0"
	}
	if c.Delay <= 0 {
		c.Delay = time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Gate performs robots-checked, rate-limited page fetches.
type Gate struct {
	client *http.Client
	config Config
}

// New creates a Gate with a redirect cap.
func New(cfg Config) *Gate {
	cfg.defaults()
	return &Gate{
		client: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects (%d)", len(via))
				}
				return nil
			},
		},
		config: cfg,
	}
}

// UserAgent returns the identifying user-agent string the gate sends.
func (g *Gate) UserAgent() string {
	return g.config.UserAgent
}

// Fetch retrieves the page at rawURL. Returns ErrDenied when robots
// directives disallow the path or robots.txt could not be retrieved, and
// ErrFetchFailed when the page itself cannot be fetched. On success the
// pacing delay has already elapsed when Fetch returns.
func (g *Gate) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: invalid url %q", ErrFetchFailed, rawURL)
	}

	if err := g.checkRobots(ctx, u); err != nil {
		return "", err
	}

	body, err := g.get(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	g.config.Logger.Debug("fetched page", "url", rawURL, "bytes", len(body))

	// Pacing: one fixed delay per analyzed URL, after a successful fetch.
	t := time.NewTimer(g.config.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
	}

	return body, nil
}

// checkRobots fetches and evaluates robots.txt for u. Transport errors deny
// (fail-closed); non-200 robots responses allow (fail-open).
func (g *Gate) checkRobots(ctx context.Context, u *url.URL) error {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDenied, err)
	}
	req.Header.Set("User-Agent", g.config.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: robots.txt unreachable: %v", ErrDenied, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.config.Logger.Debug("robots.txt not ok, allowing", "url", robotsURL, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.config.MaxBytes))
	if err != nil {
		return fmt.Errorf("%w: read robots.txt: %v", ErrDenied, err)
	}

	// Robots blocks name the product token, not the full UA/version header.
	agent, _, _ := strings.Cut(g.config.UserAgent, "/")

	policy := robots.Parse(string(body))
	if !policy.Allowed(agent, u.Path) {
		return fmt.Errorf("%w: %s disallows %s", ErrDenied, robotsURL, u.Path)
	}
	return nil
}

func (g *Gate) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", g.config.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.config.MaxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
