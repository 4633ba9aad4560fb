// Package analyze is the issue classification engine: it resolves a request
// to document text, parses it, runs the rule passes and the contrast pass
// over the tree, and assembles the categorized report.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Fetcher resolves a URL to raw document text. Satisfied by *fetch.Gate.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Request is one analysis request. At least one of URL and HTML must be set;
// URL wins when both are.
type Request struct {
	URL  string `json:"url,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Result is the analysis envelope returned to callers.
type Result struct {
	ID      string  `json:"id"`
	Report  *Report `json:"report"`
	Summary Summary `json:"summary"`
}

// Service runs analyses. Stateless across requests: every request fetches,
// parses, and classifies independently.
type Service struct {
	gate   Fetcher
	logger *slog.Logger
	newID  func() string
}

// New creates a Service. gate may be nil when only inline HTML will be
// analyzed.
func New(gate Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gate:   gate,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// passes are pure functions of the tree appending to disjoint buckets, so
// the orchestrator runs them concurrently with one accumulator each.
var passes = []func(*html.Node) *Report{
	labelPass,
	alertsPass,
	featuresPass,
	structuralPass,
	elementsPass,
	ariaPass,
	contrastPass,
}

// Analyze resolves the request to document text, parses it, and runs all
// passes. Returns ErrMissingInput when the request carries neither input;
// fetch errors pass through unchanged.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	text, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	results := make([]*Report, len(passes))
	g, _ := errgroup.WithContext(ctx)
	for i, pass := range passes {
		i, pass := i, pass
		g.Go(func() error {
			results[i] = pass(doc)
			return nil
		})
	}
	g.Wait() // passes are total functions; no error to collect

	merged := NewReport()
	for _, r := range results {
		merged.merge(r)
	}

	res := &Result{
		ID:      s.newID(),
		Report:  merged,
		Summary: merged.Summary(),
	}
	s.logger.Info("analysis complete", "id", res.ID, "url", req.URL, "issues", res.Summary.Total())
	return res, nil
}

// resolve turns the request into raw document text: remote fetch for URL
// input, sentinel normalization for inline HTML.
func (s *Service) resolve(ctx context.Context, req Request) (string, error) {
	switch {
	case req.URL != "":
		if s.gate == nil {
			return "", fmt.Errorf("analyze: no fetcher configured for url input")
		}
		return s.gate.Fetch(ctx, req.URL)
	case req.HTML != "":
		return normalizeInline(req.HTML), nil
	}
	return "", ErrMissingInput
}

// normalizeInline strips a doubly double-quoted HTML literal's outer quotes,
// replacing them with & sentinels before parsing. Compensates for clients
// that ship the body re-quoted.
func normalizeInline(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return "&" + s[1:len(s)-1] + "&"
	}
	return s
}
