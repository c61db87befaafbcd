// Package http provides an HTTP-based implementation of
// osloplan.LinkVerifier for checking that catalog documents still resolve
// at oslo.kommune.no.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/osloplan"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultVerifyTimeout is the default timeout for a single link check.
const DefaultVerifyTimeout = 10 * time.Second

// DefaultConcurrency bounds the number of in-flight link checks.
const DefaultConcurrency = 4

// defaultRPS keeps the verifier polite towards the municipal site.
const defaultRPS = 1.0

// maxTitleBody caps how much of a response is read when looking for the
// page title.
const maxTitleBody = 256 * 1024

// Ensure Verifier implements osloplan.LinkVerifier at compile time.
var _ osloplan.LinkVerifier = (*Verifier)(nil)

// Verifier checks document URLs over HTTP. Requests are rate limited and
// run with bounded concurrency; for HTML responses the page <title> is
// extracted so metadata drift is visible in the report.
type Verifier struct {
	client      *http.Client
	limiter     *rate.Limiter
	timeout     time.Duration
	concurrency int
	retryDelays []time.Duration
	userAgent   string
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithTimeout sets the timeout for a single link check.
// Defaults to DefaultVerifyTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(v *Verifier) {
		v.timeout = d
	}
}

// WithConcurrency sets the number of concurrent link checks.
func WithConcurrency(n int) Option {
	return func(v *Verifier) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

// WithRate sets the request rate limit in requests per second.
func WithRate(rps float64) Option {
	return func(v *Verifier) {
		v.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewVerifier creates a new HTTP-based Verifier.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		limiter:     rate.NewLimiter(rate.Limit(defaultRPS), 1),
		timeout:     DefaultVerifyTimeout,
		concurrency: DefaultConcurrency,
		retryDelays: DefaultRetryDelays(),
		userAgent:   "osloplan/1.0 (planning document link check)",
	}
	for _, opt := range opts {
		opt(v)
	}

	v.client = &http.Client{
		Timeout: v.timeout,
	}

	return v
}

// VerifyLinks checks every document URL and returns one status per
// document, in input order. Transient failures are retried with backoff.
// A failed check is reported in its status, not as an error; the returned
// error is non-nil only when the context is canceled.
func (v *Verifier) VerifyLinks(ctx context.Context, docs []*osloplan.Document) ([]osloplan.LinkStatus, error) {
	statuses := make([]osloplan.LinkStatus, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			status, err := v.checkWithRetry(ctx, doc)
			if err != nil {
				return err
			}
			statuses[i] = status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// check performs a single link check attempt. The second return value
// reports whether the failure is transient and worth retrying.
func (v *Verifier) check(ctx context.Context, doc *osloplan.Document) (osloplan.LinkStatus, bool) {
	status := osloplan.LinkStatus{
		ID:    doc.ID,
		Title: doc.Title,
		URL:   doc.URL,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doc.URL, nil)
	if err != nil {
		status.Error = err.Error()
		return status, false
	}
	req.Header.Set("User-Agent", v.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := v.client.Do(req)
	if err != nil {
		status.Error = err.Error()
		return status, true
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode
	status.OK = resp.StatusCode >= 200 && resp.StatusCode < 300

	if status.OK && strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		status.PageTitle = extractTitle(io.LimitReader(resp.Body, maxTitleBody))
	}

	return status, resp.StatusCode >= 500
}

func extractTitle(r io.Reader) string {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
