// Package crawler fetches a site's pages breadth-first, same host only, and
// flattens each page's visible text into a document.
package crawler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

const (
	defaultMaxPages = 10
	maxBodyBytes    = 2 << 20
	userAgent       = "semantic-audit-crawler/1.0"
)

type Crawler struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	maxPages   int
}

type Options struct {
	RequestTimeout time.Duration
	RequestsPerSec float64
	MaxPages       int
	Logger         *slog.Logger
}

func New(options Options) *Crawler {
	timeout := options.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rps := options.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	maxPages := options.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Crawler{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
		maxPages:   maxPages,
	}
}

// Crawl walks pages breadth-first starting at startURL. Fetch failures on
// individual pages are logged and skipped; the crawl fails only when the
// start page itself cannot be read.
func (c *Crawler) Crawl(ctx context.Context, startURL string, maxPages int) ([]domain.InputDocument, error) {
	start, err := url.Parse(startURL)
	if err != nil || start.Host == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "crawl", fmt.Errorf("invalid start url %q", startURL))
	}
	if maxPages <= 0 || maxPages > c.maxPages {
		maxPages = c.maxPages
	}

	queue := []*url.URL{start}
	visited := map[string]struct{}{pageKey(start): {}}
	var docs []domain.InputDocument

	for len(queue) > 0 && len(docs) < maxPages {
		page := queue[0]
		queue = queue[1:]

		text, links, err := c.fetchPage(ctx, page)
		if err != nil {
			if len(docs) == 0 && len(queue) == 0 {
				return nil, fmt.Errorf("fetch start page: %w", err)
			}
			c.logger.Warn("crawl_page_failed", "url", page.String(), "error", err)
			continue
		}

		if text != "" {
			docs = append(docs, domain.InputDocument{
				ID:        page.String(),
				Name:      page.Host + page.Path,
				Content:   text,
				WordCount: len(strings.Fields(text)),
				Type:      domain.TypeWebsite,
				Metadata:  map[string]string{"url": page.String()},
			})
		}

		for _, link := range links {
			next := page.ResolveReference(link)
			if next.Host != start.Host || (next.Scheme != "http" && next.Scheme != "https") {
				continue
			}
			key := pageKey(next)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, next)
		}
	}
	return docs, nil
}

func (c *Crawler) fetchPage(ctx context.Context, page *url.URL) (string, []*url.URL, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page.String(), nil)
	if err != nil {
		return "", nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("fetch %s: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("fetch %s: status %s", page, resp.Status)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") {
		return "", nil, nil
	}

	root, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", page, err)
	}
	text, links := walkPage(root)
	return text, links, nil
}

// walkPage collects visible text and outgoing links, skipping content-free
// subtrees.
func walkPage(root *html.Node) (string, []*url.URL) {
	var sb strings.Builder
	var links []*url.URL

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "nav", "footer", "iframe", "svg":
				return
			case "a":
				for _, attr := range n.Attr {
					if attr.Key != "href" {
						continue
					}
					if link, err := url.Parse(attr.Val); err == nil {
						links = append(links, link)
					}
				}
			}
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				sb.WriteString(trimmed)
				sb.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return strings.TrimSpace(sb.String()), links
}

func pageKey(u *url.URL) string {
	key := *u
	key.Fragment = ""
	return key.String()
}
