package retrieval

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"floria-be/internal/pkg/logger"
	"floria-be/pkg/events"
	"floria-be/pkg/nlu"
)

const (
	defaultTimeout      = 12 * time.Second
	defaultMaxPageChars = 1800
	defaultMinPageChars = 250
	summaryDelimiter    = "\n\n---\n\n"

	// Some of the whitelisted sites refuse requests without a browser UA.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// contentSelectors is the ordered cascade used to pick the main-content
// region before falling back to the whole document.
var contentSelectors = []string{"main", "article", "#content", ".content", "#page", ".page"}

// chromeSelector removes non-content elements before text extraction.
const chromeSelector = "script, style, noscript, header, footer, nav, aside"

// SourceLink is one accepted page.
type SourceLink struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	SourceName string `json:"source_name"`
}

// Result is the outcome of one retrieval run. Summary is empty when no page
// was accepted.
type Result struct {
	Query           string       `json:"query"`
	NormalizedQuery string       `json:"normalized_query"`
	Summary         string       `json:"summary,omitempty"`
	Sources         []SourceLink `json:"sources"`
}

// Config tunes the engine; zero values fall back to defaults.
type Config struct {
	Timeout      time.Duration
	MaxPageChars int
	MinPageChars int
}

// Engine runs the source -> slug -> template fallback cascade. Attempts are
// sequential and bounded by the per-request timeout; every network or parse
// failure is a silent miss that only surfaces as a decision event.
type Engine struct {
	client       *http.Client
	sources      []Source
	maxPageChars int
	minPageChars int
	log          logger.ILogger
	bus          *events.Bus
}

func NewEngine(cfg Config, sources []Source, log logger.ILogger, bus *events.Bus) *Engine {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxPageChars <= 0 {
		cfg.MaxPageChars = defaultMaxPageChars
	}
	if cfg.MinPageChars <= 0 {
		cfg.MinPageChars = defaultMinPageChars
	}
	if sources == nil {
		sources = DefaultSources
	}
	return &Engine{
		client:       &http.Client{Timeout: cfg.Timeout},
		sources:      sources,
		maxPageChars: cfg.MaxPageChars,
		minPageChars: cfg.MinPageChars,
		log:          log,
		bus:          bus,
	}
}

// FetchPlantSources resolves a plant name against the whitelist. It never
// returns an error: retrieval misses degrade to an empty result. An empty
// slug short-circuits before any network call.
func (e *Engine) FetchPlantSources(ctx context.Context, query string, limit int) *Result {
	normalized := nlu.Slugify(query)
	result := &Result{
		Query:           query,
		NormalizedQuery: normalized,
		Sources:         []SourceLink{},
	}
	if normalized == "" {
		return result
	}

	maxSources := limit
	if maxSources < 1 {
		maxSources = 1
	}

	slugs := CandidateSlugs(normalized)
	seen := map[string]bool{}
	var summaries []string

sourceLoop:
	for _, source := range e.sources {
		if len(result.Sources) >= maxSources {
			break
		}
		for _, slug := range slugs {
			for _, pattern := range source.Patterns {
				if ctx.Err() != nil {
					break sourceLoop
				}
				url := source.URL(pattern, slug)
				text, ok := e.fetchPage(ctx, url)
				if !ok {
					continue
				}
				if utf8.RuneCountInString(text) < e.minPageChars {
					e.reject(url, source.Name, "content_too_short", utf8.RuneCountInString(text))
					continue
				}
				if seen[url] {
					continue
				}
				seen[url] = true

				summaries = append(summaries, fmt.Sprintf("SOURCE: %s\nURL: %s\nEXTRAIT: %s", source.Name, url, text))
				result.Sources = append(result.Sources, SourceLink{
					Title:      source.Name,
					URL:        url,
					SourceName: source.Name,
				})
				e.bus.Publish(events.KindSourceAccepted, "", map[string]interface{}{
					"source": source.Name,
					"url":    url,
					"chars":  utf8.RuneCountInString(text),
				})

				// One valid page per source; move on to the next source.
				continue sourceLoop
			}
		}
	}

	if len(summaries) > 0 {
		result.Summary = strings.Join(summaries, summaryDelimiter)
	}
	return result
}

// fetchPage GETs one candidate URL and extracts its visible main content.
// Any failure is reported as a miss, never as an error.
func (e *Engine) fetchPage(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e.reject(url, "", "bad_request", 0)
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.reject(url, "", "network_error", 0)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.reject(url, "", fmt.Sprintf("status_%d", resp.StatusCode), 0)
		return "", false
	}

	// Some of the whitelisted sites serve ISO-8859-1, not UTF-8.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		e.reject(url, "", "charset_error", 0)
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		e.reject(url, "", "parse_error", 0)
		return "", false
	}

	return e.extractText(doc), true
}

// extractText strips page chrome, picks the best-guess content container and
// returns its collapsed visible text, truncated to the page budget.
func (e *Engine) extractText(doc *goquery.Document) string {
	doc.Find(chromeSelector).Remove()

	container := doc.Selection
	for _, sel := range contentSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			container = node
			break
		}
	}

	text := strings.Join(strings.Fields(container.Text()), " ")
	if runes := []rune(text); len(runes) > e.maxPageChars {
		text = strings.TrimRight(string(runes[:e.maxPageChars]), " ") + "…"
	}
	return text
}

func (e *Engine) reject(url, source, reason string, chars int) {
	e.log.Debug("retrieval", "Candidate URL rejected", map[string]interface{}{
		"url": url, "source": source, "reason": reason, "chars": chars,
	})
	e.bus.Publish(events.KindSourceRejected, "", map[string]interface{}{
		"url": url, "source": source, "reason": reason,
	})
}
