// Package query implements the stateless query surface over the
// documentation and example stores: weighted substring search,
// category aggregation, and by-id retrieval.
package query

import (
	"sort"
	"strings"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
)

// Weights are the relevance weights per match tier. A title hit must
// always outrank a content-only hit, so Title > Content > Tag is
// enforced by config validation, not here.
type Weights struct {
	Title   int
	Content int
	Tag     int
}

// DefaultWeights are the tuned scoring defaults.
var DefaultWeights = Weights{Title: 10, Content: 3, Tag: 1}

const (
	// DefaultLimit is the result cap applied when the caller passes 0.
	DefaultLimit = 10
	// MaxLimit is the hard result cap.
	MaxLimit = 50
	// snippetRadius is the number of content bytes kept on each side
	// of the first match when building a snippet.
	snippetRadius = 80
)

// Result is a single search hit. Derived per query, never stored.
type Result struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Category docs.Category `json:"category"`
	Score    int           `json:"score"`
	Snippet  string        `json:"snippet"`
}

// CategoryInfo is the derived per-category aggregate.
type CategoryInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
}

// Options tune the engine. Zero values fall back to the defaults above.
type Options struct {
	Weights      Weights
	DefaultLimit int
	MaxLimit     int
}

// Engine answers queries against immutable stores. All methods are
// pure reads and safe for concurrent use.
type Engine struct {
	docs         *docs.Store
	examples     *docs.ExampleStore
	weights      Weights
	defaultLimit int
	maxLimit     int
}

// NewEngine creates a query engine over the given stores.
func NewEngine(store *docs.Store, examples *docs.ExampleStore, opts Options) *Engine {
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = MaxLimit
	}
	return &Engine{
		docs:         store,
		examples:     examples,
		weights:      opts.Weights,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
	}
}

// Search scans the document store for case-insensitive substring
// matches in title, content, and tags. Results are ordered by score
// descending; ties keep store insertion order. limit <= 0 means
// DefaultLimit; limits above MaxLimit are clamped.
// An empty or whitespace-only query returns no results.
func (e *Engine) Search(query string, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = e.defaultLimit
	}
	if limit > e.maxLimit {
		limit = e.maxLimit
	}

	var results []Result
	for _, a := range e.docs.All() {
		score := e.score(a, q)
		if score == 0 {
			continue
		}
		results = append(results, Result{
			ID:       a.ID,
			Title:    a.Title,
			Category: a.Category,
			Score:    score,
			Snippet:  snippet(a.Content, q),
		})
	}

	// Stable sort preserves insertion order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// score computes the weighted match count for one article.
func (e *Engine) score(a *docs.Article, q string) int {
	score := strings.Count(strings.ToLower(a.Title), q) * e.weights.Title
	score += strings.Count(strings.ToLower(a.Content), q) * e.weights.Content
	for _, tag := range a.Tags {
		score += strings.Count(strings.ToLower(tag), q) * e.weights.Tag
	}
	return score
}

// snippet extracts a window of content around the first match.
// Falls back to the head of the content when only title or tags matched.
func snippet(content, q string) string {
	lower := strings.ToLower(content)
	idx := strings.Index(lower, q)
	if idx < 0 {
		idx = 0
	}

	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(q) + snippetRadius
	if end > len(content) {
		end = len(content)
	}

	s := strings.TrimSpace(content[start:end])
	if start > 0 {
		s = "..." + s
	}
	if end < len(content) {
		s += "..."
	}
	return s
}

// FullDoc returns the complete article for id.
func (e *Engine) FullDoc(id string) (*docs.Article, error) {
	return e.docs.Get(id)
}

// Example returns the code example for name.
func (e *Engine) Example(name string) (*docs.Example, error) {
	return e.examples.Get(name)
}

// ExampleNames returns all known example names in insertion order.
func (e *Engine) ExampleNames() []string {
	return e.examples.Names()
}

// Docs returns the underlying document store.
func (e *Engine) Docs() *docs.Store {
	return e.docs
}

// Categories aggregates the document store per category, sorted by
// article count descending with alphabetical tie-breaking. The counts
// always sum to the store size: every article has exactly one category.
func (e *Engine) Categories() []CategoryInfo {
	counts := make(map[docs.Category]int)
	for _, a := range e.docs.All() {
		counts[a.Category]++
	}

	infos := make([]CategoryInfo, 0, len(counts))
	for c, n := range counts {
		infos = append(infos, CategoryInfo{
			Name:        string(c),
			DisplayName: c.DisplayName(),
			Count:       n,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Count != infos[j].Count {
			return infos[i].Count > infos[j].Count
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}
