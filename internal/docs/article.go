// Package docs holds the immutable documentation corpus served over MCP.
// The corpus is built once at startup and never mutated afterwards, so
// concurrent reads need no synchronization.
package docs

// Category is one of the fixed documentation categories.
type Category string

const (
	CategoryGettingStarted Category = "getting-started"
	CategoryCorePrimitives Category = "core-primitives"
	CategoryAuthentication Category = "authentication"
	CategoryMiddleware     Category = "middleware"
	CategoryDeployment     Category = "deployment"
	CategoryExamples       Category = "examples"
)

// knownCategories is the closed set of valid categories.
var knownCategories = map[Category]string{
	CategoryGettingStarted: "Getting Started",
	CategoryCorePrimitives: "Core Primitives",
	CategoryAuthentication: "Authentication",
	CategoryMiddleware:     "Middleware",
	CategoryDeployment:     "Deployment",
	CategoryExamples:       "Examples",
}

// Valid reports whether c belongs to the known category set.
func (c Category) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

// DisplayName returns the human-readable category name.
// Returns the raw value for unknown categories.
func (c Category) DisplayName() string {
	if name, ok := knownCategories[c]; ok {
		return name
	}
	return string(c)
}

// Article is a single documentation article.
// Articles are created at process start and never mutated.
type Article struct {
	ID       string
	Title    string
	Content  string // markdown
	Category Category
	Tags     []string
}

// Example is a runnable code sample with explanatory text.
type Example struct {
	Name        string
	Title       string
	Code        string
	Explanation string
	Tags        []string
}
