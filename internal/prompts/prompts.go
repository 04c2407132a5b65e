// Package prompts renders the parameterized workflow guidance exposed
// as MCP prompts: server building, debugging, and learning paths.
// All rendering is pure template substitution; identical arguments
// always produce identical text.
package prompts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ServerType enumerates the kinds of MCP servers the build prompt covers.
type ServerType string

const (
	ServerTypeToolBased     ServerType = "tool-based"
	ServerTypeResourceBased ServerType = "resource-based"
	ServerTypeHybrid        ServerType = "hybrid"
)

// Level enumerates learner experience levels.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ErrInvalidServerType indicates an unknown server type argument.
var ErrInvalidServerType = errors.New("invalid server type")

// ErrInvalidLevel indicates an unknown experience level argument.
var ErrInvalidLevel = errors.New("invalid experience level")

// curriculum is the fixed topic ordering used by Learn. Topics are
// emitted in this order regardless of how the caller listed them.
var curriculum = []string{
	"getting-started",
	"tools",
	"prompts",
	"resources",
	"authentication",
	"middleware",
	"deployment",
	"examples",
}

// BuildServer renders the build-a-server workflow for the given server
// type and feature set. Features are deduplicated and sorted so that
// equal sets yield byte-identical output.
func BuildServer(serverType ServerType, features []string) (string, error) {
	switch serverType {
	case ServerTypeToolBased, ServerTypeResourceBased, ServerTypeHybrid:
	default:
		return "", fmt.Errorf("%w: %q (expected tool-based, resource-based, or hybrid)",
			ErrInvalidServerType, serverType)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Build a NextMCP server of type: %s\n\n", serverType)
	sb.WriteString(`Step 1: Setup
- Create app.py
- Import: from nextmcp import NextMCP
- Initialize: app = NextMCP("your-server-name", description="...")

Step 2: Implement primitives based on server type:
`)

	switch serverType {
	case ServerTypeToolBased:
		sb.WriteString(`- Add tools with @app.tool() decorator
- Each tool should have clear docstrings
- Return JSON-serializable data
- Handle errors gracefully
`)
	case ServerTypeResourceBased:
		sb.WriteString(`- Add static resources with @app.resource()
- Add resource templates with @app.resource_template()
- Use custom URI schemes for your domain
- Provide completion functions for template parameters
`)
	case ServerTypeHybrid:
		sb.WriteString(`- Add a search tool with @app.tool()
- Add resource templates with @app.resource_template()
- Add prompts for common workflows with @app.prompt()
- Include a statistics resource
`)
	}

	for i, feature := range normalizeSet(features) {
		step := i + 3
		switch feature {
		case "auth":
			fmt.Fprintf(&sb, "\nStep %d: Add Authentication\n", step)
			sb.WriteString(`- Choose: APIKeyAuth, JWTAuth, or RBACAuth
- Add keys/tokens for test users
- Apply middleware: app.add_middleware(auth)
`)
		case "metrics":
			fmt.Fprintf(&sb, "\nStep %d: Add Metrics\n", step)
			sb.WriteString(`- Import: from nextmcp.metrics import PrometheusMetrics
- Initialize: metrics = PrometheusMetrics()
- Add middleware: app.add_middleware(metrics)
`)
		case "rate-limiting":
			fmt.Fprintf(&sb, "\nStep %d: Add Rate Limiting\n", step)
			sb.WriteString(`- Import: from nextmcp.middleware import RateLimiter
- Configure requests-per-minute per client
- Add middleware: app.add_middleware(limiter)
`)
		default:
			fmt.Fprintf(&sb, "\nStep %d: Add %s\n", step, feature)
			fmt.Fprintf(&sb, "- Search the documentation for %q to find the right middleware\n", feature)
		}
	}

	sb.WriteString(`
Final Step: Run server
- Add: if __name__ == "__main__": app.run()
- Test locally: python app.py
- Access: http://localhost:8000

Use search_documentation() and get_example_code() tools for reference.
`)
	return sb.String(), nil
}

// debugGuides is the canned guidance per known issue category.
var debugGuides = map[string]string{
	"server-not-starting": `Debugging server startup issues:

1. Check the runtime version (NextMCP requires 3.10+)
2. Verify NextMCP installation: pip show nextmcp
3. Check for import errors: python -c "import nextmcp; print(nextmcp.__version__)"
4. Review error logs for stack traces
5. Ensure port 8000 is available: lsof -i :8000

Common causes:
- Missing dependencies
- Port already in use
- Runtime version incompatibility
- Syntax errors in app.py
`,
	"tool-not-working": `Debugging tool execution:

1. Verify decorator is correct: @app.tool()
2. Check function signature has type hints
3. Ensure return type is JSON-serializable
4. Test function independently: python -c "from app import my_tool; print(my_tool('test'))"
5. Review server logs for exceptions

Common causes:
- Missing type hints
- Returning non-JSON types (objects, datetime, etc.)
- Uncaught exceptions in tool code
- Incorrect argument names
`,
	"auth-failing": `Debugging authentication:

1. Verify middleware is added: app.add_middleware(auth)
2. Check API key/token format
3. Review auth logs for rejection reasons
4. Test with curl: curl -H "Authorization: Bearer TOKEN" http://localhost:8000/health
5. Ensure auth middleware is before other middleware

Common causes:
- Wrong token format
- Expired JWT tokens
- Middleware order incorrect
- Missing auth header in request
`,
	"deployment-error": `Debugging deployment issues:

1. Check health endpoint: curl http://your-app.com/health
2. Review deployment logs
3. Verify environment variables are set
4. Ensure the correct runtime version in production
5. Check Dockerfile if using containers

Common causes:
- Missing environment variables
- Incorrect PORT binding
- Health check timeout
- Dependencies not installed
- File paths incorrect in production

Use get_full_doc("deployment") for a detailed deployment guide.
`,
}

// Debug returns troubleshooting steps for the given issue category.
// Unrecognized issues get generic guidance; Debug never fails.
func Debug(issue string) string {
	if guide, ok := debugGuides[issue]; ok {
		return guide
	}
	return fmt.Sprintf(`Debug steps for %q are not available.

General approach:
1. Reproduce the issue with LOG_LEVEL=DEBUG
2. Use search_documentation(%q) to find related articles
3. Compare your code against get_example_code("simple-tool")
4. Check the /health endpoint to confirm the server is up
`, issue, issue)
}

// Learn renders a learning path for the requested topics. Topics are
// ordered by the fixed curriculum; unknown topics are dropped without
// error. The experience level must be one of the enumerated values.
func Learn(topics []string, level Level) (string, error) {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return "", fmt.Errorf("%w: %q (expected beginner, intermediate, or advanced)",
			ErrInvalidLevel, level)
	}

	requested := make(map[string]bool, len(topics))
	for _, t := range topics {
		requested[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var path []string
	for _, t := range curriculum {
		if requested[t] {
			path = append(path, t)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Learning path (%s level)\n\n", level)

	if len(path) == 0 {
		sb.WriteString(`No known topics requested. Start from the beginning:
Use: get_full_doc("getting-started")
`)
		return sb.String(), nil
	}

	for i, topic := range path {
		fmt.Fprintf(&sb, "Topic %d: %s\n", i+1, topic)
		fmt.Fprintf(&sb, "- Read the full article: get_full_doc(%q)\n", topic)
		switch level {
		case LevelBeginner:
			sb.WriteString("- Copy get_example_code(\"simple-tool\") and run it unchanged\n")
			sb.WriteString("- Change one thing at a time and re-run\n")
		case LevelIntermediate:
			sb.WriteString("- Adapt an example to your own use case\n")
			sb.WriteString("- Use search_documentation() to find related topics\n")
		case LevelAdvanced:
			sb.WriteString("- Combine this topic with middleware and deployment\n")
			sb.WriteString("- Review the production checklist in get_full_doc(\"deployment\")\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("After finishing, deploy with get_full_doc(\"deployment\") and iterate.\n")
	return sb.String(), nil
}

// Curriculum returns a copy of the fixed topic ordering.
func Curriculum() []string {
	out := make([]string, len(curriculum))
	copy(out, curriculum)
	return out
}

// normalizeSet lowercases, trims, deduplicates, and sorts a feature list.
func normalizeSet(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		v := strings.ToLower(strings.TrimSpace(it))
		if v == "" || v == "none" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
