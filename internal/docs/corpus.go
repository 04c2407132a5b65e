package docs

// DefaultStore returns the built-in NextMCP documentation corpus.
// Panics only on a programming error in the static definitions.
func DefaultStore() *Store {
	s, err := NewStore(defaultArticles)
	if err != nil {
		panic("docs: invalid built-in corpus: " + err.Error())
	}
	return s
}

// DefaultExampleStore returns the built-in example corpus.
func DefaultExampleStore() *ExampleStore {
	s, err := NewExampleStore(defaultExamples)
	if err != nil {
		panic("docs: invalid built-in examples: " + err.Error())
	}
	return s
}

var defaultArticles = []Article{
	{
		ID:    "getting-started",
		Title: "Getting Started with NextMCP",
		Content: `NextMCP is a production-grade SDK for building MCP (Model Context Protocol) servers with minimal boilerplate.

Key Features:
- Decorator-based API for tools, prompts, and resources
- Built-in health checks and metrics
- Automatic MCP protocol handling
- Production-ready with logging and error handling
- Easy deployment

Quick Start:
1. Install: pip install nextmcp
2. Create app.py with @app.tool(), @app.prompt(), @app.resource()
3. Run: python app.py
`,
		Category: CategoryGettingStarted,
		Tags:     []string{"getting-started", "quickstart", "basics"},
	},
	{
		ID:    "tools",
		Title: "NextMCP Tools",
		Content: `Tools are model-driven actions - callable functions exposed to AI models.

Decorator: @app.tool()

Example:
` + "```python" + `
@app.tool()
def search_docs(query: str) -> dict:
    '''Search documentation for the given query.'''
    results = search(query)
    return {"results": results}
` + "```" + `

Best Practices:
- Use clear function names and docstrings
- Return JSON-serializable data
- Handle errors gracefully
- Provide type hints
`,
		Category: CategoryCorePrimitives,
		Tags:     []string{"tools", "primitives", "api"},
	},
	{
		ID:    "prompts",
		Title: "NextMCP Prompts",
		Content: `Prompts are user-driven workflow templates that guide AI assistants.

Decorator: @app.prompt()

Example:
` + "```python" + `
@app.prompt(description="Research a topic")
@argument("topic", description="Topic to research")
@argument("depth", suggestions=["basic", "detailed"])
def research(topic: str, depth: str = "basic") -> str:
    return f"Research {topic} at {depth} level..."
` + "```" + `

Features:
- Arguments with suggestions
- Completion functions
- Tags for organization
- Dynamic content generation
`,
		Category: CategoryCorePrimitives,
		Tags:     []string{"prompts", "primitives", "workflows"},
	},
	{
		ID:    "resources",
		Title: "NextMCP Resources",
		Content: `Resources are application-driven context providers - data exposed to models.

Decorator: @app.resource()

Static Resource:
` + "```python" + `
@app.resource("config://app", description="App config")
def app_config() -> dict:
    return {"version": "1.0.0"}
` + "```" + `

Dynamic Resource Template:
` + "```python" + `
@app.resource_template("docs://{doc_id}")
async def get_doc(doc_id: str) -> dict:
    return load_document(doc_id)
` + "```" + `

Features:
- Static and dynamic resources
- Subscribable resources (real-time updates)
- Template parameters with completion
- Custom URI schemes
`,
		Category: CategoryCorePrimitives,
		Tags:     []string{"resources", "primitives", "context"},
	},
	{
		ID:    "authentication",
		Title: "NextMCP Authentication",
		Content: `NextMCP supports multiple authentication methods:

1. API Keys:
` + "```python" + `
from nextmcp.auth import APIKeyAuth

auth = APIKeyAuth()
auth.add_key("key-123", "user1")
app.add_middleware(auth)
` + "```" + `

2. JWT Tokens:
` + "```python" + `
from nextmcp.auth import JWTAuth

auth = JWTAuth(secret="your-secret")
app.add_middleware(auth)
` + "```" + `

3. RBAC (Role-Based Access Control):
` + "```python" + `
from nextmcp.auth import RBACAuth

auth = RBACAuth()
auth.add_role("admin", ["read", "write", "delete"])
app.add_middleware(auth)
` + "```" + `

Best Practices:
- Store secrets in environment variables
- Use HTTPS in production
- Implement proper token expiration
- Log auth failures for monitoring
`,
		Category: CategoryAuthentication,
		Tags:     []string{"auth", "security", "middleware"},
	},
	{
		ID:    "middleware",
		Title: "NextMCP Middleware",
		Content: `Middleware intercepts requests and responses for cross-cutting concerns.

Built-in Middleware:
- Authentication (API Key, JWT, RBAC)
- Rate Limiting
- CORS
- Request Logging
- Error Handling

Custom Middleware:
` + "```python" + `
from nextmcp.middleware import Middleware

class CustomMiddleware(Middleware):
    async def before_request(self, request):
        # Process request
        pass

    async def after_response(self, response):
        # Process response
        return response

app.add_middleware(CustomMiddleware())
` + "```" + `

Order matters - middleware is executed in the order added.
`,
		Category: CategoryMiddleware,
		Tags:     []string{"middleware", "interceptors", "cross-cutting"},
	},
	{
		ID:    "deployment",
		Title: "Deploying NextMCP Servers",
		Content: `NextMCP servers can be deployed in multiple ways:

1. Direct:
   python app.py

2. Docker:
   - Create Dockerfile with a slim base image
   - Install nextmcp and dependencies
   - CMD ["python", "app.py"]

3. Cloud Platforms:
   - Render, Railway, Fly.io
   - K8s with health checks
   - Serverless (with adaptations)

Health Checks:
NextMCP includes a built-in /health endpoint that returns:
{"status": "healthy", "service": "your-server-name"}

Environment Variables:
- PORT: Server port (default: 8000)
- HOST: Server host (default: 0.0.0.0)
- LOG_LEVEL: Logging level (default: INFO)
`,
		Category: CategoryDeployment,
		Tags:     []string{"deployment", "docker", "cloud", "production"},
	},
	{
		ID:    "examples",
		Title: "NextMCP Examples",
		Content: `NextMCP includes many example servers:

1. knowledge_base: All 3 primitives (tools, prompts, resources)
2. weather_bot: Simple tool-based server
3. blog_server: Resource templates and content management
4. auth_api_key: API key authentication
5. auth_jwt: JWT token authentication
6. auth_rbac: Role-based access control
7. metrics_example: Prometheus metrics integration
8. plugin_example: Plugin system
9. websocket_chat: WebSocket transport

Each example demonstrates specific NextMCP features and patterns.
See: https://github.com/KeshavVarad/NextMCP/tree/main/examples
`,
		Category: CategoryExamples,
		Tags:     []string{"examples", "samples", "templates"},
	},
}

var defaultExamples = []Example{
	{
		Name:        "simple-tool",
		Title:       "Basic tool implementation",
		Explanation: "A minimal server exposing a single calculator tool. Shows the core tool decorator and JSON-serializable return values.",
		Code: `from nextmcp import NextMCP

app = NextMCP("my-server")

@app.tool()
def calculate(x: float, y: float, operation: str) -> float:
    """Perform basic arithmetic operations."""
    if operation == "add":
        return x + y
    elif operation == "subtract":
        return x - y
    elif operation == "multiply":
        return x * y
    elif operation == "divide":
        return x / y if y != 0 else float('inf')

if __name__ == "__main__":
    app.run()
`,
		Tags: []string{"tools", "basics"},
	},
	{
		Name:        "auth-setup",
		Title:       "API key authentication setup",
		Explanation: "Protects every tool behind API key middleware. Keys carry per-user roles checked on each call.",
		Code: `from nextmcp import NextMCP
from nextmcp.auth import APIKeyAuth

app = NextMCP("secure-server")
auth = APIKeyAuth()
auth.add_key("secret-key-123", "user1", roles=["read", "write"])
app.add_middleware(auth)

@app.tool()
def protected_action(data: str) -> dict:
    """This tool requires authentication."""
    return {"success": True, "data": data}

if __name__ == "__main__":
    app.run()
`,
		Tags: []string{"auth", "middleware"},
	},
	{
		Name:        "resource-template",
		Title:       "Dynamic resource with templates",
		Explanation: "Combines a static resource with a parameterized resource template and a completion function for the template parameter.",
		Code: `from nextmcp import NextMCP

app = NextMCP("docs-server")

# Static resource
@app.resource("config://app", description="App configuration")
def get_config() -> dict:
    return {"version": "1.0.0", "name": "My Server"}

# Dynamic resource template
@app.resource_template("docs://{doc_id}", description="Get document by ID")
async def get_document(doc_id: str) -> dict:
    docs = {"readme": "# README\nWelcome!", "api": "# API\nEndpoints..."}
    return {"id": doc_id, "content": docs.get(doc_id, "Not found")}

# Template completion
@app.template_completion("get_document", "doc_id")
def complete_doc_ids(partial: str) -> list[str]:
    all_ids = ["readme", "api", "changelog"]
    return [id for id in all_ids if partial in id]

if __name__ == "__main__":
    app.run()
`,
		Tags: []string{"resources", "templates"},
	},
}
