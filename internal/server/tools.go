package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names as exposed over MCP.
const (
	ToolSuggestSelectors          = "suggestSelectors"
	ToolGenerateMocksFromNetwork  = "generateMocksFromNetwork"
	ToolGenerateTestFromRecording = "generateTestFromRecording"
)

var elementProperties = map[string]any{
	"tagName":     map[string]any{"type": "string", "description": `The HTML tag name (e.g., "button", "input", "div")`},
	"role":        map[string]any{"type": "string", "description": "The ARIA role attribute"},
	"textContent": map[string]any{"type": "string", "description": "Visible text content inside the element"},
	"ariaLabel":   map[string]any{"type": "string", "description": "The aria-label attribute"},
	"placeholder": map[string]any{"type": "string", "description": "The placeholder attribute (for inputs)"},
	"testId":      map[string]any{"type": "string", "description": "The data-testid attribute"},
	"name":        map[string]any{"type": "string", "description": "The name attribute (for form elements)"},
}

var networkRequestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"url":    map[string]any{"type": "string", "description": "The request URL"},
		"method": map[string]any{"type": "string", "description": "The HTTP method (GET, POST, etc.)"},
		"response": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status": map[string]any{"type": "number", "description": "HTTP status code"},
				"body":   map[string]any{"description": "Response body (can be any JSON-serializable value)"},
			},
			"required": []string{"body"},
		},
	},
	"required": []string{"url", "method", "response"},
}

var interactionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type":        "string",
			"enum":        []string{"click", "type", "navigate"},
			"description": "The type of user interaction",
		},
		"target": map[string]any{
			"type":        "object",
			"description": "The target element for the interaction",
			"properties":  elementProperties,
			"required":    []string{"tagName"},
		},
		"value":     map[string]any{"type": "string", "description": `The text content for "type" events`},
		"url":       map[string]any{"type": "string", "description": `The URL for "navigate" events`},
		"timestamp": map[string]any{"type": "number", "description": "Timestamp of the interaction"},
	},
	"required": []string{"type"},
}

func (s *Server) registerTools() {
	suggest := []mcp.ToolOption{
		mcp.WithDescription("Suggest testing-library selectors for a DOM element. Prioritizes accessible selectors (role > label > text > placeholder > testid)."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	for _, name := range []string{"tagName", "role", "textContent", "ariaLabel", "placeholder", "testId", "name"} {
		prop := elementProperties[name].(map[string]any)
		opts := []mcp.PropertyOption{mcp.Description(prop["description"].(string))}
		if name == "tagName" {
			opts = append(opts, mcp.Required())
		}
		suggest = append(suggest, mcp.WithString(name, opts...))
	}
	s.mcp.AddTool(mcp.NewTool(ToolSuggestSelectors, suggest...), s.handleSuggestSelectors)

	s.mcp.AddTool(
		mcp.NewTool(ToolGenerateMocksFromNetwork,
			mcp.WithDescription("Generate TWD mock request handlers from captured network requests/responses."),
			mcp.WithArray("requests",
				mcp.Required(),
				mcp.Description("Array of captured network requests"),
				mcp.Items(networkRequestSchema),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		s.handleGenerateMocks,
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolGenerateTestFromRecording,
			mcp.WithDescription("Generate a complete TWD test file from browser recording data (interactions and optional network calls)."),
			mcp.WithArray("interactions",
				mcp.Required(),
				mcp.Description("Array of user interactions captured from browser"),
				mcp.Items(interactionSchema),
			),
			mcp.WithArray("networkCalls",
				mcp.Description("Optional array of network requests to mock"),
				mcp.Items(networkRequestSchema),
			),
			mcp.WithString("testName",
				mcp.Description(`Name for the generated test (defaults to "recorded user flow")`),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		s.handleGenerateTest,
	)
}
