package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/BRIKEV/twd-mcp/internal/mockgen"
	"github.com/BRIKEV/twd-mcp/internal/model"
	"github.com/BRIKEV/twd-mcp/internal/output"
	"github.com/BRIKEV/twd-mcp/internal/recording"
	"github.com/BRIKEV/twd-mcp/internal/selector"
)

// validator is implemented by every tool input type.
type validator interface {
	Validate() error
}

// bind decodes and validates tool arguments into target.
func bind(request mcp.CallToolRequest, target validator) error {
	if err := request.BindArguments(target); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return target.Validate()
}

// errorResult wraps err in the error envelope returned to MCP clients.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

func (s *Server) handleSuggestSelectors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var el model.Element
	if err := bind(request, &el); err != nil {
		return errorResult(err), nil
	}

	text, err := output.PrettyJSON(selector.Suggest(el))
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGenerateMocks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var capture model.NetworkCapture
	if err := bind(request, &capture); err != nil {
		return errorResult(err), nil
	}

	entries := mockgen.Build(capture.Requests)
	logSkippedMocks(s.loggerFrom(ctx), entries)
	return mcp.NewToolResultText(mockgen.Render(entries)), nil
}

func (s *Server) handleGenerateTest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var rec model.Recording
	if err := bind(request, &rec); err != nil {
		return errorResult(err), nil
	}

	res := recording.Assemble(rec)
	logger := s.loggerFrom(ctx)
	logSkippedMocks(logger, res.Mocks)
	for _, i := range res.Unselectable {
		in := rec.Interactions[i]
		logger.Debug("no selector for interaction target",
			zap.Int("index", i),
			zap.String("type", string(in.Type)),
			zap.String("tag", in.Target.TagName),
		)
	}
	return mcp.NewToolResultText(res.Source), nil
}

func logSkippedMocks(logger *zap.Logger, entries []mockgen.Entry) {
	for _, e := range mockgen.Skipped(entries) {
		logger.Warn("skipped network request",
			zap.Int("index", e.Index),
			zap.String("url", e.URL),
			zap.Error(e.Err),
		)
	}
}
