package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/crewsearch/crewsearch/crew"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName = "crew_research"
	ToolName   = "crew_research"
)

// Researcher is the one capability this server exposes.
type Researcher interface {
	Research(ctx context.Context, query string) (*crew.Output, error)
}

type Server struct {
	logger     *slog.Logger
	researcher Researcher
	mcpServer  *server.MCPServer
}

func New(researcher Researcher, version string, logger *slog.Logger) *Server {
	s := &Server{
		logger:     logger,
		researcher: researcher,
		mcpServer: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(false),
		),
	}

	researchTool := mcp.NewTool(
		ToolName,
		mcp.WithDescription("Run a crew-based research system for a given user query. "+
			"Searches the web via LinkUp, analyzes the results, and returns a cited markdown answer."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The research query or question."),
		),
	)
	s.mcpServer.AddTool(researchTool, s.handleResearch)

	return s
}

// handleResearch maps pipeline failures to isError tool results instead of
// protocol errors, so the server keeps serving after a failed call and the
// host can distinguish answers from failures without inspecting prefixes.
func (s *Server) handleResearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Info("research request", "query", query)

	out, err := s.researcher.Research(ctx, query)
	if err != nil {
		s.logger.Error("research failed", "query", query, "err", err)
		return mcp.NewToolResultError(renderError(err)), nil
	}

	s.logger.Info("research done", "query", query, "runId", out.RunID, "tokens", out.Usage.TotalTokens)
	return mcp.NewToolResultText(out.Raw), nil
}

// Serve runs the stdio transport until the host closes the stream.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio", "server", ServerName)

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrapf(err, "stdio transport failed")
	}
	return nil
}

// renderError keeps the error texts the tool has always produced.
func renderError(err error) string {
	if errors.Is(err, errors.ErrSearch) {
		return fmt.Sprintf("Error during LinkUp search: %s", err)
	}
	return fmt.Sprintf("Error during crew execution: %s", err)
}
