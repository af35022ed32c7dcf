// Package mcp exposes tools from Model Context Protocol (MCP) servers
// as chat-completion tool definitions, and executes the tool calls the
// model requests against the server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sraesch/go-ai/openrouter"
)

// Client wraps an MCP client session.
type Client struct {
	mcpClient *mcp.Client
	session   *mcp.ClientSession
	timeout   time.Duration
}

// Option configures the MCP client.
type Option func(*clientConfig)

type clientConfig struct {
	timeout time.Duration
}

// WithTimeout sets the timeout for tool execution.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// NewStdioClient creates an MCP client that communicates via stdio with
// a subprocess.
//
// Example:
//
//	client, err := mcp.NewStdioClient(ctx, "./my-mcp-server", nil)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	tools, err := client.Tools(ctx)
func NewStdioClient(ctx context.Context, command string, args []string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mcpClient := mcp.NewClient(&mcp.Implementation{
		Name:    "go-ai",
		Version: "0.1.0",
	}, nil)

	cmd := exec.Command(command, args...)
	transport := &mcp.CommandTransport{
		Command: cmd,
	}

	session, err := mcpClient.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}

	return &Client{
		mcpClient: mcpClient,
		session:   session,
		timeout:   cfg.timeout,
	}, nil
}

// Tools returns the server's tools as wire tool definitions, ready to
// be added to a chat request. Strict mode is left off because server
// schemas are not authored for it.
func (c *Client) Tools(ctx context.Context) ([]openrouter.JSONTool, error) {
	result, err := c.session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("listing MCP tools: %w", err)
	}

	tools := make([]openrouter.JSONTool, 0, len(result.Tools))
	for _, tool := range result.Tools {
		tools = append(tools, openrouter.JSONTool{
			Type: "function",
			Function: openrouter.FunctionInfo{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  toolParameters(tool),
			},
		})
	}

	return tools, nil
}

// toolParameters converts the server's input schema to a raw schema
// document, falling back to an unconstrained object.
func toolParameters(tool *mcp.Tool) json.RawMessage {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil || string(raw) == "null" {
		return json.RawMessage(`{"type":"object"}`)
	}
	return raw
}

// Call executes a tool call requested by the model and returns the
// tool-role reply message to append to the conversation.
func (c *Client) Call(ctx context.Context, call openrouter.ToolCall) (openrouter.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var arguments map[string]any
	if err := call.DecodeArguments(&arguments); err != nil {
		return openrouter.Message{}, err
	}

	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      call.Function.Name,
		Arguments: arguments,
	})
	if err != nil {
		return openrouter.Message{}, fmt.Errorf("calling MCP tool %q: %w", call.Function.Name, err)
	}

	combined := flattenContent(result.Content)

	if result.IsError {
		return openrouter.Message{}, fmt.Errorf("MCP tool %q failed: %s", call.Function.Name, combined)
	}

	return openrouter.ToolMessage(call.ID, combined), nil
}

// Close closes the MCP client connection.
func (c *Client) Close() error {
	return c.session.Close()
}

// flattenContent extracts text from an MCP tool result. Multiple
// content items are joined with newlines; non-text content (images,
// resources) is represented as descriptive text.
func flattenContent(content []mcp.Content) string {
	var parts []string
	for _, c := range content {
		switch item := c.(type) {
		case *mcp.TextContent:
			parts = append(parts, item.Text)
		case *mcp.ImageContent:
			parts = append(parts, fmt.Sprintf("[Image: %s, %d bytes]", item.MIMEType, len(item.Data)))
		case *mcp.EmbeddedResource:
			if item.Resource != nil {
				parts = append(parts, fmt.Sprintf("[Resource: %s]", item.Resource.URI))
			} else {
				parts = append(parts, "[Resource: embedded]")
			}
		}
	}
	return strings.Join(parts, "\n")
}
