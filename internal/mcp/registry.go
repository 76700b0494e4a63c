package mcp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ToolHandler executes one registered tool.
type ToolHandler func(ctx context.Context, e *Executor, args map[string]interface{}) (CallToolResult, error)

// RegisteredTool pairs a tool definition with its handler.
type RegisteredTool struct {
	Definition Tool
	Handler    ToolHandler
}

// ToolRegistry holds the registered tools in registration order.
type ToolRegistry struct {
	order []string
	tools map[string]RegisteredTool
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]RegisteredTool),
	}
}

// Register adds a tool. Re-registering a name replaces the handler but keeps
// the original position.
func (r *ToolRegistry) Register(tool RegisteredTool) {
	name := tool.Definition.Name
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
}

// ListTools returns all tool definitions in registration order.
func (r *ToolRegistry) ListTools() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].Definition)
	}
	return tools
}

// Execute runs a tool by name. Any panic escaping a handler is converted into
// a single error result naming the tool, so one misbehaving handler cannot
// take down the server.
func (r *ToolRegistry) Execute(ctx context.Context, e *Executor, name string, args map[string]interface{}) (result CallToolResult, err error) {
	tool, ok := r.tools[name]
	if !ok {
		return NewErrorResult(fmt.Errorf("unknown tool: %s", name)), nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Str("tool", name).
				Interface("panic", rec).
				Msg("Tool handler panicked")
			result = NewErrorResult(fmt.Errorf("%s: internal error: %v", name, rec))
			err = nil
		}
	}()

	return tool.Handler(ctx, e, args)
}
