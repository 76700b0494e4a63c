package mcp

import (
	"context"
	"fmt"

	"github.com/Jcblmao/proxmoxMCP/internal/report"
)

// registerClusterTools registers the cluster status tool.
func (e *Executor) registerClusterTools() {
	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_cluster_status",
			Description: "Get cluster name, quorum state, and node count.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"format": formatProperty(),
				},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetClusterStatus(ctx, args)
		},
	})
}

func (e *Executor) executeGetClusterStatus(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	items, err := e.proxmox.GetClusterStatus(ctx)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to get cluster status: %w", err)), nil
	}

	status := report.NormalizeClusterStatus(items)
	return respond(args, status, report.RenderClusterStatus(status))
}
