package mcp

import (
	"context"
	"fmt"

	"github.com/Jcblmao/proxmoxMCP/internal/report"
	"github.com/rs/zerolog/log"
)

// registerNodeTools registers the node listing and status tools.
func (e *Executor) registerNodeTools() {
	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_nodes",
			Description: "List all nodes in the Proxmox cluster with status, uptime, CPU, memory, and disk usage.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"format": formatProperty(),
				},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetNodes(ctx, args)
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_node_status",
			Description: "Get detailed status for a single Proxmox node.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Node name to query",
					},
					"format": formatProperty(),
				},
				Required: []string{"node"},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetNodeStatus(ctx, args)
		},
	})
}

func (e *Executor) executeGetNodes(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	entries, err := e.proxmox.GetNodes(ctx)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list nodes: %w", err)), nil
	}

	nodes := make([]report.Node, 0, len(entries))
	for _, entry := range entries {
		name, _ := entry["node"].(string)
		status, err := e.proxmox.GetNodeStatus(ctx, name)
		if err != nil {
			// Keep the node in the listing with defaulted detail fields.
			log.Warn().
				Str("node", name).
				Err(err).
				Msg("Could not query node status")
			status = nil
		}
		nodes = append(nodes, report.NormalizeNode(entry, status))
	}

	return respond(args, nodes, report.RenderNodes(nodes))
}

func (e *Executor) executeGetNodeStatus(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)
	if node == "" {
		return NewErrorResult(fmt.Errorf("node is required")), nil
	}

	status, err := e.proxmox.GetNodeStatus(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to get status for node %s: %w", node, err)), nil
	}

	// A successful status query implies the node is reachable and online.
	record := report.NormalizeNode(map[string]any{"node": node, "status": "online"}, status)
	return respond(args, record, report.RenderNodeStatus(record))
}
