package mcp

import (
	"context"
	"fmt"

	"github.com/Jcblmao/proxmoxMCP/internal/report"
	"github.com/rs/zerolog/log"
)

// registerGuestTools registers the VM and container listing tools.
func (e *Executor) registerGuestTools() {
	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_vms",
			Description: "List QEMU virtual machines with status, owning node, CPU, and memory usage. Queries all nodes unless one is given.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Optional node name to filter by",
					},
					"format": formatProperty(),
				},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeListGuests(ctx, args, "vm")
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_containers",
			Description: "List LXC containers with status, owning node, CPU, and memory usage. Queries all nodes unless one is given.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Optional node name to filter by",
					},
					"format": formatProperty(),
				},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeListGuests(ctx, args, "container")
		},
	})
}

// executeListGuests sweeps the node scope for VMs or containers. A node whose
// query fails is logged and skipped; the sweep still returns the rest.
func (e *Executor) executeListGuests(ctx context.Context, args map[string]interface{}, kind string) (CallToolResult, error) {
	node, _ := args["node"].(string)

	names, err := e.nodesToQuery(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list %ss: %w", kind, err)), nil
	}

	guests := make([]report.Guest, 0)
	for _, name := range names {
		var entries []map[string]any
		var queryErr error
		if kind == "vm" {
			entries, queryErr = e.proxmox.GetVMs(ctx, name)
		} else {
			entries, queryErr = e.proxmox.GetContainers(ctx, name)
		}
		if queryErr != nil {
			log.Warn().
				Str("node", name).
				Str("kind", kind).
				Err(queryErr).
				Msg("Could not query guests on node")
			continue
		}
		for _, entry := range entries {
			guests = append(guests, report.NormalizeGuest(entry, name))
		}
	}

	if kind == "vm" {
		return respond(args, guests, report.RenderVMs(guests))
	}
	return respond(args, guests, report.RenderContainers(guests))
}
