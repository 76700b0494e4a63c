package mcp

import (
	"context"
	"fmt"

	"github.com/Jcblmao/proxmoxMCP/internal/report"
	"github.com/rs/zerolog/log"
)

// registerStorageTools registers the storage pool and usage breakdown tools.
func (e *Executor) registerStorageTools() {
	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_storage",
			Description: "List storage pools with status, type, and usage. Queries all nodes unless one is given.",
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
			return exec.executeGetStorage(ctx, args)
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_storage_usage",
			Description: "Get a space-consumption breakdown for storage on a node: totals, volume listing sorted by size, and the largest consumers.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Node name to query",
					},
					"storage": {
						Type:        "string",
						Description: "Optional specific storage to query (all if not specified)",
					},
					"format": formatProperty(),
				},
				Required: []string{"node"},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetStorageUsage(ctx, args)
		},
	})
}

func (e *Executor) executeGetStorage(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)

	names, err := e.nodesToQuery(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list storage: %w", err)), nil
	}

	pools := make([]report.StoragePool, 0)
	seen := make(map[string]bool)
	for _, name := range names {
		entries, queryErr := e.proxmox.GetStorage(ctx, name)
		if queryErr != nil {
			log.Warn().
				Str("node", name).
				Err(queryErr).
				Msg("Could not query storage on node")
			continue
		}
		for _, entry := range entries {
			pool := report.NormalizeStorage(entry)
			// Shared storage shows up on every node; report it once.
			if seen[pool.Name] {
				continue
			}
			seen[pool.Name] = true
			pools = append(pools, pool)
		}
	}

	return respond(args, pools, report.RenderStorage(pools))
}

func (e *Executor) executeGetStorageUsage(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)
	if node == "" {
		return NewErrorResult(fmt.Errorf("node is required")), nil
	}
	filter, _ := args["storage"].(string)

	entries, err := e.proxmox.GetStorage(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to get storage usage: %w", err)), nil
	}

	usages := make([]report.StorageUsage, 0, len(entries))
	for _, entry := range entries {
		name, _ := entry["storage"].(string)
		if filter != "" && name != filter {
			continue
		}

		content, contentErr := e.proxmox.GetStorageContent(ctx, node, name)
		if contentErr != nil {
			log.Warn().
				Str("node", node).
				Str("storage", name).
				Err(contentErr).
				Msg("Could not get storage content")
			continue
		}

		// The totals sub-query fails independently of the content listing;
		// totals then degrade to zero instead of dropping the storage.
		status, statusErr := e.proxmox.GetStorageStatus(ctx, node, name)
		if statusErr != nil {
			log.Warn().
				Str("node", node).
				Str("storage", name).
				Err(statusErr).
				Msg("Could not get storage status totals")
			status = nil
		}

		usages = append(usages, report.NormalizeStorageUsage(entry, content, status))
	}

	return respond(args, usages, report.RenderStorageUsage(usages))
}
