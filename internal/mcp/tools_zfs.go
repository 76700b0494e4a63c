package mcp

import (
	"context"
	"fmt"

	"github.com/Jcblmao/proxmoxMCP/internal/report"
	"github.com/rs/zerolog/log"
)

// registerZFSTools registers the ZFS pool, dataset, and physical disk tools.
func (e *Executor) registerZFSTools() {
	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "list_zfs_pools",
			Description: "List ZFS storage pools with health, size, allocation, fragmentation, and dedup ratio. Queries all nodes unless one is given.",
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
			return exec.executeListZFSPools(ctx, args)
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_zfs_pool_status",
			Description: "Get detailed status of one ZFS pool: health, state, scan status, errors, and the disk layout tree.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Node name where the pool is located",
					},
					"pool": {
						Type:        "string",
						Description: "Name of the ZFS pool",
					},
					"format": formatProperty(),
				},
				Required: []string{"node", "pool"},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetZFSPoolStatus(ctx, args)
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "list_zfs_datasets",
			Description: "List ZFS datasets on a node with usage and mountpoints.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Node name to query",
					},
					"pool": {
						Type:        "string",
						Description: "Optional pool name to filter datasets",
					},
					"format": formatProperty(),
				},
				Required: []string{"node"},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeListZFSDatasets(ctx, args)
		},
	})

	e.registry.Register(RegisteredTool{
		Definition: Tool{
			Name:        "get_disk_list",
			Description: "List physical disks on a node with size, model, serial, SMART health, and current usage.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]PropertySchema{
					"node": {
						Type:        "string",
						Description: "Node name to query",
					},
					"include_partitions": {
						Type:        "boolean",
						Description: "Whether to include partition entries",
					},
					"format": formatProperty(),
				},
				Required: []string{"node"},
			},
		},
		Handler: func(ctx context.Context, exec *Executor, args map[string]interface{}) (CallToolResult, error) {
			return exec.executeGetDiskList(ctx, args)
		},
	})
}

func (e *Executor) executeListZFSPools(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)

	names, err := e.nodesToQuery(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list ZFS pools: %w", err)), nil
	}

	pools := make([]report.ZFSPool, 0)
	for _, name := range names {
		entries, queryErr := e.proxmox.GetZFSPools(ctx, name)
		if queryErr != nil {
			log.Warn().
				Str("node", name).
				Err(queryErr).
				Msg("Could not query ZFS pools on node")
			continue
		}
		for _, entry := range entries {
			pools = append(pools, report.NormalizeZFSPool(entry, name))
		}
	}

	return respond(args, pools, report.RenderZFSPools(pools))
}

func (e *Executor) executeGetZFSPoolStatus(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)
	pool, _ := args["pool"].(string)
	if node == "" || pool == "" {
		return NewErrorResult(fmt.Errorf("node and pool are required")), nil
	}

	raw, err := e.proxmox.GetZFSPoolDetail(ctx, node, pool)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to get ZFS pool status for %s: %w", pool, err)), nil
	}

	detail := report.ResolvePoolDetail(node, pool, raw)
	return respond(args, detail, report.RenderZFSPoolDetail(detail))
}

func (e *Executor) executeListZFSDatasets(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)
	if node == "" {
		return NewErrorResult(fmt.Errorf("node is required")), nil
	}
	filter, _ := args["pool"].(string)

	entries, err := e.proxmox.GetZFSPools(ctx, node)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list ZFS datasets: %w", err)), nil
	}

	datasets := make([]report.Dataset, 0, len(entries))
	for _, entry := range entries {
		if filter != "" {
			if name, _ := entry["name"].(string); name != filter {
				continue
			}
		}
		datasets = append(datasets, report.NormalizeDataset(entry))
	}

	return respond(args, datasets, report.RenderDatasets(datasets))
}

func (e *Executor) executeGetDiskList(ctx context.Context, args map[string]interface{}) (CallToolResult, error) {
	node, _ := args["node"].(string)
	if node == "" {
		return NewErrorResult(fmt.Errorf("node is required")), nil
	}
	includePartitions, _ := args["include_partitions"].(bool)

	entries, err := e.proxmox.GetDisks(ctx, node, includePartitions)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to list disks on %s: %w", node, err)), nil
	}

	disks := make([]report.Disk, 0, len(entries))
	for _, entry := range entries {
		disks = append(disks, report.NormalizeDisk(entry))
	}

	return respond(args, disks, report.RenderDisks(disks))
}
