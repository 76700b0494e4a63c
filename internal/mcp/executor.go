package mcp

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ServerVersion is the version of the MCP tool implementation
const ServerVersion = "1.0.0"

// ProxmoxProvider is the upstream accessor surface the tools consume. Values
// come back as decoded, untyped JSON; the report layer owns shaping and
// defaulting. The real implementation is pkg/proxmox.Client.
type ProxmoxProvider interface {
	GetNodes(ctx context.Context) ([]map[string]any, error)
	GetNodeStatus(ctx context.Context, node string) (map[string]any, error)
	GetVMs(ctx context.Context, node string) ([]map[string]any, error)
	GetContainers(ctx context.Context, node string) ([]map[string]any, error)
	GetStorage(ctx context.Context, node string) ([]map[string]any, error)
	GetStorageContent(ctx context.Context, node, storage string) ([]map[string]any, error)
	GetStorageStatus(ctx context.Context, node, storage string) (map[string]any, error)
	GetZFSPools(ctx context.Context, node string) ([]map[string]any, error)
	GetZFSPoolDetail(ctx context.Context, node, pool string) (any, error)
	GetDisks(ctx context.Context, node string, includePartitions bool) ([]map[string]any, error)
	GetClusterStatus(ctx context.Context) ([]map[string]any, error)
}

// Executor implements ToolExecutor for the Proxmox tools.
type Executor struct {
	proxmox  ProxmoxProvider
	registry *ToolRegistry
}

// NewExecutor creates an executor backed by the given Proxmox client.
func NewExecutor(client ProxmoxProvider) *Executor {
	e := &Executor{
		proxmox:  client,
		registry: NewToolRegistry(),
	}
	e.registerTools()
	return e
}

// RegisterTool allows tests or extensions to add tools at runtime.
func (e *Executor) RegisterTool(tool RegisteredTool) {
	e.registry.Register(tool)
}

// ListTools returns the list of available tools
func (e *Executor) ListTools() []Tool {
	return e.registry.ListTools()
}

// ExecuteTool executes a tool and returns the result
func (e *Executor) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (CallToolResult, error) {
	log.Debug().
		Str("tool", name).
		Interface("args", args).
		Msg("Executing Proxmox tool")

	result, err := e.registry.Execute(ctx, e, name, args)
	recordToolExecution(name, err != nil || result.IsError)
	return result, err
}

// registerTools registers all available tools
func (e *Executor) registerTools() {
	// get_nodes, get_node_status
	e.registerNodeTools()

	// get_vms, get_containers
	e.registerGuestTools()

	// get_storage, get_storage_usage
	e.registerStorageTools()

	// list_zfs_pools, get_zfs_pool_status, list_zfs_datasets, get_disk_list
	e.registerZFSTools()

	// get_cluster_status
	e.registerClusterTools()
}

// nodesToQuery resolves the node scope for a sweep: the named node when one
// was given, otherwise every node in the cluster.
func (e *Executor) nodesToQuery(ctx context.Context, node string) ([]string, error) {
	if node != "" {
		return []string{node}, nil
	}
	entries, err := e.proxmox.GetNodes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, _ := entry["node"].(string); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// respond picks the output form the caller asked for: the rendered report by
// default, or the canonical records serialized when format is "json".
func respond(args map[string]interface{}, data any, rendered string) (CallToolResult, error) {
	if format, _ := args["format"].(string); format == "json" {
		return NewJSONResult(data), nil
	}
	return NewTextResult(rendered), nil
}

// formatProperty is the shared schema entry for the output format argument.
func formatProperty() PropertySchema {
	return PropertySchema{
		Type:        "string",
		Description: "Output format: 'text' for a rendered report (default), 'json' for structured records",
		Enum:        []string{"text", "json"},
		Default:     "text",
	}
}
