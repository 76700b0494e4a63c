package mcp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var toolExecutions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "proxmox_mcp_tool_executions_total",
		Help: "Tool executions by tool name and outcome.",
	},
	[]string{"tool", "status"},
)

func recordToolExecution(tool string, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	toolExecutions.WithLabelValues(tool, status).Inc()
}
