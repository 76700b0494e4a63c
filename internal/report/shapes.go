package report

import (
	"fmt"
	"strings"
)

// The detailed pool status endpoint is the least stable one in the API:
// depending on server version and pool state it returns a structured object,
// a raw zpool-status text blob, nothing, or some other value. ResolvePoolDetail
// classifies the response into one of those four shapes and normalizes every
// one of them into a complete ZFSPoolDetail, so callers and renderers never
// see a partially populated record.

type poolDetailShape int

const (
	shapeAbsent poolDetailShape = iota
	shapeRawText
	shapeStructured
	shapeUnrecognized
)

func classifyPoolDetail(raw any) poolDetailShape {
	switch raw.(type) {
	case nil:
		return shapeAbsent
	case string:
		return shapeRawText
	case map[string]any:
		return shapeStructured
	default:
		return shapeUnrecognized
	}
}

// ResolvePoolDetail normalizes a detailed pool status response of unknown
// shape. It is total: every input produces a structurally complete record.
func ResolvePoolDetail(node, pool string, raw any) ZFSPoolDetail {
	d := ZFSPoolDetail{
		Name:     pool,
		Node:     node,
		Health:   PoolHealthUnknown,
		Children: []PoolDevice{},
	}

	switch classifyPoolDetail(raw) {
	case shapeAbsent:
		d.State = "API returned no data"
		d.Errors = "No data returned from API"

	case shapeRawText:
		text := raw.(string)
		d.Health = healthFromText(text)
		d.State = "See raw output"
		d.Errors = "Check raw output"
		d.RawStatus = text

	case shapeStructured:
		m := raw.(map[string]any)
		d.Health = ParsePoolHealth(strVal(m, "health", "UNKNOWN"))
		d.State = strVal(m, "state", "UNKNOWN")
		if scan := mapVal(m, "scan"); len(scan) > 0 {
			d.Scan = &ScanInfo{
				Function: strVal(scan, "function", "none"),
				State:    strVal(scan, "state", "unknown"),
			}
		}
		d.Action = strVal(m, "action", "")
		d.Status = strVal(m, "status", "")
		d.Errors = strVal(m, "errors", "No known data errors")
		d.Children = normalizeDeviceTree(sliceVal(m, "children"))

	case shapeUnrecognized:
		d.State = fmt.Sprintf("Unexpected type: %T", raw)
		d.Errors = fmt.Sprintf("API returned unexpected type: %T", raw)
		d.RawStatus = fmt.Sprintf("%v", raw)
	}

	return d
}

// healthFromText scans raw zpool output for known health tokens. The checks
// run in a fixed priority order (ONLINE, DEGRADED, FAULTED) and the first
// substring hit wins regardless of where it appears in the text. A blob that
// mentions several states in unrelated context can therefore misreport; this
// mirrors the upstream heuristic and is a known limitation, not a bug to fix
// silently here.
func healthFromText(text string) PoolHealth {
	switch {
	case strings.Contains(text, "ONLINE"):
		return PoolHealthOnline
	case strings.Contains(text, "DEGRADED"):
		return PoolHealthDegraded
	case strings.Contains(text, "FAULTED"):
		return PoolHealthFaulted
	default:
		return PoolHealthUnknown
	}
}

func normalizeDeviceTree(items []any) []PoolDevice {
	devices := make([]PoolDevice, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		dev := PoolDevice{
			Name:  strVal(m, "name", "unknown"),
			State: strVal(m, "state", "UNKNOWN"),
		}
		if children := sliceVal(m, "children"); len(children) > 0 {
			dev.Children = normalizeDeviceTree(children)
		}
		devices = append(devices, dev)
	}
	return devices
}
