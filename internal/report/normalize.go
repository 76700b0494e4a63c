package report

import (
	"fmt"
	"sort"
)

// NormalizeNode builds a Node from a /nodes listing entry plus the per-node
// status payload. Status may be nil when the status sub-query failed; the
// dependent fields then stay at their defaults rather than failing the node.
func NormalizeNode(entry, status map[string]any) Node {
	n := Node{
		Name:   strVal(entry, "node", "unknown"),
		Status: strVal(entry, "status", "unknown"),
	}
	n.CPUCores = int(intVal(entry, "maxcpu", 0))

	if status != nil {
		n.Uptime = intVal(status, "uptime", 0)
		if cpuinfo := mapVal(status, "cpuinfo"); cpuinfo != nil {
			n.CPUCores = int(intVal(cpuinfo, "cpus", int64(n.CPUCores)))
		}
		if mem := mapVal(status, "memory"); mem != nil {
			n.Memory = ByteUsage{
				Used:  uintVal(mem, "used", 0),
				Total: uintVal(mem, "total", 0),
			}
		}
		if rootfs := mapVal(status, "rootfs"); rootfs != nil {
			n.Disk = &ByteUsage{
				Used:  uintVal(rootfs, "used", 0),
				Total: uintVal(rootfs, "total", 0),
			}
		}
	}
	return n
}

// NormalizeGuest builds a Guest from a qemu or lxc listing entry.
func NormalizeGuest(entry map[string]any, node string) Guest {
	return Guest{
		Name:     strVal(entry, "name", "unknown"),
		VMID:     intVal(entry, "vmid", 0),
		Status:   strVal(entry, "status", "unknown"),
		Node:     node,
		CPUCores: int(intVal(entry, "cpus", 0)),
		Memory: ByteUsage{
			Used:  uintVal(entry, "mem", 0),
			Total: uintVal(entry, "maxmem", 0),
		},
	}
}

// NormalizeStorage builds a StoragePool from a per-node storage listing entry.
func NormalizeStorage(entry map[string]any) StoragePool {
	status := strVal(entry, "status", "")
	if status == "" {
		if boolVal(entry, "active", false) {
			status = "available"
		} else {
			status = "unknown"
		}
	}
	return StoragePool{
		Name:   strVal(entry, "storage", "unknown"),
		Status: status,
		Type:   strVal(entry, "type", "unknown"),
		Used:   uintVal(entry, "used", 0),
		Total:  uintVal(entry, "total", 0),
	}
}

// NormalizeStorageUsage assembles a StorageUsage from the storage entry, its
// content listing, and its status payload. Status may be nil (the totals
// sub-query failed independently); totals then degrade to zero while the
// volume listing survives. Volumes come out sorted by size, largest first.
func NormalizeStorageUsage(entry map[string]any, content []map[string]any, status map[string]any) StorageUsage {
	u := StorageUsage{
		Storage: strVal(entry, "storage", "unknown"),
		Type:    strVal(entry, "type", "unknown"),
	}
	if status != nil {
		u.Total = uintVal(status, "total", 0)
		u.Used = uintVal(status, "used", 0)
		u.Available = uintVal(status, "avail", 0)
	}

	u.Volumes = make([]Volume, 0, len(content))
	for _, item := range content {
		u.Volumes = append(u.Volumes, Volume{
			VolID:     strVal(item, "volid", "unknown"),
			Format:    strVal(item, "format", "unknown"),
			Size:      uintVal(item, "size", 0),
			VMID:      intVal(item, "vmid", 0),
			Content:   strVal(item, "content", "unknown"),
			CreatedAt: intVal(item, "ctime", 0),
		})
	}
	sort.SliceStable(u.Volumes, func(i, j int) bool {
		return u.Volumes[i].Size > u.Volumes[j].Size
	})
	u.VolumeCount = len(u.Volumes)
	return u
}

// NormalizeZFSPool builds a ZFSPool from a disks/zfs listing entry.
func NormalizeZFSPool(entry map[string]any, node string) ZFSPool {
	return ZFSPool{
		Name:   strVal(entry, "name", "unknown"),
		Node:   node,
		Health: ParsePoolHealth(strVal(entry, "health", "UNKNOWN")),
		Size:   uintVal(entry, "size", 0),
		Alloc:  uintVal(entry, "alloc", 0),
		Free:   uintVal(entry, "free", 0),
		Frag:   int(intVal(entry, "frag", 0)),
		Dedup:  floatVal(entry, "dedup", 1.0),
	}
}

// NormalizeDataset derives a Dataset from a pool listing entry. The Proxmox
// API does not expose datasets directly, so the pool's own allocation is
// reported as the root filesystem dataset, mounted at "/<name>".
func NormalizeDataset(entry map[string]any) Dataset {
	name := strVal(entry, "name", "unknown")
	alloc := uintVal(entry, "alloc", 0)
	return Dataset{
		Name:       name,
		Type:       "filesystem",
		Used:       alloc,
		Available:  uintVal(entry, "free", 0),
		Referenced: alloc,
		Mountpoint: "/" + name,
	}
}

// NormalizeDisk builds a Disk from a disks/list entry.
func NormalizeDisk(entry map[string]any) Disk {
	return Disk{
		DevPath: strVal(entry, "devpath", "unknown"),
		Size:    uintVal(entry, "size", 0),
		Serial:  strVal(entry, "serial", "N/A"),
		Type:    strVal(entry, "type", "unknown"),
		Health:  strVal(entry, "health", "UNKNOWN"),
		Model:   strVal(entry, "model", "N/A"),
		Vendor:  strVal(entry, "vendor", "N/A"),
		RPM:     int(intVal(entry, "rpm", 0)),
		Wearout: wearoutVal(entry),
		Used:    strVal(entry, "used", "unused"),
	}
}

// wearoutVal keeps the API's "N/A" sentinel but converts numeric wear levels
// to their string form for uniform rendering.
func wearoutVal(entry map[string]any) string {
	if entry == nil {
		return "N/A"
	}
	switch v := entry["wearout"].(type) {
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	case float64:
		return fmt.Sprintf("%d", int64(v))
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return "N/A"
	}
}

// NormalizeClusterStatus folds the cluster/status listing into one record.
// The listing mixes one "cluster" entry with per-node entries; the node count
// falls back to counting node entries when the cluster entry omits it.
func NormalizeClusterStatus(items []map[string]any) ClusterStatus {
	var cs ClusterStatus
	nodeEntries := 0
	for _, item := range items {
		switch strVal(item, "type", "") {
		case "cluster":
			cs.Name = strVal(item, "name", "")
			cs.Quorate = boolVal(item, "quorate", false)
			cs.Nodes = int(intVal(item, "nodes", 0))
		case "node":
			nodeEntries++
		}
	}
	if cs.Nodes == 0 {
		cs.Nodes = nodeEntries
	}
	return cs
}
