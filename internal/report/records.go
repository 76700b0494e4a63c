// Package report turns raw Proxmox API responses into canonical records and
// renders them as human-readable text reports.
//
// The upstream API is not schema-stable: depending on server version and
// feature availability a query may return a structured object, a raw text
// blob, nothing at all, or something else entirely. Every normalizer in this
// package therefore defaults missing fields instead of failing, so the
// renderers can assume fully populated records.
package report

// ByteUsage is a used/total pair in bytes.
type ByteUsage struct {
	Used  uint64 `json:"used"`
	Total uint64 `json:"total"`
}

// Node is a canonical snapshot of one Proxmox node.
type Node struct {
	Name     string     `json:"node"`
	Status   string     `json:"status"`
	Uptime   int64      `json:"uptime"`
	CPUCores int        `json:"maxcpu,omitempty"` // 0 when unknown
	Memory   ByteUsage  `json:"memory"`
	Disk     *ByteUsage `json:"disk,omitempty"`
}

// Guest is a canonical snapshot of one VM or LXC container.
type Guest struct {
	Name     string    `json:"name"`
	VMID     int64     `json:"vmid"`
	Status   string    `json:"status"`
	Node     string    `json:"node"`
	CPUCores int       `json:"cpus,omitempty"` // 0 when unknown
	Memory   ByteUsage `json:"memory"`
}

// StoragePool is a canonical snapshot of one storage pool on a node.
type StoragePool struct {
	Name   string `json:"storage"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Used   uint64 `json:"used"`
	Total  uint64 `json:"total"`
}

// Volume is one content item on a storage (disk image, backup, template...).
type Volume struct {
	VolID     string `json:"volid"`
	Format    string `json:"format"`
	Size      uint64 `json:"size"`
	VMID      int64  `json:"vmid,omitempty"` // 0 when not owned by a guest
	Content   string `json:"content"`
	CreatedAt int64  `json:"ctime,omitempty"` // unix seconds, 0 when unknown
}

// StorageUsage is a space-consumption breakdown for one storage.
// Volumes is sorted by size, largest first; VolumeCount is the size of the
// full collection even though rendering caps the listing.
type StorageUsage struct {
	Storage     string   `json:"storage"`
	Type        string   `json:"type"`
	Total       uint64   `json:"total"`
	Used        uint64   `json:"used"`
	Available   uint64   `json:"available"`
	Volumes     []Volume `json:"volumes"`
	VolumeCount int      `json:"volume_count"`
}

// PoolHealth is the closed set of ZFS pool health states. Anything the API
// reports outside the known values collapses to PoolHealthUnknown.
type PoolHealth string

const (
	PoolHealthOnline   PoolHealth = "ONLINE"
	PoolHealthDegraded PoolHealth = "DEGRADED"
	PoolHealthFaulted  PoolHealth = "FAULTED"
	PoolHealthUnknown  PoolHealth = "UNKNOWN"
)

// ParsePoolHealth maps an API health string onto the closed enum.
// Comparison is exact and case-sensitive, matching what zpool reports.
func ParsePoolHealth(s string) PoolHealth {
	switch PoolHealth(s) {
	case PoolHealthOnline, PoolHealthDegraded, PoolHealthFaulted:
		return PoolHealth(s)
	default:
		return PoolHealthUnknown
	}
}

// ZFSPool is a canonical snapshot of one ZFS pool from the list endpoint.
type ZFSPool struct {
	Name   string     `json:"name"`
	Node   string     `json:"node"`
	Health PoolHealth `json:"health"`
	Size   uint64     `json:"size"`
	Alloc  uint64     `json:"alloc"`
	Free   uint64     `json:"free"`
	Frag   int        `json:"frag"`
	Dedup  float64    `json:"dedup"`
}

// ScanInfo describes the last scrub/resilver of a pool.
type ScanInfo struct {
	Function string `json:"function"`
	State    string `json:"state"`
}

// PoolDevice is one entry in a pool's device tree. Children are the member
// devices of a vdev (mirror, raidz); in practice the tree is two levels deep.
type PoolDevice struct {
	Name     string       `json:"name"`
	State    string       `json:"state"`
	Children []PoolDevice `json:"children,omitempty"`
}

// ZFSPoolDetail is the canonical detailed status of one pool. It is always
// structurally complete: every field is defaulted by the shape resolver no
// matter which shape the API returned. RawStatus carries the verbatim server
// output when no structured fields were available.
type ZFSPoolDetail struct {
	Name      string       `json:"name"`
	Node      string       `json:"node"`
	Health    PoolHealth   `json:"health"`
	State     string       `json:"state"`
	Scan      *ScanInfo    `json:"scan,omitempty"`
	Action    string       `json:"action,omitempty"`
	Status    string       `json:"status,omitempty"`
	Errors    string       `json:"errors"`
	Children  []PoolDevice `json:"children"`
	RawStatus string       `json:"raw_status,omitempty"`
}

// Dataset is a canonical snapshot of one ZFS dataset.
type Dataset struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Used       uint64 `json:"used"`
	Available  uint64 `json:"avail"`
	Referenced uint64 `json:"refer"`
	Mountpoint string `json:"mountpoint"`
}

// Disk is a canonical snapshot of one physical disk on a node.
type Disk struct {
	DevPath string `json:"devpath"`
	Size    uint64 `json:"size"`
	Serial  string `json:"serial"`
	Type    string `json:"type"` // ssd, hdd, unknown
	Health  string `json:"health"`
	Model   string `json:"model"`
	Vendor  string `json:"vendor"`
	RPM     int    `json:"rpm"`
	Wearout string `json:"wearout"` // percent as string, "N/A" when inapplicable
	Used    string `json:"used"`    // free-text usage descriptor, e.g. "ZFS"
}

// ClusterStatus is a canonical snapshot of cluster membership and quorum.
type ClusterStatus struct {
	Name      string `json:"name"`
	Quorate   bool   `json:"quorum"`
	Nodes     int    `json:"nodes"`
	Resources int    `json:"resources,omitempty"`
}
