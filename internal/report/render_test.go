package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNodes(t *testing.T) {
	disk := ByteUsage{Used: 512, Total: 1024}
	out := RenderNodes([]Node{
		{
			Name:     "pve1",
			Status:   "online",
			Uptime:   90061,
			CPUCores: 8,
			Memory:   ByteUsage{Used: 512, Total: 1024},
			Disk:     &disk,
		},
	})

	assert.True(t, strings.HasPrefix(out, "🖥️ Proxmox Nodes"))
	assert.Contains(t, out, "🖥️ pve1")
	assert.Contains(t, out, "  - Status: ONLINE")
	assert.Contains(t, out, "  - Uptime: 1d 1h 1m")
	assert.Contains(t, out, "  - CPU Cores: 8")
	assert.Contains(t, out, "  - Memory: 512 B / 1.0 KiB (50.0%)")
	assert.Contains(t, out, "  - Disk: 512 B / 1.0 KiB (50.0%)")
}

func TestRenderNodesEmptyListKeepsTitle(t *testing.T) {
	assert.Equal(t, "🖥️ Proxmox Nodes", RenderNodes(nil))
}

func TestRenderNodesZeroCoresRendersNA(t *testing.T) {
	out := RenderNodes([]Node{{Name: "pve1", Status: "online"}})
	assert.Contains(t, out, "  - CPU Cores: N/A")
	assert.Contains(t, out, "(0.0%)")
	assert.NotContains(t, out, "  - Disk:")
}

func TestRenderNodeStatus(t *testing.T) {
	out := RenderNodeStatus(Node{Name: "pve1", Status: "online", CPUCores: 4})
	assert.True(t, strings.HasPrefix(out, "🖥️ Node: pve1"))
	assert.Contains(t, out, "  - Status: ONLINE")
}

func TestRenderVMs(t *testing.T) {
	out := RenderVMs([]Guest{
		{Name: "web-01", VMID: 101, Status: "running", Node: "pve1", CPUCores: 2,
			Memory: ByteUsage{Used: 256, Total: 1024}},
	})
	assert.True(t, strings.HasPrefix(out, "💻 Virtual Machines"))
	assert.Contains(t, out, "💻 web-01 (ID: 101)")
	assert.Contains(t, out, "  - Status: RUNNING")
	assert.Contains(t, out, "  - Node: pve1")
	assert.Contains(t, out, "  - Memory: 256 B / 1.0 KiB (25.0%)")
}

func TestRenderVMsEmptyListKeepsTitle(t *testing.T) {
	assert.Equal(t, "💻 Virtual Machines", RenderVMs(nil))
}

func TestRenderContainersEmptySentinel(t *testing.T) {
	assert.Equal(t, "📦 No containers found", RenderContainers(nil))
	assert.Equal(t, "📦 No containers found", RenderContainers([]Guest{}))
}

func TestRenderContainers(t *testing.T) {
	out := RenderContainers([]Guest{
		{Name: "ct-db", VMID: 200, Status: "stopped", Node: "pve2"},
	})
	assert.True(t, strings.HasPrefix(out, "📦 Containers"))
	assert.Contains(t, out, "📦 ct-db (ID: 200)")
	assert.Contains(t, out, "  - Status: STOPPED")
}

func TestRenderStorage(t *testing.T) {
	out := RenderStorage([]StoragePool{
		{Name: "local-lvm", Status: "available", Type: "lvmthin", Used: 256, Total: 1024},
	})
	assert.True(t, strings.HasPrefix(out, "💾 Storage Pools"))
	assert.Contains(t, out, "💾 local-lvm")
	assert.Contains(t, out, "  - Status: AVAILABLE")
	assert.Contains(t, out, "  - Type: lvmthin")
	assert.Contains(t, out, "  - Usage: 256 B / 1.0 KiB (25.0%)")
}

func TestRenderStorageEmptyListKeepsTitle(t *testing.T) {
	assert.Equal(t, "💾 Storage Pools", RenderStorage(nil))
}

func TestRenderStorageUsage(t *testing.T) {
	out := RenderStorageUsage([]StorageUsage{
		{
			Storage:   "local",
			Type:      "dir",
			Total:     1024,
			Used:      512,
			Available: 512,
			Volumes: []Volume{
				{VolID: "local:100/vm-100-disk-0.qcow2", Size: 400, VMID: 100, Content: "images"},
				{VolID: "local:iso/debian.iso", Size: 112, Content: "iso"},
			},
			VolumeCount: 2,
		},
	})

	assert.True(t, strings.HasPrefix(out, "💾 Storage Usage Breakdown"))
	assert.Contains(t, out, "💾 local (dir)")
	assert.Contains(t, out, "  Total: 1.0 KiB")
	assert.Contains(t, out, "  Used: 512 B (50.0%)")
	assert.Contains(t, out, "  Available: 512 B")
	assert.Contains(t, out, "  Volumes: 2")
	assert.Contains(t, out, "  Top Space Consumers:")
	assert.Contains(t, out, "    - vm-100-disk-0.qcow2 (VM 100): 400 B [images]")
	assert.Contains(t, out, "    - debian.iso: 112 B [iso]")
	assert.NotContains(t, out, "more volumes")
}

func TestRenderStorageUsageEmptyListKeepsTitle(t *testing.T) {
	assert.Equal(t, "💾 Storage Usage Breakdown", RenderStorageUsage(nil))
}

func TestRenderStorageUsageCapsVolumeListing(t *testing.T) {
	volumes := make([]Volume, 15)
	for i := range volumes {
		volumes[i] = Volume{
			VolID:   fmt.Sprintf("local:iso/file-%02d.iso", i),
			Size:    uint64(1000 - i),
			Content: "iso",
		}
	}
	out := RenderStorageUsage([]StorageUsage{
		{Storage: "local", Type: "dir", Volumes: volumes, VolumeCount: 15},
	})

	assert.Contains(t, out, "file-09.iso")
	assert.NotContains(t, out, "file-10.iso")
	assert.Contains(t, out, "    ... and 5 more volumes")
	// The header still reports the full count.
	assert.Contains(t, out, "  Volumes: 15")
}

func TestVolumeName(t *testing.T) {
	assert.Equal(t, "vm-100-disk-0.qcow2", volumeName("local:100/vm-100-disk-0.qcow2"))
	assert.Equal(t, "debian.iso", volumeName("local:iso/debian.iso"))
	assert.Equal(t, "vm-101-disk-0", volumeName("local-lvm:vm-101-disk-0"))
	assert.Equal(t, "plain", volumeName("plain"))
}

func TestRenderZFSPools(t *testing.T) {
	out := RenderZFSPools([]ZFSPool{
		{Name: "tank", Node: "pve1", Health: PoolHealthOnline,
			Size: 1024, Alloc: 512, Free: 512, Frag: 7, Dedup: 1.0},
	})
	assert.True(t, strings.HasPrefix(out, "🗄️ ZFS Storage Pools"))
	assert.Contains(t, out, "🗄️ tank (pve1)")
	assert.Contains(t, out, "  - Health: 🟢 ONLINE")
	assert.Contains(t, out, "  - Size: 1.0 KiB")
	assert.Contains(t, out, "  - Used: 512 B (50.0%)")
	assert.Contains(t, out, "  - Free: 512 B")
	assert.Contains(t, out, "  - Fragmentation: 7%")
	assert.NotContains(t, out, "Dedup Ratio")
}

func TestRenderZFSPoolsDedupShownWhenNotUnity(t *testing.T) {
	out := RenderZFSPools([]ZFSPool{
		{Name: "tank", Node: "pve1", Health: PoolHealthDegraded, Dedup: 1.35},
	})
	assert.Contains(t, out, "  - Health: 🟡 DEGRADED")
	assert.Contains(t, out, "  - Dedup Ratio: 1.35x")
}

func TestRenderZFSPoolsEmptySentinel(t *testing.T) {
	assert.Equal(t, "🗄️ No ZFS pools found", RenderZFSPools(nil))
}

func TestRenderZFSPoolDetailStructured(t *testing.T) {
	out := RenderZFSPoolDetail(ZFSPoolDetail{
		Name:   "tank",
		Node:   "pve1",
		Health: PoolHealthOnline,
		State:  "ONLINE",
		Scan:   &ScanInfo{Function: "scrub", State: "finished"},
		Errors: "No known data errors",
		Children: []PoolDevice{
			{Name: "mirror-0", State: "ONLINE", Children: []PoolDevice{
				{Name: "sda", State: "ONLINE"},
				{Name: "sdb", State: "FAULTED"},
			}},
		},
	})

	assert.True(t, strings.HasPrefix(out, "🗄️ ZFS Pool: tank"))
	assert.Contains(t, out, "  - Node: pve1")
	assert.Contains(t, out, "  - Health: 🟢 ONLINE")
	assert.Contains(t, out, "  - State: ONLINE")
	assert.Contains(t, out, "  - Last Scan: scrub - finished")
	assert.Contains(t, out, "  - Errors: No known data errors")
	assert.Contains(t, out, "  Disk Layout:")
	assert.Contains(t, out, "    - mirror-0: 🟢 ONLINE")
	assert.Contains(t, out, "      - sda: 🟢 ONLINE")
	assert.Contains(t, out, "      - sdb: 🔴 FAULTED")
	assert.NotContains(t, out, "Raw Pool Status")
}

func TestRenderZFSPoolDetailRawFallback(t *testing.T) {
	out := RenderZFSPoolDetail(ZFSPoolDetail{
		Name:      "tank",
		Node:      "pve1",
		Health:    PoolHealthDegraded,
		State:     "See raw output",
		Errors:    "Check raw output",
		RawStatus: "  pool: tank\n\n state: DEGRADED\n",
	})

	assert.Contains(t, out, "  Raw Pool Status:")
	assert.Contains(t, out, "      pool: tank")
	assert.Contains(t, out, "     state: DEGRADED")
	// Blank lines in the raw blob are dropped rather than indented.
	for _, line := range strings.Split(out, "\n") {
		assert.NotEqual(t, "    ", line)
	}
	require.NotContains(t, out, "Disk Layout")
}

func TestRenderZFSPoolDetailNoScanLine(t *testing.T) {
	out := RenderZFSPoolDetail(ZFSPoolDetail{Name: "tank", Node: "pve1",
		Health: PoolHealthUnknown, State: "API returned no data",
		Errors: "No data returned from API"})
	assert.NotContains(t, out, "Last Scan")
	assert.Contains(t, out, "  - Errors: No data returned from API")
}

func TestRenderDatasets(t *testing.T) {
	out := RenderDatasets([]Dataset{
		{Name: "tank", Type: "filesystem", Used: 512, Available: 512, Mountpoint: "/tank"},
	})
	assert.True(t, strings.HasPrefix(out, "🗄️ ZFS Datasets"))
	assert.Contains(t, out, "  💾 tank")
	assert.Contains(t, out, "     - Type: filesystem")
	assert.Contains(t, out, "     - Used: 512 B")
	assert.Contains(t, out, "     - Available: 512 B")
	assert.Contains(t, out, "     - Mountpoint: /tank")
}

func TestRenderDatasetsEmptySentinel(t *testing.T) {
	assert.Equal(t, "🗄️ No ZFS datasets found", RenderDatasets(nil))
}

func TestRenderDisks(t *testing.T) {
	out := RenderDisks([]Disk{
		{DevPath: "/dev/sda", Size: 1024, Model: "Samsung 980", Serial: "ABC",
			Type: "ssd", Health: "PASSED", Wearout: "93", Used: "ZFS"},
		{DevPath: "/dev/sdb", Size: 2048, Model: "WD Red", Serial: "DEF",
			Type: "hdd", Health: "UNKNOWN", Wearout: "N/A", Used: "unused"},
	})

	assert.True(t, strings.HasPrefix(out, "💿 Disks"))
	assert.Contains(t, out, "  ⚡ /dev/sda")
	assert.Contains(t, out, "     - Health: 🟢 PASSED")
	assert.Contains(t, out, "     - Wear Level: 93%")
	assert.Contains(t, out, "  💿 /dev/sdb")
	assert.Contains(t, out, "     - Health: 🟡 UNKNOWN")
	assert.Contains(t, out, "     - Usage: unused")
	// Only one wear level line: the HDD has none.
	assert.Equal(t, 1, strings.Count(out, "Wear Level"))
}

func TestRenderDisksWearoutOnlyForSSD(t *testing.T) {
	out := RenderDisks([]Disk{
		{DevPath: "/dev/sdc", Type: "hdd", Health: "PASSED", Wearout: "50", Used: "LVM"},
	})
	assert.NotContains(t, out, "Wear Level")
}

func TestRenderDisksEmptySentinel(t *testing.T) {
	assert.Equal(t, "💿 No disks found", RenderDisks(nil))
}

func TestRenderClusterStatus(t *testing.T) {
	out := RenderClusterStatus(ClusterStatus{Name: "homelab", Quorate: true, Nodes: 3, Resources: 12})
	assert.True(t, strings.HasPrefix(out, "🌐 Proxmox Cluster"))
	assert.Contains(t, out, "  - Name: homelab")
	assert.Contains(t, out, "  - Quorum: OK")
	assert.Contains(t, out, "  - Nodes: 3")
	assert.Contains(t, out, "  - Resources: 12")
}

func TestRenderClusterStatusStandalone(t *testing.T) {
	out := RenderClusterStatus(ClusterStatus{Nodes: 1})
	assert.Contains(t, out, "  - Name: N/A")
	assert.Contains(t, out, "  - Quorum: NOT OK")
	assert.NotContains(t, out, "Resources")
}
