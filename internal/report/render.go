package report

import (
	"fmt"
	"strings"
)

// Renderers turn canonical records into multi-line text reports. Each report
// starts with an icon-tagged title line and separates items with a blank
// line. Because the normalizers default every field, renderers only branch on
// genuinely optional sections, never on missing data.

const maxVolumeLines = 10

// RenderNodes renders a node listing.
func RenderNodes(nodes []Node) string {
	lines := []string{IconNode + " Proxmox Nodes"}
	for _, n := range nodes {
		lines = append(lines, "")
		lines = append(lines, nodeLines(IconNode+" "+n.Name, n)...)
	}
	return strings.Join(lines, "\n")
}

// RenderNodeStatus renders the detailed status of a single node.
func RenderNodeStatus(n Node) string {
	return strings.Join(nodeLines(IconNode+" Node: "+n.Name, n), "\n")
}

func nodeLines(title string, n Node) []string {
	memPercent := Percent(float64(n.Memory.Used), float64(n.Memory.Total))
	lines := []string{
		title,
		"  - Status: " + strings.ToUpper(n.Status),
		"  - Uptime: " + FormatUptime(n.Uptime),
		"  - CPU Cores: " + orNA(n.CPUCores),
		fmt.Sprintf("  - Memory: %s / %s (%.1f%%)",
			FormatBytes(n.Memory.Used), FormatBytes(n.Memory.Total), memPercent),
	}
	if n.Disk != nil {
		diskPercent := Percent(float64(n.Disk.Used), float64(n.Disk.Total))
		lines = append(lines, fmt.Sprintf("  - Disk: %s / %s (%.1f%%)",
			FormatBytes(n.Disk.Used), FormatBytes(n.Disk.Total), diskPercent))
	}
	return lines
}

// RenderVMs renders a virtual machine listing.
func RenderVMs(vms []Guest) string {
	lines := []string{IconVM + " Virtual Machines"}
	for _, vm := range vms {
		lines = append(lines, "")
		lines = append(lines, guestLines(IconVM, vm)...)
	}
	return strings.Join(lines, "\n")
}

// RenderContainers renders a container listing. Unlike the VM listing, an
// empty result collapses to a single sentinel line.
func RenderContainers(cts []Guest) string {
	if len(cts) == 0 {
		return IconContainer + " No containers found"
	}
	lines := []string{IconContainer + " Containers"}
	for _, ct := range cts {
		lines = append(lines, "")
		lines = append(lines, guestLines(IconContainer, ct)...)
	}
	return strings.Join(lines, "\n")
}

func guestLines(icon string, g Guest) []string {
	memPercent := Percent(float64(g.Memory.Used), float64(g.Memory.Total))
	return []string{
		fmt.Sprintf("%s %s (ID: %d)", icon, g.Name, g.VMID),
		"  - Status: " + strings.ToUpper(g.Status),
		"  - Node: " + g.Node,
		"  - CPU Cores: " + orNA(g.CPUCores),
		fmt.Sprintf("  - Memory: %s / %s (%.1f%%)",
			FormatBytes(g.Memory.Used), FormatBytes(g.Memory.Total), memPercent),
	}
}

// RenderStorage renders a storage pool listing.
func RenderStorage(pools []StoragePool) string {
	lines := []string{IconStorage + " Storage Pools"}
	for _, p := range pools {
		percent := Percent(float64(p.Used), float64(p.Total))
		lines = append(lines,
			"",
			IconStorage+" "+p.Name,
			"  - Status: "+strings.ToUpper(p.Status),
			"  - Type: "+p.Type,
			fmt.Sprintf("  - Usage: %s / %s (%.1f%%)",
				FormatBytes(p.Used), FormatBytes(p.Total), percent),
		)
	}
	return strings.Join(lines, "\n")
}

// RenderStorageUsage renders a space-consumption breakdown. The volume
// listing is capped at the ten largest entries with an elision line for the
// remainder.
func RenderStorageUsage(usages []StorageUsage) string {
	lines := []string{IconStorage + " Storage Usage Breakdown"}
	for _, u := range usages {
		percent := Percent(float64(u.Used), float64(u.Total))
		lines = append(lines,
			"",
			fmt.Sprintf("%s %s (%s)", IconStorage, u.Storage, u.Type),
			"  Total: "+FormatBytes(u.Total),
			fmt.Sprintf("  Used: %s (%.1f%%)", FormatBytes(u.Used), percent),
			"  Available: "+FormatBytes(u.Available),
			fmt.Sprintf("  Volumes: %d", u.VolumeCount),
		)
		if len(u.Volumes) == 0 {
			continue
		}
		lines = append(lines, "", "  Top Space Consumers:")
		shown := u.Volumes
		if len(shown) > maxVolumeLines {
			shown = shown[:maxVolumeLines]
		}
		for _, vol := range shown {
			vmid := ""
			if vol.VMID != 0 {
				vmid = fmt.Sprintf(" (VM %d)", vol.VMID)
			}
			lines = append(lines, fmt.Sprintf("    - %s%s: %s [%s]",
				volumeName(vol.VolID), vmid, FormatBytes(vol.Size), vol.Content))
		}
		if len(u.Volumes) > maxVolumeLines {
			lines = append(lines, fmt.Sprintf("    ... and %d more volumes", len(u.Volumes)-maxVolumeLines))
		}
	}
	return strings.Join(lines, "\n")
}

// volumeName trims the storage prefix from a volume ID for display.
func volumeName(volid string) string {
	if i := strings.LastIndex(volid, "/"); i >= 0 {
		return volid[i+1:]
	}
	if i := strings.LastIndex(volid, ":"); i >= 0 {
		return volid[i+1:]
	}
	return volid
}

// RenderZFSPools renders a ZFS pool listing.
func RenderZFSPools(pools []ZFSPool) string {
	if len(pools) == 0 {
		return IconZFS + " No ZFS pools found"
	}
	lines := []string{IconZFS + " ZFS Storage Pools"}
	for _, p := range pools {
		percent := Percent(float64(p.Alloc), float64(p.Size))
		lines = append(lines,
			"",
			fmt.Sprintf("%s %s (%s)", IconZFS, p.Name, p.Node),
			fmt.Sprintf("  - Health: %s %s", HealthIcon(string(p.Health)), p.Health),
			"  - Size: "+FormatBytes(p.Size),
			fmt.Sprintf("  - Used: %s (%.1f%%)", FormatBytes(p.Alloc), percent),
			"  - Free: "+FormatBytes(p.Free),
			fmt.Sprintf("  - Fragmentation: %d%%", p.Frag),
		)
		if p.Dedup != 1.0 {
			lines = append(lines, fmt.Sprintf("  - Dedup Ratio: %.2fx", p.Dedup))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderZFSPoolDetail renders the detailed status of one pool, including the
// device tree and, when structured data was unavailable, the raw server
// output as an indented fallback section.
func RenderZFSPoolDetail(d ZFSPoolDetail) string {
	lines := []string{
		IconZFS + " ZFS Pool: " + d.Name,
		"  - Node: " + d.Node,
		fmt.Sprintf("  - Health: %s %s", HealthIcon(string(d.Health)), d.Health),
		"  - State: " + d.State,
	}
	if d.Scan != nil {
		lines = append(lines, fmt.Sprintf("  - Last Scan: %s - %s", d.Scan.Function, d.Scan.State))
	}
	lines = append(lines, "  - Errors: "+d.Errors)

	if len(d.Children) > 0 {
		lines = append(lines, "", "  Disk Layout:")
		for _, dev := range d.Children {
			lines = append(lines, fmt.Sprintf("    - %s: %s %s", dev.Name, HealthIcon(dev.State), dev.State))
			for _, sub := range dev.Children {
				lines = append(lines, fmt.Sprintf("      - %s: %s %s", sub.Name, HealthIcon(sub.State), sub.State))
			}
		}
	}

	if d.RawStatus != "" {
		lines = append(lines, "", "  Raw Pool Status:")
		for _, raw := range strings.Split(d.RawStatus, "\n") {
			if strings.TrimSpace(raw) != "" {
				lines = append(lines, "    "+raw)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// RenderDatasets renders a dataset listing.
func RenderDatasets(datasets []Dataset) string {
	if len(datasets) == 0 {
		return IconZFS + " No ZFS datasets found"
	}
	lines := []string{IconZFS + " ZFS Datasets"}
	for _, ds := range datasets {
		lines = append(lines,
			"",
			"  "+IconStorage+" "+ds.Name,
			"     - Type: "+ds.Type,
			"     - Used: "+FormatBytes(ds.Used),
			"     - Available: "+FormatBytes(ds.Available),
			"     - Mountpoint: "+ds.Mountpoint,
		)
	}
	return strings.Join(lines, "\n")
}

// RenderDisks renders a physical disk listing.
func RenderDisks(disks []Disk) string {
	if len(disks) == 0 {
		return IconDisk + " No disks found"
	}
	lines := []string{IconDisk + " Disks"}
	for _, d := range disks {
		lines = append(lines,
			"",
			"  "+DiskTypeIcon(d.Type)+" "+d.DevPath,
			"     - Size: "+FormatBytes(d.Size),
			"     - Model: "+d.Model,
			"     - Serial: "+d.Serial,
			fmt.Sprintf("     - Health: %s %s", SmartIcon(d.Health), d.Health),
			"     - Usage: "+d.Used,
		)
		if d.Wearout != "N/A" && d.Type == "ssd" {
			lines = append(lines, "     - Wear Level: "+d.Wearout+"%")
		}
	}
	return strings.Join(lines, "\n")
}

// RenderClusterStatus renders cluster membership and quorum state.
func RenderClusterStatus(cs ClusterStatus) string {
	quorum := "NOT OK"
	if cs.Quorate {
		quorum = "OK"
	}
	lines := []string{
		IconCluster + " Proxmox Cluster",
		"",
		"  - Name: " + orNAString(cs.Name),
		"  - Quorum: " + quorum,
		fmt.Sprintf("  - Nodes: %d", cs.Nodes),
	}
	if cs.Resources > 0 {
		lines = append(lines, fmt.Sprintf("  - Resources: %d", cs.Resources))
	}
	return strings.Join(lines, "\n")
}

func orNA(n int) string {
	if n <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", n)
}

func orNAString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
