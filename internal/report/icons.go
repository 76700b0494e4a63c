package report

// Resource icons used as report title markers.
const (
	IconNode      = "🖥️"
	IconVM        = "💻"
	IconContainer = "📦"
	IconStorage   = "💾"
	IconZFS       = "🗄️"
	IconDisk      = "💿"
	IconCluster   = "🌐"
)

const (
	iconGreen  = "🟢"
	iconYellow = "🟡"
	iconRed    = "🔴"
	iconSSD    = "⚡"
	iconHDD    = "💿"
)

// HealthIcon maps a pool or device state to a traffic-light marker.
// Only ONLINE and DEGRADED get their own bucket; FAULTED, UNKNOWN, and any
// unrecognized text are all red.
func HealthIcon(state string) string {
	switch state {
	case "ONLINE":
		return iconGreen
	case "DEGRADED":
		return iconYellow
	default:
		return iconRed
	}
}

// DiskTypeIcon distinguishes solid-state from rotational disks. Anything that
// is not explicitly "ssd" renders as rotational.
func DiskTypeIcon(diskType string) string {
	if diskType == "ssd" {
		return iconSSD
	}
	return iconHDD
}

// SmartIcon maps a SMART health verdict to a traffic-light marker. This is a
// separate table from HealthIcon: disks report PASSED/OK rather than pool
// states, and an unknown verdict is a warning, not a failure.
func SmartIcon(health string) string {
	switch health {
	case "PASSED", "OK":
		return iconGreen
	case "UNKNOWN":
		return iconYellow
	default:
		return iconRed
	}
}
