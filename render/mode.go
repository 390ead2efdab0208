package render

// Mode is the capability-driven quality tier a consumer renders at. Widgets
// pick one presentation variant per frame from the active mode; the diff
// path itself stays branch-free per cell.
type Mode uint8

const (
	// ModeMinimal assumes nothing: ASCII-safe content, no color
	ModeMinimal Mode = iota

	// ModeCompatible assumes 16-color ANSI
	ModeCompatible

	// ModeStandard assumes the 256-color palette and Unicode
	ModeStandard

	// ModeEnhanced assumes 24-bit color and Unicode; graphics protocols
	// upgrade fidelity further but are not required for the mode
	ModeEnhanced
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeEnhanced:
		return "enhanced"
	case ModeStandard:
		return "standard"
	case ModeCompatible:
		return "compatible"
	default:
		return "minimal"
	}
}

// Description returns a human-readable summary of what the mode assumes
func (m Mode) Description() string {
	switch m {
	case ModeEnhanced:
		return "24-bit color with full Unicode"
	case ModeStandard:
		return "256-color palette with full Unicode"
	case ModeCompatible:
		return "16-color ANSI"
	default:
		return "ASCII-safe, no color assumed"
	}
}

// ColorMode returns the widest color encoding the mode permits
func (m Mode) ColorMode() ColorMode {
	switch m {
	case ModeEnhanced:
		return ColorModeTrueColor
	case ModeStandard:
		return ColorMode256
	case ModeCompatible:
		return ColorMode16
	default:
		return ColorModeMono
	}
}

// ParseMode maps a mode name to its Mode; reports false for unknown names
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "enhanced":
		return ModeEnhanced, true
	case "standard":
		return ModeStandard, true
	case "compatible":
		return ModeCompatible, true
	case "minimal":
		return ModeMinimal, true
	default:
		return ModeMinimal, false
	}
}
