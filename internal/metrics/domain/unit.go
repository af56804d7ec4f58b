package domain

import "strings"

// Unit is the magnitude used to display memory figures
type Unit int

const (
	UnitKB Unit = iota
	UnitMB
	UnitGB
)

// ParseUnit selects the memory unit from free-form invocation arguments.
// Matching is case-insensitive, "gb" wins over "mb" and anything else is ignored.
func ParseUnit(args []string) Unit {
	var mb bool
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "gb":
			return UnitGB
		case "mb":
			mb = true
		}
	}
	if mb {
		return UnitMB
	}
	return UnitKB
}

// Label returns the suffix printed after each memory figure
func (u Unit) Label() string {
	switch u {
	case UnitMB:
		return "MB"
	case UnitGB:
		return "GB"
	default:
		return "KB"
	}
}

// Divisor returns how many kilobytes make one unit
func (u Unit) Divisor() float64 {
	switch u {
	case UnitMB:
		return 1024
	case UnitGB:
		return 1024 * 1024
	default:
		return 1
	}
}

func (u Unit) String() string {
	return u.Label()
}
