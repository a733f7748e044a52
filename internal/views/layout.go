package views

import (
	"fmt"
	"strings"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/calendar"
)

// Layout selects how dense a rendering is.
type Layout string

// List of layouts
const (
	LayoutDesktop Layout = "desktop"
	LayoutCompact Layout = "compact"
)

// Caps is the number of entries a cell shows before collapsing the rest.
type Caps struct {
	Month int
	Week  int
}

// ParseLayout parses a layout name; empty means desktop.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LayoutDesktop, nil
	case LayoutDesktop, LayoutCompact:
		return l, nil
	default:
		return "", fmt.Errorf("layout %q: %w", s, apperr.ErrInvalid)
	}
}

// CapsFor returns the caps of l.
func CapsFor(l Layout) Caps {
	if l == LayoutCompact {
		return Caps{Month: 2, Week: 3}
	}
	return Caps{Month: 3, Week: 10}
}

// AvailableViews lists the views offered on l. Compact screens have no month grid.
func AvailableViews(l Layout) []calendar.ViewMode {
	if l == LayoutCompact {
		return []calendar.ViewMode{calendar.ViewWeek, calendar.ViewDay}
	}
	return []calendar.ViewMode{calendar.ViewMonth, calendar.ViewWeek, calendar.ViewDay}
}

// Offers reports whether mode is available on l.
func Offers(l Layout, mode calendar.ViewMode) bool {
	for _, m := range AvailableViews(l) {
		if m == mode {
			return true
		}
	}
	return false
}
