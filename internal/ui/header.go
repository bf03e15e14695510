package ui

import "fmt"

// ScrollThreshold is the vertical offset, in pixels, past which the header
// switches to its solid panel.
const ScrollThreshold = 10

// HeaderAction is a transition requested by the browser.
type HeaderAction string

const (
	ActionScroll     HeaderAction = "scroll"
	ActionToggleMenu HeaderAction = "toggle-menu"
	ActionNavigate   HeaderAction = "navigate"
)

// Header holds two independent flags: whether the page is scrolled and whether
// the mobile menu is open.
type Header struct {
	Scrolled bool
	MenuOpen bool
}

// IsScrolled applies the threshold rule.
func IsScrolled(offset int) bool {
	return offset > ScrollThreshold
}

// OnScroll records a new offset and reports whether the header changed.
func (h *Header) OnScroll(offset int) bool {
	next := IsScrolled(offset)
	if next == h.Scrolled {
		return false
	}
	h.Scrolled = next
	return true
}

// ToggleMenu opens or closes the mobile menu.
func (h *Header) ToggleMenu() {
	h.MenuOpen = !h.MenuOpen
}

// Navigate closes the mobile menu after a link is activated.
func (h *Header) Navigate() bool {
	if !h.MenuOpen {
		return false
	}
	h.MenuOpen = false
	return true
}

// Apply runs one action and reports whether anything changed.
func (h *Header) Apply(action HeaderAction, offset int) (bool, error) {
	switch action {
	case ActionScroll:
		return h.OnScroll(offset), nil
	case ActionToggleMenu:
		h.ToggleMenu()
		return true, nil
	case ActionNavigate:
		return h.Navigate(), nil
	default:
		return false, fmt.Errorf("unknown header action %q", action)
	}
}
