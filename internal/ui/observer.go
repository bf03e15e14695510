package ui

import (
	"sort"
	"strings"
)

// VisibilityThreshold is the fraction of a section that must be in the viewport
// before it counts as seen.
const VisibilityThreshold = 0.10

// VisibleClass is added to a fade-in section once it has been seen.
const VisibleClass = "fade-in-section-visible"

// Observer tracks the one-shot visibility of a single section.
//
// A section starts hidden, is observed while mounted, and becomes visible the
// first time it intersects the viewport by at least VisibilityThreshold. After
// that it is never hidden again and observation stops.
type Observer struct {
	capable   bool
	observing bool
	visible   bool
}

// NewObserver creates an observer. When the platform cannot report
// intersections the section is visible from the start.
func NewObserver(capable bool) *Observer {
	return &Observer{capable: capable, visible: !capable}
}

// RevealedObserver returns an observer for a section that was already seen
// before this render.
func RevealedObserver() *Observer {
	return &Observer{capable: true, visible: true}
}

// Observe subscribes the section and returns the matching unsubscribe.
// Observing a visible section is a no-op; the release func is always safe to call.
func (o *Observer) Observe() (unobserve func()) {
	if o.capable && !o.visible {
		o.observing = true
	}
	return o.Unobserve
}

// Unobserve releases the subscription. It is idempotent.
func (o *Observer) Unobserve() {
	o.observing = false
}

// Intersect delivers an intersection signal. It reports true only for the
// transition from hidden to visible.
func (o *Observer) Intersect(ratio float64) bool {
	if !o.observing || o.visible || ratio < VisibilityThreshold {
		return false
	}
	o.visible = true
	o.observing = false
	return true
}

// Visible reports whether the section has been seen.
func (o *Observer) Visible() bool {
	return o.visible
}

// Observing reports whether a subscription is currently held.
func (o *Observer) Observing() bool {
	return o.observing
}

// Revealed is the set of sections the browser reports as already visible.
// It travels with toggle requests so a re-render does not hide content again.
type Revealed map[Section]bool

// ParseRevealed reads a comma separated list of section ids, ignoring unknown ids.
func ParseRevealed(csv string) Revealed {
	r := Revealed{}
	for _, id := range strings.Split(csv, ",") {
		if s, err := ParseSection(strings.TrimSpace(id)); err == nil {
			r[s] = true
		}
	}
	return r
}

// Observer returns the observer a section should render with.
func (r Revealed) Observer(s Section) *Observer {
	if r[s] {
		return RevealedObserver()
	}
	o := NewObserver(true)
	o.Observe()
	return o
}

// String renders the set in a stable order.
func (r Revealed) String() string {
	ids := make([]string, 0, len(r))
	for s, ok := range r {
		if ok {
			ids = append(ids, string(s))
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
