package ui

import (
	"fmt"
	"time"
)

// Entrance animation timings for the hero block.
const (
	HeroBaseDelay = 100 * time.Millisecond
	HeroStagger   = 200 * time.Millisecond
	HeroDuration  = 600 * time.Millisecond
	HeroOffsetPx  = 20
)

// HeroElement is one of the four staggered hero parts.
type HeroElement int

const (
	HeroTitle HeroElement = iota
	HeroSubtitle
	HeroSocials
	HeroCallToAction
)

// HeroSequence is the reveal order.
var HeroSequence = []HeroElement{HeroTitle, HeroSubtitle, HeroSocials, HeroCallToAction}

// HeroDelay is the start delay of the element at index in the sequence.
func HeroDelay(index int) time.Duration {
	return HeroBaseDelay + time.Duration(index)*HeroStagger
}

// HeroReveal decides how the hero renders on this mount. The entrance plays
// only on the first mount of the page; re-renders (theme toggles) show the
// elements in place.
type HeroReveal struct {
	Animate bool
}

// Class is the animation class for the element, or "" when not animating.
func (h HeroReveal) Class() string {
	if !h.Animate {
		return ""
	}
	return "hero-reveal"
}

// Style returns the inline animation delay for el.
// The animation is bound to the element, so it cannot outlive it.
func (h HeroReveal) Style(el HeroElement) string {
	if !h.Animate {
		return ""
	}
	return fmt.Sprintf("animation-delay: %dms; animation-duration: %dms",
		HeroDelay(int(el)).Milliseconds(), HeroDuration.Milliseconds())
}
