package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeroDelay(t *testing.T) {
	want := []time.Duration{100, 300, 500, 700}
	for i := range HeroSequence {
		assert.Equal(t, want[i]*time.Millisecond, HeroDelay(i))
	}
}

func TestHeroReveal(t *testing.T) {
	on := HeroReveal{Animate: true}
	assert.Equal(t, "hero-reveal", on.Class())
	assert.Equal(t, "animation-delay: 500ms; animation-duration: 600ms", on.Style(HeroSocials))

	off := HeroReveal{}
	assert.Empty(t, off.Class())
	assert.Empty(t, off.Style(HeroTitle))
}
