// Package ui holds the page's interactive state as plain Go values.
//
// Each type here owns the state of exactly one component (theme flag, header,
// section visibility, hero entrance, skill bars, project cards, contact form).
// Handlers rebuild the state from the request, apply one transition and render
// the result; nothing in this package is shared between requests.
package ui
