package ui

import (
	"net/http"
	"strings"
)

// ClientHintHeader is the request header browsers use to report the OS color scheme
// once the server has advertised it through Accept-CH.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// MediaQuerySource names a preference the browser reported after load from
// prefers-color-scheme, when the first request carried no hint.
const MediaQuerySource = "media-query"

// Preference is the resolved platform color scheme.
type Preference struct {
	PrefersDark bool
	// Source names the detector that answered. Empty means the light fallback was used.
	Source string
}

// Detector reads a color scheme preference from a request.
// Detect returns ok=false when the request carries no usable signal.
type Detector interface {
	Name() string
	Detect(r *http.Request) (prefersDark bool, ok bool)
}

// QueryDetector honours an explicit ?theme=dark|light override.
type QueryDetector struct {
	Param string
}

func (d QueryDetector) Name() string { return "query" }

func (d QueryDetector) Detect(r *http.Request) (bool, bool) {
	return parseScheme(r.URL.Query().Get(d.Param))
}

// ClientHintDetector reads the Sec-CH-Prefers-Color-Scheme header.
type ClientHintDetector struct{}

func (ClientHintDetector) Name() string { return "client-hint" }

func (ClientHintDetector) Detect(r *http.Request) (bool, bool) {
	// The header value is a structured-field string, e.g. "dark" with quotes.
	return parseScheme(strings.Trim(r.Header.Get(ClientHintHeader), `"`))
}

// DefaultDetectors are consulted in order; the first one that answers wins.
var DefaultDetectors = []Detector{
	QueryDetector{Param: "theme"},
	ClientHintDetector{},
}

// ResolvePreference asks each detector in turn. A missing capability is not an
// error: with no signal at all the page starts light.
func ResolvePreference(r *http.Request, detectors ...Detector) Preference {
	if len(detectors) == 0 {
		detectors = DefaultDetectors
	}
	for _, d := range detectors {
		if dark, ok := d.Detect(r); ok {
			return Preference{PrefersDark: dark, Source: d.Name()}
		}
	}
	return Preference{}
}

func parseScheme(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}
