package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title
	}
	return "Portfolio"
}

// Asset resolves a file under /static. Paths stay relative so the same markup
// works when served and when exported to a directory.
func Asset(path string) string {
	return "static/" + path
}
