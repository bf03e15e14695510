package ui

import (
	"fmt"
	"time"
)

// ScrollToTopScript asks the browser to scroll smoothly to the document origin.
const ScrollToTopScript = "window.scrollTo({top: 0, behavior: 'smooth'})"

// Copyright is the footer notice for the year of now.
func Copyright(owner string, now time.Time) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), owner)
}
