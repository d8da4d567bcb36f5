package display

import (
	"fmt"
	"io"
)

// PrintBanner writes the one-line program banner with version and root.
func PrintBanner(w io.Writer, version, root string) {
	fmt.Fprintln(w, TitleStyle.Render("casedup "+version)+MutedStyle.Render(" · scanning "+root))
}
