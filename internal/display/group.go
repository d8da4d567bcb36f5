package display

import (
	"fmt"
	"io"
	"strings"
)

// PrintGroup writes a duplicate-group header and one entry per path, in order.
// entry is a format string taking the index and the path.
func PrintGroup(w io.Writer, header, entry string, paths []string) {
	fmt.Fprintln(w, styleLines(TitleStyle.Render, header))
	for i, p := range paths {
		fmt.Fprintf(w, entry+"\n", i, p)
	}
}

// PrintPrompt writes the selection prompt without a trailing newline.
func PrintPrompt(w io.Writer, prompt string) {
	fmt.Fprint(w, PromptStyle.Render(prompt))
}

// PrintSuccess writes a confirmation line.
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintError writes a failure line.
func PrintError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintNote writes a de-emphasized line.
func PrintNote(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf(format, args...)))
}

// styleLines renders each line on its own so lipgloss does not pad blank
// lines to the block width.
func styleLines(render func(...string) string, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = render(l)
		}
	}
	return strings.Join(lines, "\n")
}
