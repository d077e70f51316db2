// ABOUTME: RTF document generator consuming the shared Content Stream.
// ABOUTME: Emits the legacy rich-text markup served as the "docx" export target.
package export

import (
	"fmt"
	"strings"
)

const (
	rtfPreamble    = `{\rtf1\ansi\deff0 {\fonttbl {\f0 Helvetica;}}`
	rtfBodyStyle   = `\f0\fs22`
	rtfHeaderStyle = `\b\fs28`
	rtfRevertStyle = `\b0\fs22`
)

// renderRTF generates a complete RTF document from a Content Stream.
// All literal text passes through escapeRTF before emission.
func renderRTF(lines []Line, title string) string {
	var sb strings.Builder

	sb.WriteString(rtfPreamble + "\n")
	if title != "" {
		sb.WriteString(fmt.Sprintf(`\title %s`+"\n", escapeRTF(title)))
	}
	sb.WriteString(rtfBodyStyle + "\n")

	for _, line := range lines {
		switch line.Kind {
		case LineBlank:
			sb.WriteString(`\par` + "\n")
		case LineHeader:
			sb.WriteString(`\par ` + rtfHeaderStyle + " " + escapeRTF(line.Text) + " " + rtfRevertStyle + `\par` + "\n")
		case LineBullet:
			text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line.Text), "-*•"))
			sb.WriteString(`\par \bullet  ` + escapeRTF(text) + "\n")
		case LineParagraph:
			sb.WriteString(`\par ` + escapeRTF(line.Text) + "\n")
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
