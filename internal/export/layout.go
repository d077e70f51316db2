// ABOUTME: Text layout engine converting a Content Stream into paginated placements.
// ABOUTME: Greedy word wrap to the printable width, style switching, and page-break arithmetic.
package export

import "strings"

// Geometry describes the fixed page dimensions in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LineHeight float64
}

// A4Geometry is the default page geometry for paginated output.
var A4Geometry = Geometry{
	PageWidth:  595.28,
	PageHeight: 841.89,
	Margin:     40,
	LineHeight: 14,
}

const (
	bodyFontSize   = 11.0
	headerFontSize = 14.0
	topOffset      = 20.0 // cursor starts at margin + topOffset on each page
	postHeaderGap  = 6.0
	postBlockGap   = 2.0
	bulletGlyph    = "•"
)

// Placement is one positioned line of styled text on a page.
type Placement struct {
	Page int // zero-based
	X    float64
	Y    float64 // distance from the top edge
	Text string
	Bold bool
	Size float64
}

// LayoutResult is the full paginated output of the layout engine.
type LayoutResult struct {
	Placements []Placement
	PageCount  int
}

// measureWidth approximates rendered text width for a single proportional
// font: rune count times half the font size. The PDF writer uses the same
// font, so wrap decisions and rendering agree.
func measureWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

// wrapText greedily packs words into visual lines no wider than maxWidth.
// A single word wider than maxWidth is placed on its own line, unhyphenated.
func wrapText(text string, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureWidth(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}

// LayoutStream paginates a Content Stream onto pages of the given geometry.
// Returned placements are ordered by page, then top to bottom.
func LayoutStream(lines []Line, geo Geometry) LayoutResult {
	printable := geo.PageWidth - 2*geo.Margin
	bottom := geo.PageHeight - geo.Margin

	page := 0
	y := geo.Margin + topOffset

	var placements []Placement

	newPageIfNeeded := func() {
		if y >= bottom {
			page++
			y = geo.Margin + topOffset
		}
	}

	place := func(text string, bold bool, size float64, indent float64) {
		newPageIfNeeded()
		placements = append(placements, Placement{
			Page: page,
			X:    geo.Margin + indent,
			Y:    y,
			Text: text,
			Bold: bold,
			Size: size,
		})
		y += geo.LineHeight
	}

	for _, line := range lines {
		newPageIfNeeded()

		switch line.Kind {
		case LineBlank:
			y += geo.LineHeight / 2

		case LineHeader:
			for _, visual := range wrapText(line.Text, headerFontSize, printable) {
				place(visual, true, headerFontSize, 0)
			}
			y += postHeaderGap

		case LineBullet:
			text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line.Text), "-*•"))
			prefix := bulletGlyph + " "
			visuals := wrapText(text, bodyFontSize, printable-measureWidth(prefix, bodyFontSize))
			for i, visual := range visuals {
				if i == 0 {
					place(prefix+visual, false, bodyFontSize, 0)
				} else {
					place(visual, false, bodyFontSize, measureWidth(prefix, bodyFontSize))
				}
			}
			y += postBlockGap

		case LineParagraph:
			for _, visual := range wrapText(line.Text, bodyFontSize, printable) {
				place(visual, false, bodyFontSize, 0)
			}
			y += postBlockGap
		}
	}

	return LayoutResult{Placements: placements, PageCount: page + 1}
}
