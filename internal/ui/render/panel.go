package render

import (
	"strings"

	"github.com/llehouerou/albums/internal/ui/styles"
)

// Panel frames a list panel: header, separator, then lines padded with
// blank rows to height, inside a rounded border. width is the inner width.
func Panel(focused bool, width, height int, header string, lines []string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(Separator(width))
	for i := range height {
		b.WriteString("\n")
		if i < len(lines) {
			b.WriteString(lines[i])
		} else {
			b.WriteString(EmptyLine(width))
		}
	}
	return styles.T().S().Panel(focused).Width(width).Render(b.String())
}
