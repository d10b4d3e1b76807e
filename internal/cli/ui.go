package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDummyNode   = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printStats prints graph statistics on a single line.
func printStats(nodeCount, edgeCount, rankCount int) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d edges", edgeCount),
		fmt.Sprintf("%d ranks", rankCount),
	}
	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// renderLayerMatrix formats the layer matrix as one line per rank, nodes
// left to right in order. Synthetic nodes render dimmed, holes as dots.
func renderLayerMatrix(g *graph.Graph) string {
	var b strings.Builder
	for rank, layer := range layout.BuildLayerMatrix(g) {
		b.WriteString(StyleNumber.Render(fmt.Sprintf("%3d", rank)))
		b.WriteString(StyleDim.Render(" │"))
		for _, v := range layer {
			b.WriteByte(' ')
			if v == "" {
				b.WriteString(StyleDim.Render("·"))
				continue
			}
			if n, ok := g.Node(v); ok && n.IsDummy() {
				b.WriteString(styleDummyNode.Render(v))
				continue
			}
			b.WriteString(StyleValue.Render(v))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
