package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/ticks"
	"github.com/matzehuels/chartaxes/pkg/pipeline"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary
	colorGreen = lipgloss.Color("35")  // success
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printStats prints per-format cache status and stage timings on one line.
func printStats(formats []string, result *pipeline.Result) {
	fmt.Println(statsLine(formats, result))
}

func statsLine(formats []string, result *pipeline.Result) string {
	parts := make([]string, 0, len(formats)+2)
	status := iconFresh
	statusStyle := styleComputed
	if result.Stats.CacheMisses == 0 {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, strings.Join(formats, ","), statusStyle.Render(status))
	if result.Stats.CacheMisses > 0 {
		parts = append(parts, fmt.Sprintf("layout %s · render %s",
			result.Stats.LayoutTime.Round(time.Microsecond), result.Stats.RenderTime.Round(time.Microsecond)))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	return line
}

// ticksTable renders generated ticks as a bordered table of index, raw value
// and formatted label.
func ticksTable(auto *ticks.Auto, f axis.Formatter) string {
	rows := make([][]string, 0, auto.Len())
	for i, v := range auto.Values {
		rows = append(rows, []string{
			fmt.Sprint(i),
			fmt.Sprint(v),
			axis.AutoLabel(f, v, auto.Decimals),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("#", "value", "label").
		Rows(rows...).
		Render()
}
