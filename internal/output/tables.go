package output

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/winpos/internal/types"
)

// PrintResultsTable prints window results in a table format, preserving
// the order the process table reported them in.
func PrintResultsTable(results []types.WindowResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("PID", "Process", "Size", "Top-Left", "Bottom-Right", "Minimized")

	for _, r := range results {
		minimized := ""
		if r.Minimized {
			minimized = "✓"
		}

		table.Append(
			fmt.Sprintf("%d", r.ProcessID),
			truncate(r.ProcessName, 30),
			fmt.Sprintf("%dx%d", r.Size.Width, r.Size.Height),
			fmt.Sprintf("(%d,%d)", r.TopLeft.X, r.TopLeft.Y),
			fmt.Sprintf("(%d,%d)", r.BottomRight.X, r.BottomRight.Y),
			minimized,
		)
	}

	table.Render()
}

// truncate shortens a string to maxLen with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
