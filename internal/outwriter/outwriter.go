// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"golang.org/x/term"
)

// Column widths used when fitting repositories into the terminal.
const (
	leadColumnWidth = 14 // Date or bucket column plus borders
	repoColumnWidth = 12 // One repository column plus separator
	maxRepoNameLen  = 16
	minRepoColumns  = 1
)

// LogRunHeader prints a concise, 2-line header describing the table that was built.
// Only human-readable output to stdout gets a header, so JSON and CSV stay parseable.
func LogRunHeader(cfg *contract.Config, table *schema.CombinedTable) {
	if cfg.Output != schema.TextOut || cfg.OutputFile != "" {
		return
	}
	rootName := filepath.Base(cfg.RootPath)
	if rootName == "" || rootName == "." {
		rootName = "current"
	}

	repos := 0
	for _, t := range table.Ordered() {
		repos += len(t.Columns)
	}

	// Line 1: the root and how much of it was read
	header := fmt.Sprintf("🔎 Root: %s (Categories: %d, Repos: %d)", rootName, len(table.Categories), repos)
	fmt.Println(contract.Colorize(contract.HeaderColor, header, cfg.UseColors))

	// Line 2: the dates covered by the union index
	first, last, _ := schema.DateSpan(table.Index())
	fmt.Printf("📅 Range: %s → %s (Timezone: %s)\n", schema.FormatDate(first), schema.FormatDate(last), locationName(cfg))
}

func locationName(cfg *contract.Config) string {
	if cfg.Location == nil {
		return contract.DefaultTimezone
	}
	return cfg.Location.String()
}

// terminalWidth returns the --width override, the detected terminal width or 80.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// GetMaxTableColumns calculates how many repository columns fit next to the
// lead column, reserving extra for trailing columns such as a total.
func GetMaxTableColumns(cfg *contract.Config, extraColumns int) int {
	available := terminalWidth(cfg) - leadColumnWidth - extraColumns*repoColumnWidth
	return max(available/repoColumnWidth, minRepoColumns)
}

// hiddenNote describes the repositories left out of a narrow table.
func hiddenNote(hidden int) string {
	return fmt.Sprintf("… %d more repositories hidden (widen with --width or use --output csv)", hidden)
}
