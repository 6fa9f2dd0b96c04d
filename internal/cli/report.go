package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/BeepBoopVictor/project-scaffolder/internal/engine"
)

// Report renders the run summary and the per-result listing to stdout.
// Results are printed in target order, which is the order of the parsed
// tree, so the listing mirrors the input spec visually.
func Report(result *engine.BuildResult) {
	results := result.Results
	s := engine.Summarize(results)

	PrintSection("Report")
	if s.DryRun {
		PrintWarning("DRY-RUN (no writes performed)")
	}
	PrintLabelValue("Destination", result.DestRoot)
	PrintLabelValue("Dirs created", fmt.Sprintf("%d", s.DirsCreated))
	PrintLabelValue("Files created", fmt.Sprintf("%d", s.FilesCreated))
	PrintLabelValue("Already existed", fmt.Sprintf("%d", s.Existed))
	PrintLabelValue("Overwritten", fmt.Sprintf("%d", s.Overwritten))
	PrintLabelValue("Files skipped", fmt.Sprintf("%d", s.Skipped))
	fmt.Println()

	for _, r := range results {
		_, _ = actionColor(r.Action).Printf("%s ", r.Action.Marker())
		_, _ = dimColor.Printf("[%s] ", r.Kind)
		fmt.Println(r.Path)
	}
}

// actionColor maps an action to the color of its listing marker.
func actionColor(a engine.Action) *color.Color {
	switch a {
	case engine.ActionCreated:
		return successColor
	case engine.ActionExists:
		return dimColor
	case engine.ActionSkipped:
		return warningColor
	case engine.ActionOverwritten:
		return errorColor
	case engine.ActionDryRun:
		return infoColor
	}
	return dimColor
}
