package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintSummary writes a human-readable summary of report to out.
func PrintSummary(out io.Writer, report *Report) {
	if report == nil {
		return
	}

	for _, s := range report.Skills {
		if s.Skipped {
			fmt.Fprintf(out, "%s %s %s\n", color.YellowString("-"), s.Name,
				color.New(color.FgHiBlack).Sprintf("(exists, use --force: %s)", s.Dir))
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", color.GreenString("✓"), s.Name,
			color.New(color.FgHiBlack).Sprintf("(%s)", s.Dir))
		if len(s.Rejected) > 0 {
			fmt.Fprintf(out, "    %s %s\n", color.YellowString("rejected:"), strings.Join(s.Rejected, ", "))
		}
	}

	if l := report.Links; l.Fixed+l.Removed > 0 {
		fmt.Fprintf(out, "Links: %d fixed, %d removed\n", l.Fixed, l.Removed)
	}

	if len(report.Failures) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s\n", color.RedString("%d item(s) skipped:", len(report.Failures)))
	for _, f := range report.Failures {
		printFailure(out, f)
	}
}

func printFailure(out io.Writer, f Failure) {
	printer := color.New(color.FgRed).SprintFunc()

	// Format:  • [kind] path: message
	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(printer(f.Kind))
	sb.WriteString(" ")
	sb.WriteString(f.Path)
	sb.WriteString(": ")

	msg := f.Error
	// Truncate long messages
	if len(msg) > 200 {
		msg = msg[:197] + "..."
	}
	sb.WriteString(msg)

	fmt.Fprintln(out, sb.String())
}
