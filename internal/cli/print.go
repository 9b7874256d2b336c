package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/swaglabs/loginsuite/internal/models"
)

// PrintAttempts writes a table of attempts followed by a pass/fail summary
func PrintAttempts(out io.Writer, runID string, attempts []*models.Attempt) {
	fmt.Fprintf(out, "Run %s\n\n", color.CyanString(runID))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tATTEMPT\tSTATUS\tDURATION\tERROR")

	passed, failed := 0, 0
	for _, a := range attempts {
		status := string(a.Status)
		switch a.Status {
		case models.AttemptStatusPassed:
			passed++
			status = color.GreenString(status)
		case models.AttemptStatusFailed:
			failed++
			status = color.RedString(status)
		default:
			status = color.YellowString(status)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", a.CaseID, a.Number, status, a.Duration().Round(time.Millisecond), a.Error)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d attempt(s): %s, %s\n", len(attempts),
		color.GreenString("%d passed", passed),
		color.RedString("%d failed", failed))
}

// PrintCredentials writes the credential records in file order
func PrintCredentials(out io.Writer, records []models.Credential) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tUSERNAME\tPASSWORD\tEXPECTED ERROR")
	for _, c := range records {
		expected := c.ErrorMessage
		if !c.ExpectsError() {
			expected = color.GreenString("(success)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, blank(c.Username), blank(c.Password), expected)
	}
	w.Flush()
}

func blank(s string) string {
	if s == "" {
		return color.YellowString("<blank>")
	}
	return s
}
