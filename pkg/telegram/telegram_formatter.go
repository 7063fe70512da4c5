package telegram

import (
	"fmt"
	"time"

	"golang-ai-analyzer/pkg/sanitize"
)

// FormatDegradedAnalysisMessage formats a Markdown alert for an analysis
// that fell back to its whole-result static default.
func FormatDegradedAnalysisMessage(t time.Time, mode, subject, reason string) string {
	return fmt.Sprintf(
		"⚠️ *Analysis Degraded* ⚠️\n\n*Mode:* %s\n*Subject:* %s\n*Time:* %s\n*Reason:* %s\n\nThe static default result was returned to the caller.",
		sanitize.Text(mode),
		sanitize.Text(subject),
		t.Format("2006-01-02 15:04:05"),
		sanitize.Text(reason),
	)
}

// FormatErrorAlertMessage formats a generic Markdown error alert.
func FormatErrorAlertMessage(t time.Time, message string) string {
	return fmt.Sprintf(
		"🚨 *Analyzer Error* 🚨\n\n*Time:* %s\n*Detail:* %s",
		t.Format("2006-01-02 15:04:05"),
		sanitize.Text(message),
	)
}
