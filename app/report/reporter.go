package report

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fplradar/radar/app/ideas"
)

// Reporter builds the HTML report from the ideas file and mails it
// when a recipient is configured.
type Reporter struct {
	dataFile string
	outFile  string
	sender   Sender
	now      func() time.Time
}

func NewReporter(dataFile, outFile string, sender Sender) *Reporter {
	return &Reporter{
		dataFile: dataFile,
		outFile:  outFile,
		sender:   sender,
		now:      time.Now,
	}
}

// Run loads the ideas, writes out the rendered report and sends it if
// REPORT_EMAIL_TO is set. A malformed ideas file aborts the stage; a
// mail failure is logged and the report on disk stands.
func (r *Reporter) Run() error {
	list, err := ideas.Load(r.dataFile)
	if err != nil {
		return err
	}

	summary := BuildSummary(list, r.now())
	html, err := RenderHTML(summary, list)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.outFile), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(r.outFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	slog.Info("Report generated", "file", r.outFile, "ideas", summary.Count)

	to := os.Getenv("REPORT_EMAIL_TO")
	if to == "" {
		slog.Info("Report email skipped, REPORT_EMAIL_TO not set")
		return nil
	}

	subject := cmp.Or(os.Getenv("REPORT_EMAIL_SUBJECT"),
		fmt.Sprintf("[FPL Radar] Report %s", summary.GeneratedAt))

	recipients := splitRecipients(to)
	if err := r.sender.Send(recipients, subject, html); err != nil {
		slog.Error("Failed to send report email", "error", err.Error())
		return nil
	}
	slog.Info("Report email sent", "to", to)
	return nil
}

func splitRecipients(to string) []string {
	var recipients []string
	for _, part := range strings.Split(to, ";") {
		if addr := strings.TrimSpace(part); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
