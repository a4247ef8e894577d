// Package report renders a human-readable summary of each received bot
// message to a writer, typically stdout, for live operator visibility.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

const (
	frameWidth  = 50
	noneLabel   = "None"
	headerTitle = "INCOMING BOT MESSAGE"
)

// Reporter writes framed message summaries to its writer.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes a framed block describing the extracted message fields.
// Writes are best-effort: a failing writer never fails message handling.
func (r *Reporter) Report(fields *domain.ExtractedFields) {
	frame := strings.Repeat("=", frameWidth)

	var b strings.Builder
	fmt.Fprintln(&b, frame)
	fmt.Fprintln(&b, headerTitle)
	fmt.Fprintln(&b, frame)
	fmt.Fprintf(&b, "User ID:    %s\n", fields.UserID)
	fmt.Fprintf(&b, "Dialog ID:  %s\n", fields.DialogID)
	fmt.Fprintf(&b, "Message:    %s\n", fields.Text)
	fmt.Fprintf(&b, "Links Found: %s\n", formatLinks(fields.Links))
	fmt.Fprintf(&b, "Deal ID:    %s\n", formatDeal(fields.DealID))
	fmt.Fprintln(&b, frame)

	_, _ = io.WriteString(r.out, b.String())
}

func formatLinks(links []string) string {
	if len(links) == 0 {
		return noneLabel
	}
	return strings.Join(links, ", ")
}

func formatDeal(dealID string) string {
	if dealID == "" {
		return noneLabel
	}
	return dealID
}
