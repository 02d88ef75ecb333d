package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"directory-api/internal/model"
	"directory-api/pkg/discord"
)

const (
	reportTimeout   = 10 * time.Second
	maxFieldLen     = 1024
	maxReportErrors = 10
)

// report posts a run summary to Discord. Delivery failures are only logged.
func (uc *usecase) report(ctx context.Context, stats model.JobStats, runErr error) {
	if uc.discord == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer cancel()

	if err := uc.discord.SendEmbed(ctx, buildReport(stats, runErr)); err != nil {
		uc.l.Warnf(ctx, "internal.job.usecase.report.SendEmbed: %v", err)
	}
}

func buildReport(stats model.JobStats, runErr error) discord.MessageOptions {
	opts := discord.MessageOptions{
		Type:      discord.MessageTypeWarning,
		Title:     fmt.Sprintf("Job %s finished with errors", stats.Job),
		Timestamp: stats.FinishedAt,
		Footer:    &discord.EmbedFooter{Text: "run " + stats.RunID},
		Fields: []discord.EmbedField{
			buildField("Checked", strconv.Itoa(stats.Checked), true),
			buildField("Transitioned", strconv.Itoa(stats.Transitioned), true),
			buildField("Reminders", strconv.Itoa(stats.RemindersSent), true),
			buildField("Duration", stats.FinishedAt.Sub(stats.StartedAt).Round(time.Millisecond).String(), true),
		},
	}

	if runErr != nil {
		opts.Type = discord.MessageTypeError
		opts.Title = fmt.Sprintf("Job %s failed", stats.Job)
		opts.Description = runErr.Error()
	}
	if len(stats.Errors) > 0 {
		opts.Fields = append(opts.Fields, buildField(fmt.Sprintf("Errors (%d)", len(stats.Errors)), summarise(stats.Errors), false))
	}
	return opts
}

func summarise(errs []string) string {
	shown := errs
	if len(shown) > maxReportErrors {
		shown = shown[:maxReportErrors]
	}
	out := "- " + strings.Join(shown, "\n- ")
	if rest := len(errs) - len(shown); rest > 0 {
		out += fmt.Sprintf("\n... and %d more", rest)
	}
	return out
}

func buildField(name, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  truncateText(value, maxFieldLen),
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
