// Package slack implements the Notifier interface using Slack Block Kit.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/notifier"
	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/mauv0809/superlig-stats/internal/tacklers"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendBoard posts a built leaderboard with its filter summary.
func (s *Notifier) SendBoard(board *leaderboard.Board, filters string, dryRun bool) error {
	msg := s.formatBoard(board, filters)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendTopTacklers posts the top-tacklers table for a season.
func (s *Notifier) SendTopTacklers(t *table.Table, season string, dryRun bool) error {
	msg := s.formatTopTacklers(t, season)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatBoard creates the Slack message for a leaderboard using Block Kit.
func (s *Notifier) formatBoard(board *leaderboard.Board, filters string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Top %d: %s 🏆", len(board.Rows), board.Label), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(board.Rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players match the current filters.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range board.Rows {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		// Columns are [Rk, player, team, metric, extras...]; the metric
		// header doubles as the value label.
		rowText := fmt.Sprintf("%d. %s %s (%s)\n> %s: %s", rank, medal, row[1], row[2], board.Label, row[3])
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", rowText, true, false), nil, nil))
	}

	if filters != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("Filters: %s", filters), true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatTopTacklers creates the Slack message for the tacklers table.
func (s *Notifier) formatTopTacklers(t *table.Table, season string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🛡️ Top Tacklers %s 🛡️", season), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if t == nil || t.Len() == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No tackle data available.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, row := range t.Rows {
		line := fmt.Sprintf("%d. %s (%s): %s tackles",
			i+1,
			row[table.ColPlayer].Text,
			row[table.ColTeam].Text,
			leaderboard.FormatNumber(row[tacklers.ColTackles]),
		)
		if pos := row["position"]; !pos.Missing() {
			line += fmt.Sprintf(" · %s", pos.Text)
		}
		lines = append(lines, line)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
