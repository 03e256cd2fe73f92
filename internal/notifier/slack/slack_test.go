package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/table"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testBoard() *leaderboard.Board {
	return &leaderboard.Board{
		Metric:  "goals",
		Label:   "Goals",
		Columns: []string{"Rk", "player", "team", "Goals"},
		Rows: [][]string{
			{"1", "Icardi", "GS", "18"},
			{"2", "Demir", "GS", "12"},
		},
	}
}

func TestSendBoard_DryRun(t *testing.T) {
	metrics := metrics.NewMockMetrics()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	err := notifier.SendBoard(testBoard(), "minutes>=900", true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSentCount)
}

func TestSendBoard_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMockMetrics()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendBoard(testBoard(), "", false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSentCount)
	assert.Equal(t, 0, metrics.SlackNotifFailedCount)
}

func TestSendBoard_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMockMetrics()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendBoard(testBoard(), "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSentCount)
	assert.Equal(t, 1, metrics.SlackNotifFailedCount)
}

func TestFormatBoard_EmptyRows(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMockMetrics())

	msg := notifier.formatBoard(&leaderboard.Board{Metric: "goals", Label: "Goals"}, "")
	// A header plus the empty-state section.
	require.Len(t, msg.Blocks.BlockSet, 2)
}

func TestFormatBoard_FiltersContext(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMockMetrics())

	msg := notifier.formatBoard(testBoard(), "age<=23")
	// Header, two player sections, and the filters context block.
	require.Len(t, msg.Blocks.BlockSet, 4)
}

func TestSendTopTacklers(t *testing.T) {
	var sent int
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			sent++
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMockMetrics()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	tbl := &table.Table{
		Columns: []string{"player", "team", "tackles", "position"},
		Rows: []table.Row{
			{"player": table.Text("Demir"), "team": table.Text("GS"), "tackles": table.Num(71), "position": table.Text("DM")},
		},
	}
	err := notifier.SendTopTacklers(tbl, "25/26", false)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, metrics.SlackNotifSentCount)
}
