package mailsink

import (
	"context"
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSink(maxMessages int) *Sink {
	logger := zap.NewNop()
	return NewSink("127.0.0.1:0", "localhost", maxMessages, logger, utils.NewTextProcessor(logger))
}

func TestSinkAcceptAndScan(t *testing.T) {
	sink := newTestSink(10)
	ctx := context.Background()

	sink.accept("NayaPay Alerts <alerts@nayapay.com>", "Rs. 500 debited", "Mon, 02 Jan 2023 15:04:05 +0000", "Rs. 500 debited from your wallet")
	sink.accept("noreply@substack.com", "A new post", "Tue, 03 Jan 2023 10:00:00 +0000", "Read it now")

	emails, err := sink.ScanUnread(ctx)
	require.NoError(t, err)
	require.Len(t, emails, 2)

	assert.Equal(t, "NayaPay Alerts", emails[0].From)
	assert.Equal(t, "nayapay.com", emails[0].FromDomain)
	assert.Equal(t, "Rs. 500 debited", emails[0].Subject)

	// A bare address keeps the address as the sender name
	assert.Equal(t, "noreply@substack.com", emails[1].From)
	assert.Equal(t, "substack.com", emails[1].FromDomain)
}

func TestSinkMarkRead(t *testing.T) {
	sink := newTestSink(10)
	ctx := context.Background()

	sink.accept("a@one.com", "first", "", "")
	sink.accept("b@two.com", "second", "", "")

	emails, err := sink.ScanUnread(ctx)
	require.NoError(t, err)
	require.Len(t, emails, 2)

	result, err := sink.ApplyBulkAction(ctx, []string{emails[0].ID}, core.ActionMarkRead)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	remaining, err := sink.ScanUnread(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "second", remaining[0].Subject)
}

func TestSinkDestructiveActionsRemoveMessages(t *testing.T) {
	for _, action := range []core.BulkAction{core.ActionArchive, core.ActionSpam, core.ActionTrash} {
		sink := newTestSink(10)
		ctx := context.Background()

		sink.accept("a@one.com", "first", "", "")
		sink.accept("b@two.com", "second", "", "")

		emails, err := sink.ScanUnread(ctx)
		require.NoError(t, err)

		result, err := sink.ApplyBulkAction(ctx, []string{emails[1].ID}, action)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed, "action=%s", action)

		remaining, err := sink.ScanUnread(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1, "action=%s", action)
		assert.Equal(t, "first", remaining[0].Subject)
	}
}

func TestSinkUnknownAction(t *testing.T) {
	sink := newTestSink(10)
	_, err := sink.ApplyBulkAction(context.Background(), []string{"sink-1"}, core.BulkAction("explode"))
	assert.Error(t, err)
}

func TestSinkMailboxCap(t *testing.T) {
	sink := newTestSink(2)
	ctx := context.Background()

	sink.accept("a@one.com", "first", "", "")
	sink.accept("b@two.com", "second", "", "")
	sink.accept("c@three.com", "third", "", "")

	emails, err := sink.ScanUnread(ctx)
	require.NoError(t, err)
	require.Len(t, emails, 2)
	// The oldest message was dropped to make room
	assert.Equal(t, "second", emails[0].Subject)
	assert.Equal(t, "third", emails[1].Subject)
}
