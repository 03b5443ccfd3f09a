// Package gmailsource reads unread mail and applies bulk actions through the
// Gmail REST API.
package gmailsource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	unreadQuery  = "is:unread"
	batchSize    = 1000
	maxSnippet   = 500
	retryBackoff = 2 * time.Second
)

// Client is an implementation of the MailSource interface using the Gmail API
type Client struct {
	svc           *gmail.Service
	maxEmails     int
	pageSize      int64
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewClient creates a new Gmail client authenticated with an OAuth access token
func NewClient(
	ctx context.Context,
	accessToken string,
	maxEmails int,
	pageSize int64,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("gmail access token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:           svc,
		maxEmails:     maxEmails,
		pageSize:      pageSize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// ScanUnread lists unread messages and fetches their metadata headers
func (c *Client) ScanUnread(ctx context.Context) ([]core.EmailMetadata, error) {
	ids, err := c.listUnreadIDs(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Fetching message metadata",
		zap.Int("message_count", len(ids)))

	emails := make([]core.EmailMetadata, 0, len(ids))
	for _, id := range ids {
		msg, err := c.svc.Users.Messages.Get("me", id).
			Format("metadata").
			MetadataHeaders("From", "Subject", "Date").
			Context(ctx).
			Do()
		if err != nil {
			// A single unfetchable message should not sink the whole scan
			c.logger.Warn("Failed to fetch message metadata",
				zap.String("message_id", id),
				zap.Error(err))
			continue
		}
		emails = append(emails, c.toMetadata(msg))
	}

	return emails, nil
}

// listUnreadIDs pages through the unread message list up to the configured cap
func (c *Client) listUnreadIDs(ctx context.Context) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		call := c.svc.Users.Messages.List("me").
			Q(unreadQuery).
			MaxResults(c.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list unread messages: %w", err)
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
			if c.maxEmails > 0 && len(ids) >= c.maxEmails {
				return ids, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// toMetadata converts a Gmail message into the engine's metadata shape
func (c *Client) toMetadata(msg *gmail.Message) core.EmailMetadata {
	var from, subject, date string
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "From":
				from = h.Value
			case "Subject":
				subject = h.Value
			case "Date":
				date = h.Value
			}
		}
	}

	return core.EmailMetadata{
		ID:         msg.Id,
		From:       senderName(from),
		FromDomain: senderDomain(from),
		Subject:    subject,
		Date:       date,
		Snippet:    c.textProcessor.CleanSnippet(msg.Snippet, maxSnippet),
	}
}

// senderName extracts the display name from a From header, falling back to
// the address itself
func senderName(from string) string {
	if idx := strings.Index(from, "<"); idx > 0 {
		name := strings.TrimSpace(from[:idx])
		name = strings.Trim(name, `"`)
		if name != "" {
			return name
		}
	}
	return strings.Trim(strings.TrimSpace(from), "<>")
}

// senderDomain extracts the lowercased domain from a From header
func senderDomain(from string) string {
	addr := from
	if start := strings.Index(from, "<"); start >= 0 {
		if end := strings.Index(from[start:], ">"); end > 0 {
			addr = from[start+1 : start+end]
		}
	}
	if at := strings.LastIndex(addr, "@"); at >= 0 {
		return strings.ToLower(strings.TrimSpace(addr[at+1:]))
	}
	return ""
}

// ApplyBulkAction applies an action to the given message IDs in batches
func (c *Client) ApplyBulkAction(ctx context.Context, ids []string, action core.BulkAction) (core.BulkActionResult, error) {
	result := core.BulkActionResult{Action: action}

	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		if err := c.applyBatch(ctx, batch, action); err != nil {
			result.Failed += len(batch)
			c.logger.Error("Bulk action batch failed",
				zap.String("action", string(action)),
				zap.Int("batch_size", len(batch)),
				zap.Error(err))
			continue
		}
		result.Processed += len(batch)
	}

	if result.Processed == 0 && result.Failed > 0 {
		return result, fmt.Errorf("bulk action %s failed for all %d messages", action, result.Failed)
	}
	return result, nil
}

// applyBatch issues a single batch call, retrying once on rate limiting
func (c *Client) applyBatch(ctx context.Context, ids []string, action core.BulkAction) error {
	err := c.doBatch(ctx, ids, action)
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 429 {
		c.logger.Warn("Rate limited by Gmail, retrying batch",
			zap.Duration("backoff", retryBackoff))
		select {
		case <-time.After(retryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		return c.doBatch(ctx, ids, action)
	}
	return err
}

func (c *Client) doBatch(ctx context.Context, ids []string, action core.BulkAction) error {
	switch action {
	case core.ActionArchive:
		return c.batchModify(ctx, ids, nil, []string{"INBOX", "UNREAD"})
	case core.ActionMarkRead:
		return c.batchModify(ctx, ids, nil, []string{"UNREAD"})
	case core.ActionSpam:
		return c.batchModify(ctx, ids, []string{"SPAM"}, []string{"INBOX", "UNREAD"})
	case core.ActionTrash:
		return c.svc.Users.Messages.BatchDelete("me", &gmail.BatchDeleteMessagesRequest{
			Ids: ids,
		}).Context(ctx).Do()
	default:
		return fmt.Errorf("unknown bulk action: %s", action)
	}
}

func (c *Client) batchModify(ctx context.Context, ids, add, remove []string) error {
	return c.svc.Users.Messages.BatchModify("me", &gmail.BatchModifyMessagesRequest{
		Ids:            ids,
		AddLabelIds:    add,
		RemoveLabelIds: remove,
	}).Context(ctx).Do()
}
