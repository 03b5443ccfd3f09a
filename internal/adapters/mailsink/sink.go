// Package mailsink runs a small SMTP server that collects delivered messages
// into an in-memory mailbox. It serves as a local MailSource for testing the
// engines without a Gmail account.
package mailsink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/utils"
	"go.uber.org/zap"
)

const maxSnippet = 500

// storedMessage is a message held by the sink's mailbox
type storedMessage struct {
	meta   core.EmailMetadata
	unread bool
}

// Sink is an SMTP server that implements the MailSource interface over the
// messages it has accepted
type Sink struct {
	listenAddr    string
	domain        string
	maxMessages   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	server        *smtp.Server

	mu       sync.Mutex
	messages []storedMessage
	nextID   int
}

// NewSink creates a new mail sink
func NewSink(
	listenAddr string,
	domain string,
	maxMessages int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *Sink {
	return &Sink{
		listenAddr:    listenAddr,
		domain:        domain,
		maxMessages:   maxMessages,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Start starts the SMTP server
func (s *Sink) Start() error {
	s.server = smtp.NewServer(&sinkBackend{sink: s})

	s.server.Addr = s.listenAddr
	s.server.Domain = s.domain
	s.server.ReadTimeout = 30 * time.Second
	s.server.WriteTimeout = 30 * time.Second
	s.server.MaxMessageBytes = 10 * 1024 * 1024 // 10MB
	s.server.MaxRecipients = 50
	s.server.AllowInsecureAuth = true

	s.logger.Info("Mail sink starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				s.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP server
func (s *Sink) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// accept stores a delivered message in the mailbox
func (s *Sink) accept(from, subject, date, snippet string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxMessages > 0 && len(s.messages) >= s.maxMessages {
		// Oldest message gets dropped when the mailbox is full
		s.messages = s.messages[1:]
	}

	s.nextID++
	s.messages = append(s.messages, storedMessage{
		meta: core.EmailMetadata{
			ID:         fmt.Sprintf("sink-%d", s.nextID),
			From:       senderName(from),
			FromDomain: senderDomain(from),
			Subject:    subject,
			Date:       date,
			Snippet:    s.textProcessor.CleanSnippet(snippet, maxSnippet),
		},
		unread: true,
	})
}

// ScanUnread returns the metadata of every unread message in the mailbox
func (s *Sink) ScanUnread(_ context.Context) ([]core.EmailMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := make([]core.EmailMetadata, 0, len(s.messages))
	for _, m := range s.messages {
		if m.unread {
			emails = append(emails, m.meta)
		}
	}
	return emails, nil
}

// ApplyBulkAction mutates the mailbox for the given message IDs
func (s *Sink) ApplyBulkAction(_ context.Context, ids []string, action core.BulkAction) (core.BulkActionResult, error) {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := core.BulkActionResult{Action: action}

	switch action {
	case core.ActionMarkRead:
		for i := range s.messages {
			if _, ok := idSet[s.messages[i].meta.ID]; ok {
				s.messages[i].unread = false
				result.Processed++
			}
		}
	case core.ActionArchive, core.ActionSpam, core.ActionTrash:
		// The sink has no folders, so anything beyond mark-read removes
		// the message from the mailbox
		kept := s.messages[:0]
		for _, m := range s.messages {
			if _, ok := idSet[m.meta.ID]; ok {
				result.Processed++
				continue
			}
			kept = append(kept, m)
		}
		s.messages = kept
	default:
		return result, fmt.Errorf("unknown bulk action: %s", action)
	}

	return result, nil
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

// sinkBackend implements the go-smtp Backend interface
type sinkBackend struct {
	sink *Sink
}

// NewSession creates a new SMTP session
func (b *sinkBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &sinkSession{sink: b.sink}, nil
}

// sinkSession implements the go-smtp Session interface
type sinkSession struct {
	sink   *Sink
	sender string
}

// Reset resets the session state
func (s *sinkSession) Reset() {
	s.sender = ""
}

// AuthPlain handles PLAIN authentication (the sink accepts everything)
func (s *sinkSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *sinkSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt accepts any recipient
func (s *sinkSession) Rcpt(_ string, _ *smtp.RcptOptions) error {
	return nil
}

// Data reads the message and stores its metadata in the mailbox
func (s *sinkSession) Data(r io.Reader) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		s.sink.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	msg, err := mail.ReadMessage(bytes.NewReader(rawData))
	if err != nil {
		s.sink.logger.Error("Failed to parse email message", zap.Error(err))
		return err
	}

	from := msg.Header.Get("From")
	if from == "" {
		from = s.sender
	}
	date := msg.Header.Get("Date")
	if date == "" {
		date = time.Now().UTC().Format(time.RFC1123Z)
	}

	body, err := io.ReadAll(msg.Body)
	if err != nil {
		s.sink.logger.Error("Failed to read message body", zap.Error(err))
		return err
	}

	s.sink.accept(from, msg.Header.Get("Subject"), date, strings.TrimSpace(string(body)))

	s.sink.logger.Debug("Accepted message",
		zap.String("from", from),
		zap.String("subject", msg.Header.Get("Subject")))

	return nil
}

// Logout handles SMTP logout
func (s *sinkSession) Logout() error {
	return nil
}
