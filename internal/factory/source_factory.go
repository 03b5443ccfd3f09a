package factory

import (
	"context"
	"fmt"

	"github.com/mikey/clearbox/internal/adapters/filesource"
	"github.com/mikey/clearbox/internal/adapters/gmailsource"
	"github.com/mikey/clearbox/internal/adapters/mailsink"
	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/utils"
	"go.uber.org/zap"
)

// SourceFactory creates mail sources based on configuration
type SourceFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewSourceFactory creates a new mail source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *SourceFactory {
	return &SourceFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateMailSource creates a mail source based on the configuration
func (f *SourceFactory) CreateMailSource() (core.MailSource, error) {
	scanCfg := f.cfg.GetScan()

	switch scanCfg.Source {
	case "gmail":
		gmailCfg := f.cfg.GetGmail()
		return gmailsource.NewClient(
			context.Background(),
			gmailCfg.AccessToken,
			scanCfg.MaxEmails,
			scanCfg.PageSize,
			f.logger,
			f.textProcessor,
		)
	case "file":
		if scanCfg.InputFile == "" {
			return nil, fmt.Errorf("scan.input_file is required for the file source")
		}
		return filesource.NewSource(scanCfg.InputFile, f.logger), nil
	case "sink":
		sinkCfg := f.cfg.GetSink()
		return mailsink.NewSink(
			sinkCfg.ListenAddress,
			sinkCfg.Domain,
			sinkCfg.MaxMessages,
			f.logger,
			f.textProcessor,
		), nil
	default:
		return nil, fmt.Errorf("unsupported mail source: %s", scanCfg.Source)
	}
}
