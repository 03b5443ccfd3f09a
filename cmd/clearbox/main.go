package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/factory"
	"github.com/mikey/clearbox/internal/finance"
	"github.com/mikey/clearbox/internal/logging"
	"github.com/mikey/clearbox/internal/pricing"
	"github.com/mikey/clearbox/internal/pricing/prolist"
	"github.com/mikey/clearbox/internal/scan"
	"go.uber.org/zap"
)

var (
	// Identity flags
	identity = flag.String("identity", "", "Identity to scan for (email address)")

	// Source flags
	source     = flag.String("source", "gmail", "Mail source (gmail, file)")
	inputFile  = flag.String("file", "", "Input JSON file for the file source")
	gmailToken = flag.String("gmail-token", "", "OAuth access token for the Gmail source")
	maxEmails  = flag.Int("max-emails", 1000, "Maximum number of emails to scan")

	// Clear flags
	clearAction = flag.String("clear", "", "Bulk action to apply after the scan (archive, markRead, spam, trash)")
	clearGroup  = flag.String("clear-category", "", "Category to clear (newsletters, social, receipts, other, all)")

	// Roast flags
	roastEnabled  = flag.Bool("roast", false, "Generate a roast of the scan results")
	roastProvider = flag.String("roast-provider", "bedrock", "Roast provider (bedrock, gemini, openai)")
	roastSeverity = flag.String("roast-severity", "medium", "Roast severity (mild, medium, savage)")

	// Output flags
	jsonOutput = flag.Bool("json", false, "Output the report as JSON")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.Bool("config", false, "Load configuration from the config file instead of flags")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
	} else {
		cfg = createConfigFromFlags()
	}

	if *identity == "" {
		logger.Fatal("An identity is required, pass -identity")
	}

	// Build the counter store and allowance engine
	counterFactory := factory.NewCounterFactory(cfg, logger)
	store, err := counterFactory.CreateCounterStore()
	if err != nil {
		logger.Fatal("Failed to create counter store", zap.Error(err))
	}

	pricingCfg := cfg.GetPricing()
	proChecker := prolist.NewChecker(pricingCfg.ProIdentities, logger)
	pricingService := pricing.NewService(
		store,
		proChecker,
		logger,
		pricingCfg.FreeClearLimit,
		pricingCfg.ScanLimitPerDay,
		pricingCfg.UpgradeURL,
	)

	// Build the mail source
	textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()
	sourceFactory := factory.NewSourceFactory(cfg, logger, textProcessor)
	mailSource, err := sourceFactory.CreateMailSource()
	if err != nil {
		logger.Fatal("Failed to create mail source", zap.Error(err))
	}

	// Build the roast generator if requested
	roastCfg := cfg.GetRoast()
	var roaster core.RoastGenerator
	if roastCfg.Enabled {
		roastFactory := factory.NewRoastFactory(cfg, logger)
		roaster, err = roastFactory.CreateRoastGenerator()
		if err != nil {
			logger.Fatal("Failed to create roast generator", zap.Error(err))
		}
	}

	service := scan.NewService(
		mailSource,
		pricingService,
		roaster,
		roastCfg.Enabled,
		core.RoastSeverity(roastCfg.Severity),
		logger,
	)

	ctx := context.Background()

	report, err := service.Scan(ctx, *identity)
	if err != nil {
		var limitErr *scan.ErrScanLimitReached
		if errors.As(err, &limitErr) {
			fmt.Println(limitErr.Message)
			os.Exit(2)
		}
		logger.Fatal("Scan failed", zap.Error(err))
	}

	if *jsonOutput {
		printJSON(report)
	} else {
		printReport(report)
	}

	if *clearAction != "" {
		runClear(ctx, service, report, logger)
	}

	// Close anything that needs closing
	if closer, ok := roaster.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close roast generator", zap.Error(err))
		}
	}
	if stopper, ok := store.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}

// runClear applies the requested bulk action to the selected category
func runClear(ctx context.Context, service *scan.Service, report *scan.Report, logger *zap.Logger) {
	ids := selectIDs(report)
	if len(ids) == 0 {
		fmt.Println("Nothing to clear.")
		return
	}

	result, usage, err := service.Clear(ctx, *identity, ids, core.BulkAction(*clearAction))
	if err != nil {
		var limitErr *scan.ErrClearLimitReached
		if errors.As(err, &limitErr) {
			fmt.Println(limitErr.Message)
			os.Exit(2)
		}
		logger.Fatal("Clear failed", zap.Error(err))
	}

	fmt.Printf("\nCleared %d emails (%d failed).\n", result.Processed, result.Failed)
	if usage.RemainingClears != nil {
		fmt.Printf("Remaining free clears: %d\n", *usage.RemainingClears)
	}
}

// selectIDs picks the message IDs for the requested clear category
func selectIDs(report *scan.Report) []string {
	var emails []core.EmailMetadata
	switch *clearGroup {
	case "newsletters":
		emails = report.Categorized.Newsletters
	case "social":
		emails = report.Categorized.Social
	case "receipts":
		emails = report.Categorized.Receipts
	case "other":
		emails = report.Categorized.Other
	case "", "all":
		emails = report.Emails
	}

	ids := make([]string, 0, len(emails))
	for _, e := range emails {
		ids = append(ids, e.ID)
	}
	return ids
}

func printJSON(report *scan.Report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Printf("Failed to encode report: %v\n", err)
		os.Exit(1)
	}
}

func printReport(report *scan.Report) {
	stats := report.Stats

	fmt.Printf("\n=== Inbox Summary ===\n")
	fmt.Printf("Total unread: %d\n", stats.Total)
	fmt.Printf("Newsletters:  %d\n", stats.Newsletters)
	fmt.Printf("Social:       %d\n", stats.Social)
	fmt.Printf("Receipts:     %d\n", stats.Receipts)
	fmt.Printf("Other:        %d\n", stats.Other)
	if stats.OldestDate != "" {
		fmt.Printf("Oldest unread: %s\n", stats.OldestDate)
	}

	if len(stats.TopSenders) > 0 {
		fmt.Printf("\n=== Top Senders ===\n")
		for _, s := range stats.TopSenders {
			fmt.Printf("%5d  %s\n", s.Count, s.Name)
		}
	}

	fmt.Printf("\n=== Shame Score ===\n")
	fmt.Printf("%d/100 - %s\n", report.ShameScore.Score, report.ShameScore.Label)
	fmt.Printf("%s\n", report.ShameScore.Description)

	if len(report.Transactions) > 0 {
		fmt.Printf("\n=== Finance ===\n")
		fmt.Printf("Transactions found: %d\n", len(report.Transactions))
		for _, summary := range finance.SummarizeByProvider(report.Transactions) {
			fmt.Printf("%-20s in %10.2f  out %10.2f  net %10.2f  (%d)\n",
				summary.Provider, summary.Incoming, summary.Outgoing, summary.Net, summary.Count)
		}
		totals := finance.Totals(report.Transactions)
		fmt.Printf("Totals: in %.2f, out %.2f, net %.2f\n",
			totals.IncomingTotal, totals.OutgoingTotal, totals.NetTotal)
	}

	if report.Roast != "" {
		fmt.Printf("\n=== Roast ===\n%s\n", report.Roast)
	}

	fmt.Printf("\nScans used today: %d/%d\n", report.ScanRate.ScansUsedToday, report.ScanRate.ScanLimitPerDay)
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("scan.source", *source)
	v.Set("scan.max_emails", *maxEmails)
	if *inputFile != "" {
		v.Set("scan.input_file", *inputFile)
	}

	if *gmailToken != "" {
		v.Set("gmail.access_token", *gmailToken)
	}

	v.Set("roast.enabled", *roastEnabled)
	v.Set("roast.provider", *roastProvider)
	v.Set("roast.severity", strings.TrimSpace(*roastSeverity))

	return config.NewFromViper(v)
}
