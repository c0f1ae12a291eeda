// Package cli implements the inkforge command line interface using cobra.
// Commands talk to the core services through the driving ports; the
// services themselves are wired here from the configuration file.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driven/config/file"
	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driven/storage/sqlite"
	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driven/tags/httpapi"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driving"
	"github.com/inkforge-labs/inkforge-cli/internal/core/services"
	"github.com/inkforge-labs/inkforge-cli/internal/logger"
	"github.com/inkforge-labs/inkforge-cli/internal/mdx"
)

// version is set by Execute from the build.
var version = "dev"

// Services injected into commands. Tests replace these directly.
var (
	documentService driving.DocumentService
	draftService    driving.DraftService
)

// draftStore is kept so Execute can close it on exit.
var draftStore driven.DraftStore

// appConfig holds the loaded configuration for the current invocation.
var appConfig = file.DefaultConfig()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inkforge",
	Short: "Convert markup documents to structured trees and back",
	Long: `Inkforge converts a markdown-like markup dialect into structured
document trees and renders trees back to markup. It also keeps local
drafts and can suggest tags for them via a remote service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command. The build version is threaded through
// so the version command can print it.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}

	err := rootCmd.Execute()

	if draftStore != nil {
		if closeErr := draftStore.Close(); closeErr != nil {
			logger.Warn("closing draft store: %v", closeErr)
		}
	}
	return err
}

// initServices wires the document service from configuration. The draft
// store is opened lazily by commands that need it, so a plain parse never
// touches the database.
func initServices() error {
	if documentService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	appConfig = store.Config()
	logger.Debug("configuration loaded from %s", store.Path())

	documentService = services.NewDocumentService(parserOptions(appConfig))
	return nil
}

// ensureDraftService opens the draft store and builds the draft service
// on first use.
func ensureDraftService() error {
	if draftService != nil {
		return nil
	}

	store, err := sqlite.NewStore(appConfig.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening draft storage: %w", err)
	}
	draftStore = store
	logger.Debug("draft store open at %s", store.Path())

	draftService = services.NewDraftService(store, tagSuggester(appConfig), documentService)
	return nil
}

// parserOptions maps the parser section of the config onto mdx options.
func parserOptions(cfg file.Config) mdx.Options {
	opts := mdx.Options{
		MinImageWidth: cfg.Parser.MinImageWidth,
		MaxImageWidth: cfg.Parser.MaxImageWidth,
	}
	if opts.MaxImageWidth <= opts.MinImageWidth {
		return mdx.DefaultOptions()
	}
	return opts
}

// tagSuggester builds the HTTP suggester, or nil when no base URL is
// configured.
func tagSuggester(cfg file.Config) driven.TagSuggester {
	if cfg.Tags.BaseURL == "" {
		logger.Debug("tag suggestion disabled: no base URL configured")
		return nil
	}
	return httpapi.NewSuggester(httpapi.Config{
		BaseURL:           cfg.Tags.BaseURL,
		Timeout:           time.Duration(cfg.Tags.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Tags.RequestsPerSecond,
	})
}
