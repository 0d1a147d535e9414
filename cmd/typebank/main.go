// Command typebank is the operator CLI for the Typebank sentence bank.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/typebank-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driven/seed"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/services"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// version is stamped at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "typebank: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	appDir := filepath.Dir(configStore.Path())

	// Storage failure at startup is fatal: nothing can operate
	// without a consistent schema and index.
	store, err := sqlite.NewStore(configStore.GetString(driven.ConfigKeyDataDir))
	if err != nil {
		return fmt.Errorf("opening sentence store: %w", err)
	}
	defer store.Close()

	// The seed path comes from config, falling back to the app
	// directory. The core never probes; it gets one injected source.
	seedPath := configStore.GetString(driven.ConfigKeySeedPath)
	if seedPath == "" {
		seedPath = filepath.Join(appDir, "seed.json")
	}
	seedSource := seed.NewFileSource(seedPath)

	sentenceStore := store.SentenceStore()
	libraryService := services.NewLibraryService(sentenceStore, seedSource)

	// First run on an empty bank loads the starter content. Failure
	// to seed is never fatal; an empty bank still works.
	if _, err := libraryService.EnsureSeeded(context.Background()); err != nil {
		logger.Error("Startup seeding failed: %v", err)
	}

	cli.SetVersion(version)
	cli.SetConfigStore(configStore)
	cli.SetLibraryService(libraryService)
	cli.SetPracticeService(services.NewPracticeService(sentenceStore))
	cli.SetSearchService(services.NewSearchService(sentenceStore))
	cli.SetIndexService(services.NewIndexService(store.IndexAdmin()))

	return cli.Execute()
}
