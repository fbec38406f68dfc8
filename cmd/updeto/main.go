// Command updeto checks whether an app published on the App Store has a
// newer version than the one installed. It prints a human-readable line or a
// JSON envelope and sets the exit code accordingly: 0 when up to date (or no
// listing was found), 1 when an update is available, 2 on lookup errors.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	updeto "github.com/manasv/updeto-go"
	"github.com/manasv/updeto-go/appstore"
	"github.com/manasv/updeto-go/internal/config"
	"github.com/manasv/updeto-go/internal/logger"
	"github.com/manasv/updeto-go/internal/version"
)

var (
	configFile       = flag.String("config", "", "Path to configuration file")
	bundleID         = flag.String("bundle-id", "", "Bundle identifier to look up")
	installedVersion = flag.String("app-version", "", "Installed version to compare against the store version")
	country          = flag.String("country", "", "Storefront country code (e.g. US)")
	timeout          = flag.Duration("timeout", 0, "Per-attempt request timeout")
	retries          = flag.Int("retries", -1, "Retry attempts after the first for transient failures")
	jsonOutput       = flag.Bool("json", false, "Print the result as JSON")
	showVersion      = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetInfo().String())
		return
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(2)
	}
	applyFlags(cfg)

	// Initialize structured logging
	log, closer, err := logger.Setup(cfg.Logging, version.GetInfo())
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(2)
	}
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(log)

	provider, err := appstore.New(cfg.Lookup.BundleID, cfg.Lookup.InstalledVersion,
		appstore.WithCountry(cfg.Lookup.Country),
		appstore.WithTimeout(cfg.Lookup.Timeout),
		appstore.WithRetryCount(cfg.Lookup.RetryCount),
		appstore.WithRetryDelay(cfg.Lookup.RetryDelay),
		appstore.WithLogger(log),
	)
	if err != nil {
		slog.Error("Invalid lookup parameters", "error", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info, err := updeto.New(provider).CheckInfoDetailed(ctx)
	if err != nil {
		slog.Error("Lookup failed", "bundle_id", cfg.Lookup.BundleID, "error", err)
		os.Exit(2)
	}

	if err := printResult(info, *jsonOutput); err != nil {
		slog.Error("Failed to print result", "error", err)
		os.Exit(2)
	}
	if info.Result == updeto.Outdated {
		os.Exit(1)
	}
}

// applyFlags overlays command-line flags on top of the loaded configuration.
// Flags win over both the config file and the environment.
func applyFlags(cfg *config.Config) {
	if *bundleID != "" {
		cfg.Lookup.BundleID = *bundleID
	}
	if *installedVersion != "" {
		cfg.Lookup.InstalledVersion = *installedVersion
	}
	if *country != "" {
		cfg.Lookup.Country = *country
	}
	if *timeout > 0 {
		cfg.Lookup.Timeout = *timeout
	}
	if *retries >= 0 {
		cfg.Lookup.RetryCount = *retries
	}
}

func printResult(info *updeto.UpdateInfo, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	switch info.Result {
	case updeto.Updated:
		fmt.Printf("%s %s is up to date\n", info.BundleID, info.InstalledVersion)
	case updeto.Outdated:
		fmt.Printf("%s %s is available (installed: %s)\n", info.BundleID, info.StoreVersion, info.InstalledVersion)
		if info.URL != "" {
			fmt.Printf("open %s to update\n", info.URL)
		}
	case updeto.DevelopmentOrBeta:
		fmt.Printf("%s %s is ahead of the store version %s\n", info.BundleID, info.InstalledVersion, info.StoreVersion)
	default:
		fmt.Printf("no App Store listing found for %s\n", info.BundleID)
	}
	return nil
}
