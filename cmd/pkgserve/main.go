// Copyright 2026 The PkgServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the package-name completion engine CLI and server.

PkgServe ranks package-name completions for shell TAB handlers across
pacman, AUR, flatpak, snap, apt and dnf datasets. Candidates come from a
Patricia-trie prefix index plus abbreviation and substring matching, and
are ranked by match strength, description hits, usage frequency, recency,
and source priority.

# Usage

One-shot completion for shell integration (bare names, one per line):

	pkgserve -q vsc
	pkgserve -q fire -ctx remove -limit 5

Record a confirmed install/remove so future completions rank it higher:

	pkgserve -record firefox

Purpose-based suggestions from free text:

	pkgserve -purpose "edit videos"

Interactive mode for testing the ranking:

	pkgserve -c -ctx install -limit 10

With no mode flag, pkgserve starts a msgpack IPC server on stdin/stdout
for long-lived integrations (editors, completion daemons):

	{"id": "req1", "q": "vsc", "ctx": "install", "l": 10}
	{"id": "req1", "names": ["visual-studio-code", "vscodium"], "c": 2, "t": 145}

# Configuration

Runtime configuration lives in a TOML file that is created with defaults on
first run:

	[complete]
	default_limit = 10
	recency_horizon_days = 30
	write_through = true

	[paths]
	dataset = "/path/to/packages.toml"
	aliases = "/path/to/aliases.toml"

The dataset file is produced by the package-manager backend adapters; when
it is absent the builtin package list is used so completion works out of
the box. The usage cache defaults to $XDG_CACHE_HOME/pkgserve/usage.bin
and degrades to an empty store when missing or corrupt.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/archpkg/pkgserve/internal/cli"
	"github.com/archpkg/pkgserve/pkg/alias"
	"github.com/archpkg/pkgserve/pkg/complete"
	"github.com/archpkg/pkgserve/pkg/config"
	"github.com/archpkg/pkgserve/pkg/dataset"
	"github.com/archpkg/pkgserve/pkg/pkgindex"
	"github.com/archpkg/pkgserve/pkg/purpose"
	"github.com/archpkg/pkgserve/pkg/server"
	"github.com/archpkg/pkgserve/pkg/usage"
)

const (
	Version = "0.3.0"
	AppName = "pkgserve"
	gh      = "https://github.com/archpkg/pkgserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the engine together and dispatches to one of the run modes.
// It carries no completion logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Custom config file path")
	query := flag.String("q", "", "One-shot completion query (prints bare names for shell integration)")
	ctxName := flag.String("ctx", "install", "Completion context: install, remove, search, suggest")
	limit := flag.Int("limit", 0, "Number of completions to return (default from config)")
	record := flag.String("record", "", "Record a confirmed install/remove for the given package")
	purposeQuery := flag.String("purpose", "", "Suggest applications for a free-text purpose")
	cliMode := flag.Bool("c", false, "Run interactive mode -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Config load failed: %v. Using defaults.", err)
		cfg = config.DefaultConfig()
	}
	log.Debugf("Active config: %s", activePath)

	if *purposeQuery != "" {
		runPurpose(cfg, *purposeQuery)
		return
	}

	svc := buildService(cfg)

	if *record != "" {
		runRecord(cfg, svc, *record)
		return
	}

	resultLimit := *limit
	if resultLimit == 0 {
		resultLimit = cfg.Complete.DefaultLimit
	}

	if *query != "" {
		runComplete(svc, *query, *ctxName, resultLimit)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(svc, complete.ParseContext(*ctxName), resultLimit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC server")
	srv := server.NewServer(svc, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildService loads the dataset, aliases, and usage cache, degrading to
// builtins or empty state on every failure path: completion must always
// come up, even with nothing but the compiled-in package list.
func buildService(cfg *config.Config) *complete.Service {
	entries := dataset.Builtin()
	if cfg.Paths.Dataset != "" {
		loaded, err := dataset.LoadFile(cfg.Paths.Dataset)
		if err != nil {
			log.Warnf("Dataset load failed, falling back to builtin: %v", err)
		} else {
			entries = loaded
		}
	}

	index, conflicts := pkgindex.Build(entries)
	for _, c := range conflicts {
		log.Warnf("Duplicate dataset record %s (%s), later record kept", c.Name, c.Source)
	}
	log.Debugf("Indexed %d packages", index.Len())

	aliases := alias.Default()
	if cfg.Paths.Aliases != "" {
		if err := aliases.MergeFile(cfg.Paths.Aliases); err != nil {
			log.Warnf("Alias file ignored: %v", err)
		}
	}

	store := usage.NewStore()
	if path := cfg.UsageCachePath(); path != "" {
		loaded, err := usage.Load(path)
		if err != nil {
			log.Warnf("Usage cache unreadable, starting empty: %v", err)
		}
		store = loaded
	}

	return complete.NewService(index, aliases, store, complete.Options{
		RecencyHorizon: time.Duration(cfg.Complete.RecencyHorizonDays) * 24 * time.Hour,
	})
}

// runComplete prints bare names, one per line, for shell completion.
func runComplete(svc *complete.Service, query, ctxName string, limit int) {
	names, err := svc.Complete(query, complete.ParseContext(ctxName), limit)
	if err != nil {
		log.Fatalf("Completion failed: %v", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

// runRecord is the usage-recording hook the install/remove wrappers invoke
// after an action actually succeeds.
func runRecord(cfg *config.Config, svc *complete.Service, name string) {
	svc.RecordUsage(name)
	path := cfg.UsageCachePath()
	if path == "" {
		return
	}
	if err := svc.Store().Flush(path); err != nil {
		// The cache is an optimization, not a source of truth.
		log.Warnf("Failed to persist usage cache: %v", err)
	}
}

func runPurpose(cfg *config.Config, query string) {
	if cfg.Paths.PurposeMap == "" {
		log.Warn("No purpose_map configured, nothing to suggest")
		return
	}
	suggester, err := purpose.LoadFile(cfg.Paths.PurposeMap)
	if err != nil {
		log.Warnf("Purpose mapping unavailable: %v", err)
		return
	}
	for _, match := range suggester.Find(query) {
		fmt.Printf("%s:\n", match.Purpose)
		for _, app := range match.Apps {
			fmt.Printf("  %s\n", app)
		}
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ PkgServe ] Ranked package-name completions for your shell!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
