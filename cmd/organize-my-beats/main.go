package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"organizemybeats/internal/config"
	"organizemybeats/internal/metadata"
	"organizemybeats/internal/model"
	"organizemybeats/internal/organizer"
	"organizemybeats/internal/report"
	"organizemybeats/internal/tui"
)

func main() {
	// Command line flags
	var (
		cliFlag     = flag.Bool("cli", false, "Run in command-line mode instead of the interactive TUI")
		overwrite   bool
		unknownYear bool
		verbose     bool
		stats       bool
		reportFlag  = flag.Bool("report", false, "Write a JSON batch report under <destination>/reports")
		workersFlag = flag.Int("workers", 0, "Concurrent file processors (default 1)")
		configFlag  = flag.String("config", "", "Path to config file")
		infoFlag    = flag.String("info", "", "Print metadata for a single audio file and exit")
	)
	flag.BoolVar(&overwrite, "o", false, "Overwrite existing files in destination")
	flag.BoolVar(&overwrite, "overwrite", false, "Overwrite existing files in destination")
	flag.BoolVar(&unknownYear, "u", false, "Create 'Unknown Year' folder for files without year metadata")
	flag.BoolVar(&unknownYear, "unknown-year", false, "Create 'Unknown Year' folder for files without year metadata")
	flag.BoolVar(&verbose, "v", false, "Show detailed progress information")
	flag.BoolVar(&verbose, "verbose", false, "Show detailed progress information")
	flag.BoolVar(&stats, "s", false, "Show statistics after completion")
	flag.BoolVar(&stats, "stats", false, "Show statistics after completion")

	flag.Parse()

	if *infoFlag != "" {
		if err := printFileInfo(*infoFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Interactive mode unless --cli
	if !*cliFlag {
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 2 {
		fmt.Println("Organize My Beats - Sort music files into year folders")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  organize-my-beats --cli <source> <destination> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, run without --cli")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	source, destination := flag.Arg(0), flag.Arg(1)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	cfg := settings.ToConfig(source, destination)
	if overwrite {
		cfg.Overwrite = true
	}
	if unknownYear {
		cfg.UnknownYear = true
	}
	if *workersFlag > 0 {
		cfg.Workers = *workersFlag
	}
	if settings.Verbose {
		verbose = true
	}
	showStats := stats || verbose || settings.ShowStats
	writeReport := *reportFlag || settings.WriteReport

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	engine := organizer.NewEngine(cfg, func(event organizer.ProgressEvent) {
		if event.Level == organizer.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case organizer.LevelError:
			prefix = "❌ "
		case organizer.LevelWarning:
			prefix = "⚠️  "
		case organizer.LevelSuccess:
			prefix = "✅ "
		case organizer.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🚀 Starting organization process...")
	fmt.Printf("📂 Source: %s\n", cfg.Source)
	fmt.Printf("📁 Destination: %s\n", cfg.Destination)
	fmt.Println()

	result, err := engine.Organize(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if showStats {
		printStats(result)
	}

	if writeReport {
		rep := report.Build(cfg, result)
		path, err := rep.Write(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		} else {
			fmt.Printf("\n📝 Report written to %s\n", path)
		}
	}

	if result.Aborted {
		os.Exit(130)
	}
}

func printStats(result *model.Result) {
	s := result.Stats
	fmt.Println("\n📊 Statistics:")
	fmt.Printf("   - Total files processed: %d\n", s.Total)
	fmt.Printf("   - Files copied: %d\n", s.Copied)
	fmt.Printf("   - Files skipped: %d\n", s.Skipped)
	fmt.Printf("   - Files without year metadata: %d\n", s.NoYear)
	fmt.Printf("   - Errors encountered: %d\n", s.Errors)

	if len(s.Years) > 0 {
		fmt.Println("\n📅 Files by year:")
		for _, year := range sortedYears(s.Years) {
			fmt.Printf("   - %s: %d files\n", year, s.Years[year])
		}
	}
}

func printFileInfo(path string) error {
	info, err := metadata.NewExtractor().FileInfo(path)
	if err != nil {
		return err
	}

	fmt.Printf("Path:     %s\n", info.Path)
	fmt.Printf("Format:   %s\n", info.Format)
	fmt.Printf("Size:     %.2f MB\n", float64(info.Size)/1024/1024)
	fmt.Printf("Modified: %s\n", info.Modified.Format("2006-01-02 15:04:05"))
	fmt.Printf("Title:    %s\n", info.Title)
	fmt.Printf("Artist:   %s\n", info.Artist)
	fmt.Printf("Album:    %s\n", info.Album)
	fmt.Printf("Genre:    %s\n", info.Genre)
	if info.Year != model.UnknownYear {
		fmt.Printf("Year:     %d\n", info.Year)
	} else {
		fmt.Println("Year:     unknown")
	}
	return nil
}

// Newest first, Unknown Year last.
func sortedYears(years map[string]int) []string {
	keys := make([]string, 0, len(years))
	for year := range years {
		keys = append(keys, year)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == model.UnknownYearFolder {
			return false
		}
		if keys[j] == model.UnknownYearFolder {
			return true
		}
		return keys[i] > keys[j]
	})
	return keys
}
