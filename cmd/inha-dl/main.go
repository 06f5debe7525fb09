package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pcouy/inha-downloader/internal/config"
	"github.com/pcouy/inha-downloader/internal/download"
	"github.com/pcouy/inha-downloader/internal/ranges"
	"github.com/schollz/progressbar/v3"
)

func main() {
	// Command line flags
	var (
		outputFlag   string
		imagesFlag   string
		configFlag   string
		manifestFlag bool
		resizeFlag   bool
		noSkipFlag   bool
		verboseFlag  bool
		dryRunFlag   bool
	)
	flag.StringVar(&outputFlag, "o", "", "Output directory (defaults to the album title)")
	flag.StringVar(&outputFlag, "output-dir", "", "Output directory (defaults to the album title)")
	flag.StringVar(&imagesFlag, "i", "", "Page range(s) to download, e.g. '1-3,5,7,10-15' (default: all pages)")
	flag.StringVar(&imagesFlag, "images", "", "Page range(s) to download, e.g. '1-3,5,7,10-15' (default: all pages)")
	flag.StringVar(&configFlag, "config", "", "Path to config file")
	flag.BoolVar(&manifestFlag, "manifest", false, "Write a manifest.json next to the images")
	flag.BoolVar(&resizeFlag, "resize", false, "Resize images to the configured maximum size")
	flag.BoolVar(&noSkipFlag, "no-skip", false, "Re-download pages even if the file already exists")
	flag.BoolVar(&verboseFlag, "verbose", false, "Show verbose output")
	flag.BoolVar(&dryRunFlag, "dry-run", false, "Parse the album and list pages without downloading")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "INHA Album Downloader - download page scans from bibliotheque-numerique.inha.fr")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  inha-dl [options] <album_url>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The album URL looks like https://bibliotheque-numerique.inha.fr/viewer/12148")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: inha-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	albumURL := flag.Arg(0)

	// Reject a malformed range spec before touching the network. Bounds
	// are re-checked against the real page count after the album loads.
	if imagesFlag != "" {
		if _, err := ranges.Parse(imagesFlag, math.MaxInt); errors.Is(err, ranges.ErrInvalidSpec) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Load config
	settings := config.DefaultSettings()
	if configFlag != "" {
		var err error
		settings, err = config.Load(configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if outputFlag != "" {
		settings.OutputDir = outputFlag
	}
	if manifestFlag {
		settings.WriteManifest = true
	}
	if resizeFlag {
		settings.ResizeImages = true
	}
	if noSkipFlag {
		settings.SkipExisting = false
	}

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

	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case download.LevelError:
			prefix = "✗ "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "✓ "
		case download.LevelInfo:
			prefix = ""
		}

		fmt.Println(prefix + event.Message)
	}, newByteBar())

	if err := manager.Initialize(ctx, albumURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var pages []int
	if imagesFlag == "" {
		pages = ranges.Full(manager.PageCount())
	} else {
		var err error
		pages, err = ranges.Parse(imagesFlag, manager.PageCount())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if dryRunFlag {
		fmt.Printf("\n[Dry run] would download %d page(s):\n", len(pages))
		for _, page := range manager.Pages(pages) {
			fmt.Printf("  %s\n", page.Path)
		}
		return
	}

	if err := manager.DownloadPages(ctx, pages); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newByteBar returns a PageEvent callback rendering a live byte counter for
// the page currently downloading.
//
// The library's image endpoint sends no Content-Length, so the bar runs in
// indeterminate mode and is cleared once the page finishes; the manager's
// per-page progress line then reports the final byte count.
func newByteBar() func(download.PageEvent) {
	var bar *progressbar.ProgressBar
	var current int
	var last int64

	return func(event download.PageEvent) {
		if event.Skipped {
			return
		}

		if bar == nil || event.Index != current {
			bar = progressbar.NewOptions64(-1,
				progressbar.OptionSetDescription(filepath.Base(event.Path)),
				progressbar.OptionShowBytes(true),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionSetWriter(os.Stderr),
			)
			current = event.Index
			last = 0
		}

		if event.Done {
			bar.Finish()
			bar = nil
			return
		}

		bar.Add64(event.Written - last)
		last = event.Written
	}
}
