// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/docker/go-units"
	"github.com/hashicorp/go-decompress"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
)

// CLI are the cli parameters for go-decompress binary
type CLI struct {
	Archive           string           `arg:"" name:"archive" help:"Path to archive. (\"-\" for STDIN)"`
	Destination       string           `arg:"" name:"destination" optional:"" help:"Output directory. Required unless --list is set."`
	Concurrency       int              `optional:"" default:"-1" help:"Maximum of entries written at the same time. (no limit: -1)"`
	Digest            bool             `short:"d" optional:"" help:"Print the sha256 digest of every file when listing."`
	Format            []string         `short:"f" optional:"" help:"Archive formats to try (7z, rar, tar, tar.bz2, tar.gz, tar.lz4, tar.sz, tar.xz, tar.zst, tar.zz, zip). Defaults to tar, tar.bz2, tar.gz and zip."`
	Include           []string         `short:"i" optional:"" help:"Only extract entries matching one of these patterns."`
	List              bool             `short:"l" help:"List entries instead of extracting them."`
	MaxExtractionSize int64            `optional:"" default:"1073741824" help:"Maximum decoded size that is allowed (in bytes). (disable check: -1)"`
	MaxFiles          int64            `optional:"" default:"100000" help:"Maximum entries in an archive. (disable check: -1)"`
	MaxInputSize      int64            `optional:"" default:"1073741824" help:"Maximum input size that is allowed (in bytes). (disable check: -1)"`
	MaxExtractionTime int64            `optional:"" default:"60" help:"Maximum time that an extraction should take (in seconds). (disable check: -1)"`
	Metrics           bool             `short:"M" optional:"" default:"false" help:"Print metrics to log after extraction."`
	Prefix            string           `short:"p" optional:"" help:"Prepend to the path of every entry."`
	Strip             int              `short:"s" optional:"" default:"0" help:"Remove the given number of leading path segments."`
	Verbose           bool             `short:"v" optional:"" help:"Verbose logging."`
	Version           kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into go-decompress as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("A safe archive extraction utility"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if cli.MaxExtractionTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second*time.Duration(cli.MaxExtractionTime))
		defer cancel()
	}

	if err := cli.execute(ctx, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("extraction failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

// execute performs the extraction, or the listing, described by the cli parameters.
func (cli *CLI) execute(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if !cli.List && len(cli.Destination) == 0 {
		return errors.New("destination is required unless --list is set")
	}

	cfg, err := cli.config(logger)
	if err != nil {
		return err
	}

	// open archive
	var archive io.Reader
	if cli.Archive == "-" {
		archive = bufio.NewReader(stdin)
	} else {
		f, err := os.Open(cli.Archive)
		if err != nil {
			return errors.Wrap(err, "opening archive failed")
		}
		defer f.Close()
		archive = f
	}

	output := cli.Destination
	if cli.List {
		output = ""
	}

	entries, err := decompress.Extract(ctx, archive, output, cfg)
	if err != nil {
		return errors.Wrap(err, "error during extraction")
	}

	if cli.List {
		for _, e := range entries {
			if cli.Digest {
				fmt.Fprintf(stdout, "%-9s %s %8d %-71s %s\n", e.Type, e.Mode.Perm(), len(e.Data), entryDigest(e), e.Path)
				continue
			}
			fmt.Fprintf(stdout, "%-9s %s %8d %s\n", e.Type, e.Mode.Perm(), len(e.Data), e.Path)
		}
	}
	return nil
}

// entryDigest returns the sha256 digest of a file's content, or "-" for other entries.
func entryDigest(e decompress.Entry) string {
	if e.Type != decompress.TypeFile {
		return "-"
	}
	return digest.FromBytes(e.Data).String()
}

// config translates the cli parameters into a decompress.Config.
func (cli *CLI) config(logger *slog.Logger) (*decompress.Config, error) {

	// setup metrics hook
	metricsToLog := func(ctx context.Context, td *decompress.TelemetryData) {
		if cli.Metrics {
			logger.Info("extraction finished", "size", units.HumanSize(float64(td.ExtractionSize)), "metrics", td)
		}
	}

	opts := []decompress.ConfigOption{
		decompress.WithConcurrency(cli.Concurrency),
		decompress.WithLogger(logger),
		decompress.WithMaxExtractionSize(cli.MaxExtractionSize),
		decompress.WithMaxFiles(cli.MaxFiles),
		decompress.WithMaxInputSize(cli.MaxInputSize),
		decompress.WithStrip(cli.Strip),
		decompress.WithTelemetryHook(metricsToLog),
	}

	if len(cli.Format) > 0 {
		decoders, err := selectDecoders(cli.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, decompress.WithDecoders(decoders...))
	}

	if len(cli.Include) > 0 {
		opts = append(opts, decompress.WithFilter(decompress.MatchPatterns(cli.Include...)))
	}

	if len(cli.Prefix) > 0 {
		prefix := cli.Prefix
		opts = append(opts, decompress.WithMap(func(e decompress.Entry) decompress.Entry {
			e.Path = prefix + e.Path
			return e
		}))
	}

	return decompress.NewConfig(opts...), nil
}

// selectDecoders returns the built-in decoders for the given format names, in order.
func selectDecoders(formats []string) ([]decompress.Decoder, error) {
	available := decompress.AvailableDecoders()
	var decoders []decompress.Decoder
	for _, f := range formats {
		d, ok := available[strings.ToLower(f)]
		if !ok {
			names := make([]string, 0, len(available))
			for name := range available {
				names = append(names, name)
			}
			sort.Strings(names)
			return nil, errors.Errorf("unknown format %q (available: %s)", f, strings.Join(names, ", "))
		}
		decoders = append(decoders, d)
	}
	return decoders, nil
}
