package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/anysticker/anysticker"
	"github.com/anysticker/anysticker/core"
	"github.com/anysticker/anysticker/hooks"
)

var command = &cli.Command{
	Name:      "anysticker",
	Usage:     "Convert images into 512px sticker assets (PNG or WebP)",
	ArgsUsage: "<input file or directory>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "Output file or directory path",
			Aliases: []string{"o"},
			Value:   "output",
		},
		&cli.BoolFlag{
			Name:  "webp",
			Usage: "Output in WebP format (default is PNG)",
		},
		&cli.IntFlag{
			Name:    "quality",
			Usage:   "Quality for WebP output (1-100)",
			Aliases: []string{"q"},
			Value:   100,
		},
		&cli.StringFlag{
			Name:    "pattern",
			Usage:   "File matching pattern, e.g. *.jpg (directory mode only)",
			Aliases: []string{"p"},
			Value:   "*",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of files processed concurrently in directory mode",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	},
	Action: action,
}

func action(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		cli.ShowAppHelpAndExit(c, 0)
	}
	inputPath := args[0]

	info, err := os.Stat(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot read input path: %v", err), 1)
	}
	batchMode := info.IsDir()

	cfg := anysticker.DefaultConfig()
	if c.Bool("webp") {
		cfg.Format = core.FormatWebP
	}
	cfg.Quality = clamp(int(c.Int("quality")), 1, 100)
	cfg.Pattern = c.String("pattern")
	cfg.WorkerCount = int(c.Int("workers"))

	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
		cfg.LogLevel = "debug"
	}
	logger := hooks.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	proc, err := anysticker.New(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	proc.SetLogger(logger)
	proc.AddHook(hooks.NewLoggingHook(logger))

	outputPath := resolveOutputPath(c.String("output"), cfg.Format, batchMode)

	if batchMode {
		runBatch(ctx, proc, inputPath, outputPath)
		// Partial failure is a reported outcome, not a program fault.
		return nil
	}

	if err := proc.ProcessFile(ctx, inputPath, outputPath); err != nil {
		return cli.Exit(fmt.Sprintf("processing failed: %v", err), 1)
	}
	fmt.Printf("Processing completed! Output file: %s\n", outputPath)
	return nil
}

func runBatch(ctx context.Context, proc *anysticker.Processor, inputDir, outputDir string) {
	results := proc.ProcessDirectory(ctx, inputDir, outputDir)

	success := 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			fmt.Fprintf(os.Stderr, "Processing failed: %s - %s\n", r.InputPath, r.Error)
		}
	}
	fmt.Printf("\nProcessing completed!\nTotal: %d files\nSuccess: %d files\nFailed: %d files\nOutput directory: %s\n",
		len(results), success, len(results)-success, outputDir)
}

// resolveOutputPath applies the original defaulting rules: in single-file
// mode an output path without an extension gains the active format's
// extension; directory mode leaves the path untouched.
func resolveOutputPath(output string, format core.Format, batchMode bool) string {
	if batchMode {
		return output
	}
	if filepath.Ext(output) == "" {
		return output + format.Extension()
	}
	return output
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	if err := command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
