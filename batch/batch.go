// Package batch drives the per-file sticker pipeline over a directory.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// FileProcessor runs the whole single-file pipeline for one input/output pair.
type FileProcessor func(ctx context.Context, inputPath, outputPath string) error

// Orchestrator fans the per-file pipeline out over a directory and folds the
// outcomes into one ProcessingResult per matched file.  Per-file failures
// never abort the batch; directory-level failures short-circuit with a single
// synthetic record.
type Orchestrator struct {
	process   FileProcessor
	outputExt string
	pattern   string
	workers   int
	logger    core.Logger
}

// New creates an Orchestrator.  outputExt is the active output format's
// extension (dot included); workers below 1 is treated as 1, which keeps the
// reference strictly-sequential behavior.
func New(process FileProcessor, outputExt, pattern string, workers int) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		process:   process,
		outputExt: outputExt,
		pattern:   pattern,
		workers:   workers,
	}
}

// SetLogger attaches a structured logger.
func (o *Orchestrator) SetLogger(l core.Logger) { o.logger = l }

// Run processes every matching regular file directly inside inputDir and
// returns one result per file, ordered lexicographically by input path.
func (o *Orchestrator) Run(ctx context.Context, inputDir, outputDir string) []core.ProcessingResult {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return []core.ProcessingResult{{
			InputPath:  inputDir,
			OutputPath: outputDir,
			Error:      apperrors.Wrap(apperrors.CategoryIO, "batch.mkdir", err).Error(),
		}}
	}

	matches, err := ListMatches(inputDir, o.pattern)
	if err != nil {
		return []core.ProcessingResult{{
			InputPath:  inputDir,
			OutputPath: outputDir,
			Error:      err.Error(),
		}}
	}
	if len(matches) == 0 {
		return []core.ProcessingResult{{
			InputPath:  inputDir,
			OutputPath: outputDir,
			Error: apperrors.New(apperrors.CategoryMatch, "batch.list",
				fmt.Errorf("%w: %q in %s", apperrors.ErrNoMatchingFiles, o.pattern, inputDir)).Error(),
		}}
	}

	results := make([]core.ProcessingResult, len(matches))
	if o.workers == 1 {
		for i, m := range matches {
			results[i] = o.processOne(ctx, m, outputDir)
		}
	} else {
		o.runPool(ctx, matches, outputDir, results)
	}

	// Pool workers fill the slice by index, so order is already positional;
	// re-sort anyway so callers always observe deterministic path order.
	sort.Slice(results, func(i, j int) bool { return results[i].InputPath < results[j].InputPath })
	return results
}

func (o *Orchestrator) runPool(ctx context.Context, matches []core.FileMatch, outputDir string, results []core.ProcessingResult) {
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = o.processOne(ctx, matches[i], outputDir)
			}
		}()
	}
	for i := range matches {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (o *Orchestrator) processOne(ctx context.Context, m core.FileMatch, outputDir string) core.ProcessingResult {
	outputPath := OutputPath(m.Path, outputDir, o.outputExt)
	result := core.ProcessingResult{InputPath: m.Path, OutputPath: outputPath}

	if o.logger != nil {
		o.logger.Info("batch.file.start", "input", m.Path, "output", outputPath)
	}
	if err := o.process(ctx, m.Path, outputPath); err != nil {
		result.Error = err.Error()
		if o.logger != nil {
			o.logger.Error("batch.file.failed", "input", m.Path, "error", err.Error())
		}
		return result
	}
	result.Success = true
	return result
}

// OutputPath maps an input file to its destination: the input's base name
// with the extension replaced by outputExt, inside outputDir.
func OutputPath(inputPath, outputDir, outputExt string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+outputExt)
}

// ListMatches enumerates regular files directly inside dir (no recursion)
// whose names match pattern, sorted lexicographically by full path.
func ListMatches(dir, pattern string) ([]core.FileMatch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryIO, "batch.list", err)
	}

	var matches []core.FileMatch
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !MatchesPattern(e.Name(), pattern) {
			continue
		}
		matches = append(matches, core.FileMatch{Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Path < matches[j].Path })
	return matches, nil
}

// MatchesPattern implements the two supported glob forms: "*" matches every
// file, "*.ext" matches on extension case-insensitively.  Anything else
// matches nothing.
func MatchesPattern(name, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if len(pattern) > 2 && strings.HasPrefix(pattern, "*.") {
		return strings.EqualFold(filepath.Ext(name), pattern[1:])
	}
	return false
}
