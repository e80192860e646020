// Package anysticker converts raster images into messaging-platform sticker
// assets: long edge normalized to 512 pixels, alpha channel guaranteed, PNG
// or WebP output.  Animated sources keep only their first frame.
package anysticker

import (
	"context"
	"fmt"

	"github.com/anysticker/anysticker/batch"
	"github.com/anysticker/anysticker/config"
	"github.com/anysticker/anysticker/core"
	"github.com/anysticker/anysticker/decode"
	"github.com/anysticker/anysticker/encode"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/pipeline"
	"github.com/anysticker/anysticker/sniff"
)

// DefaultConfig returns the reference configuration.
func DefaultConfig() config.Config { return config.Default() }

// Processor is the primary entry point.  It is safe for concurrent use.
type Processor struct {
	cfg      config.Config
	sniffer  *sniff.Classifier
	static   *decode.Chain
	animated *decode.Chain
	registry *encode.Registry
	hooks    []core.Hook
	logger   core.Logger
}

// New creates a fully wired Processor: default sniffing policies, the
// static/animated extraction chains, and the PNG and WebP encoders.
func New(cfg config.Config) (*Processor, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	reg := encode.NewRegistry()
	reg.Register(encode.NewPNG())
	reg.Register(encode.NewWebP())

	return &Processor{
		cfg:     cfg,
		sniffer: sniff.NewClassifier(),
		static:  decode.NewChain(decode.NewStatic()),
		animated: decode.NewChain(
			decode.NewWebPAnimation(),
			decode.NewGIFFirstFrame(),
			decode.NewStatic(),
		),
		registry: reg,
	}, nil
}

// SetLogger attaches a structured logger.
func (p *Processor) SetLogger(l core.Logger) { p.logger = l }

// AddHook registers an observer for pipeline step events.
func (p *Processor) AddHook(h core.Hook) { p.hooks = append(p.hooks, h) }

// Classifier returns the animation classifier so callers can swap sniffing
// policies (e.g. sniff.WebPFeatureProbe for strict detection).
func (p *Processor) Classifier() *sniff.Classifier { return p.sniffer }

// OutputExtension returns the extension of the configured output format.
func (p *Processor) OutputExtension() string { return p.cfg.Format.Extension() }

// ProcessFile runs the full pipeline on a single file:
// sniff → extract → alpha → fit → encode.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath string) error {
	enc, ok := p.registry.For(p.cfg.Format)
	if !ok {
		return apperrors.New(apperrors.CategoryEncode, "process",
			fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFormat, p.cfg.Format))
	}

	chain := p.static
	if p.sniffer.IsAnimated(inputPath) {
		chain = p.animated
		if p.logger != nil {
			p.logger.Info("process.animated", "input", inputPath)
		}
	} else if p.logger != nil {
		p.logger.Info("process.image", "input", inputPath)
	}

	pl := pipeline.New().Use(
		&pipeline.ExtractStep{Path: inputPath, Chain: chain},
		&pipeline.AlphaStep{},
		&pipeline.FitStep{},
		&pipeline.EncodeStep{Encoder: enc, Path: outputPath, Opts: p.cfg.Options()},
	)
	for _, h := range p.hooks {
		pl.AddHook(h)
	}

	_, _, err := pl.Run(ctx, nil)
	return err
}

// ProcessDirectory runs the pipeline over every pattern-matching regular file
// directly inside inputDir, writing outputs into outputDir.  It returns one
// ProcessingResult per matched file in lexicographic input-path order, or a
// single failed record when the output directory cannot be created or
// nothing matches.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) []core.ProcessingResult {
	o := batch.New(p.ProcessFile, p.OutputExtension(), p.cfg.Pattern, p.cfg.WorkerCount)
	if p.logger != nil {
		o.SetLogger(p.logger)
	}
	return o.Run(ctx, inputDir, outputDir)
}
