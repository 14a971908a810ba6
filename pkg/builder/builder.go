package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/buildlocale/pkg/bundle"
	"github.com/dmitrymomot/buildlocale/pkg/fragment"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
	"github.com/dmitrymomot/buildlocale/pkg/logger"
)

// Input is a classified input file.
type Input struct {
	Path   string
	Locale locale.Code
}

// Output describes a written bundle.
type Output struct {
	Locale   locale.Code
	Path     string
	Keys     int
	Size     int
	Checksum string
}

// Result summarizes a run.
type Result struct {
	RunID       string
	Dest        string
	Locales     []locale.Code
	Outputs     []Output
	Missing     []string
	Skipped     []string
	Manifest    string
	GeneratedAt time.Time
}

// Builder runs the aggregation pipeline over its collaborators.
type Builder struct {
	opts   Options
	lister Lister
	source Source
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives warnings and progress.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithClock overrides the time source used for manifests.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithRunIDGenerator overrides run identifier generation.
func WithRunIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// New creates a Builder.
func New(opts Options, lister Lister, source Source, sink Sink, options ...Option) *Builder {
	b := &Builder{
		opts:   opts,
		lister: lister,
		source: source,
		sink:   sink,
		logger: logger.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Run lists, classifies, aggregates and writes the bundles.
// A nil error with an empty Result.Outputs only happens in force mode.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID: b.newID(),
		Dest:  b.opts.Namer().Dir(),
	}
	ctx = logger.ContextWithRunID(ctx, res.RunID)

	if wl := b.opts.Whitelist(); len(wl) > 0 {
		b.logger.DebugContext(ctx, "using locale whitelist", logger.Locales(wl))
	}

	paths, err := b.lister.ListInputs(ctx)
	if err != nil {
		return res, errors.Join(ErrListInputs, err)
	}

	inputs, err := b.collect(ctx, paths, res)
	if err != nil {
		return res, err
	}

	bun, err := b.Aggregate(ctx, inputs)
	if err != nil {
		return res, err
	}

	if bun.Empty() {
		if b.opts.Force {
			b.logger.WarnContext(ctx, ErrNoOutput.Error())
			return res, nil
		}
		return res, ErrNoOutput
	}

	res.Locales = bun.Locales()
	res.GeneratedAt = b.now().UTC()
	for _, code := range res.Locales {
		out, err := b.write(ctx, bun, code)
		if err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, out)
	}

	if b.opts.Manifest != "" {
		if err := b.writeManifest(ctx, res); err != nil {
			return res, err
		}
	}

	b.logger.InfoContext(ctx, summary(res.Locales, res.Dest),
		logger.Locales(res.Locales),
		logger.Dest(res.Dest),
		logger.Count(len(res.Outputs)),
	)
	return res, nil
}

// Classify detects the locale of every existing path and applies the whitelist.
// Missing paths are reported and skipped.
func (b *Builder) Classify(ctx context.Context, paths []string) ([]Input, error) {
	return b.collect(ctx, paths, &Result{})
}

func (b *Builder) collect(ctx context.Context, paths []string, res *Result) ([]Input, error) {
	wl := b.opts.Whitelist()
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !b.source.Exists(ctx, p) {
			b.logger.WarnContext(ctx, fmt.Sprintf("Source file %q not found.", p),
				logger.Path(p),
				logger.Error(ErrInputNotFound),
			)
			res.Missing = append(res.Missing, p)
			continue
		}

		code, err := locale.Detect(p)
		if err != nil {
			if !b.opts.Force {
				return nil, err
			}
			b.logger.WarnContext(ctx, err.Error(), logger.Path(p))
			res.Skipped = append(res.Skipped, p)
			continue
		}

		if !wl.Allows(code) {
			b.logger.DebugContext(ctx, "ignoring locale", logger.Locale(code), logger.Path(p))
			res.Skipped = append(res.Skipped, p)
			continue
		}
		inputs = append(inputs, Input{Path: p, Locale: code})
	}
	return inputs, nil
}

// Aggregate reads every input in order and folds it into a bundle.
func (b *Builder) Aggregate(ctx context.Context, inputs []Input) (bundle.Bundle, error) {
	var bun bundle.Bundle
	tr := b.opts.Transformer()
	for _, in := range inputs {
		frag, err := b.readFragment(ctx, in.Path)
		if err != nil {
			return bundle.Bundle{}, err
		}
		if b.opts.Namespace {
			frag, err = tr.Apply(frag, in.Path, in.Locale)
			if err != nil {
				return bundle.Bundle{}, err
			}
		}
		bun = bun.Merge(in.Locale, frag)
	}
	return bun, nil
}

func (b *Builder) readFragment(ctx context.Context, p string) (*fragment.Object, error) {
	b.logger.DebugContext(ctx, "reading fragment", logger.Path(p))

	parser := fragment.NewParserForFile(p)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFragment, p, fragment.ErrUnsupportedFormat)
	}
	data, err := b.source.ReadFile(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFragment, p, err)
	}
	obj, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFragment, p, err)
	}
	return obj, nil
}

func (b *Builder) write(ctx context.Context, bun bundle.Bundle, code locale.Code) (Output, error) {
	doc, _ := bun.Get(code)
	data, err := fragment.Encode(doc)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", ErrWriteBundle, code, err)
	}

	p := b.opts.Namer().Path(code)
	b.logger.DebugContext(ctx, "writing bundle", logger.Locale(code), logger.Path(p))
	if err := b.sink.WriteFile(ctx, p, data); err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", ErrWriteBundle, p, err)
	}
	return Output{
		Locale:   code,
		Path:     p,
		Keys:     doc.Len(),
		Size:     len(data),
		Checksum: Checksum(data),
	}, nil
}

// summary renders the human readable completion line, e.g.
// `Locales generated: [en, fr] in "dist/".`
func summary(codes []locale.Code, dir string) string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = string(c)
	}
	return fmt.Sprintf("Locales generated: [%s] in %q.", strings.Join(names, ", "), dir)
}
