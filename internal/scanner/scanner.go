// Package scanner orchestrates URL extraction across a file set under a
// bounded concurrency cap and aggregates the per-file results.
package scanner

import (
	"bytes"
	"context"
	"os"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/urlscout/urlscout-go/internal/common/monitor"
	"github.com/urlscout/urlscout-go/internal/config"
	"github.com/urlscout/urlscout-go/internal/extract"
	"github.com/urlscout/urlscout-go/internal/language"
	"github.com/urlscout/urlscout-go/internal/pool"
)

// Options configures a Scanner instance.
type Options struct {
	Concurrency     int
	IncludeComments bool
	EnableFallback  bool
	IncludeNonFQDN  bool
	ContextLines    int
	FailFast        bool
	IgnoreDomains   []string
	KeepEmptyFiles  bool
	PoolCapacity    int
	Schemes         []string

	// Progress, when set, receives per-file completion counts for
	// periodic progress logging.
	Progress *monitor.Monitor
}

// Scanner runs the per-file pipeline: resolve language, obtain a pooled
// parser (or fall back to raw-text scanning), extract candidate spans,
// match URLs, and filter the aggregate.
type Scanner struct {
	opts     Options
	registry *language.Registry
	pool     *pool.Pool
	matcher  *extract.Matcher
	logger   *zap.Logger
}

// New validates the options and creates a Scanner. Invalid options are
// rejected here, never silently defaulted.
func New(opts Options, registry *language.Registry, logger *zap.Logger) (*Scanner, error) {
	if opts.Concurrency < 1 {
		return nil, config.ErrInvalidConcurrency
	}
	if opts.ContextLines < 0 {
		return nil, config.ErrNegativeContext
	}
	if len(opts.Schemes) == 0 {
		return nil, config.ErrNoSchemes
	}
	if opts.PoolCapacity == 0 {
		opts.PoolCapacity = pool.DefaultCapacity
	}
	if opts.PoolCapacity < 1 {
		return nil, config.ErrInvalidPoolCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{
		opts:     opts,
		registry: registry,
		pool:     pool.New(opts.PoolCapacity, logger),
		matcher:  extract.NewMatcher(opts.Schemes, opts.IncludeNonFQDN),
		logger:   logger,
	}, nil
}

// Close releases all pooled parsers.
func (s *Scanner) Close() {
	s.pool.Clear()
}

// Scan processes the given files, admitting at most Concurrency of them
// simultaneously. Per-file failures are recorded in the outcome unless
// fail-fast is set, in which case the first failure is returned once
// already-admitted files settle.
func (s *Scanner) Scan(ctx context.Context, files []string) (*Outcome, error) {
	results := make([]*FileResult, len(files))
	var (
		failures []FileError
		failMu   sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, path := range files {
		// Under fail-fast a recorded failure cancels gctx; stop
		// admitting but let in-flight files run to completion.
		if gctx.Err() != nil {
			break
		}

		i, path := i, path
		g.Go(func() error {
			res, ferr := s.scanFile(ctx, path)
			if ferr != nil {
				s.logger.Warn("file scan failed",
					zap.String("path", path),
					zap.String("stage", string(ferr.Stage)),
					zap.Error(ferr.Err))
				failMu.Lock()
				failures = append(failures, *ferr)
				failMu.Unlock()
				if s.opts.FailFast {
					return ferr
				}
				return nil
			}

			results[i] = res
			if s.opts.Progress != nil {
				s.opts.Progress.RecordFile(len(res.Matches))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.assemble(results, failures), nil
}

// scanFile runs the pipeline for one file. The caller context, not the
// group context, bounds the parse so in-flight files settle normally
// even when a sibling failure is about to abort the batch.
func (s *Scanner) scanFile(ctx context.Context, path string) (*FileResult, *FileError) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, newFileError(path, StageRead, err)
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return nil, newFileError(path, StageRead, ErrUndecodable)
	}

	candidates, ferr := s.candidates(ctx, path, content)
	if ferr != nil {
		return nil, ferr
	}

	idx := extract.NewLineIndex(content)
	matches := extract.MatchCandidates(candidates, s.matcher, idx, s.opts.ContextLines)
	return &FileResult{Path: path, Matches: matches}, nil
}

func (s *Scanner) candidates(ctx context.Context, path string, content []byte) ([]extract.Candidate, *FileError) {
	lang := s.registry.DetectLanguageFromPath(path)

	if lang == language.Unknown {
		if !s.opts.EnableFallback {
			return nil, nil
		}
		return extract.TextCandidate(content), nil
	}

	grammar := s.registry.GetLanguage(lang)
	if grammar == nil {
		// Grammar load failure already logged by the registry;
		// degrade to raw-text scanning rather than fail the file.
		return extract.TextCandidate(content), nil
	}

	return s.parseCandidates(ctx, path, lang, grammar, content)
}

func (s *Scanner) parseCandidates(ctx context.Context, path, lang string, grammar *sitter.Language, content []byte) ([]extract.Candidate, *FileError) {
	parser := s.pool.Acquire(lang, grammar)
	defer s.pool.Release(lang, parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, newFileError(path, StageParse, err)
	}
	defer tree.Close()

	cfg := s.registry.Lookup(lang)
	return extract.TreeCandidates(tree.RootNode(), content, cfg, s.opts.IncludeComments), nil
}

// assemble reorders completed files to the input enumeration, applies
// the filter stage, and computes aggregate counters.
func (s *Scanner) assemble(results []*FileResult, failures []FileError) *Outcome {
	ordered := make([]FileResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ordered = append(ordered, *r)
		}
	}

	filesScanned := len(ordered)
	filtered := Filter(ordered, s.opts.IgnoreDomains, s.opts.IncludeNonFQDN)

	if !s.opts.KeepEmptyFiles {
		kept := filtered[:0]
		for _, f := range filtered {
			if len(f.Matches) > 0 {
				kept = append(kept, f)
			}
		}
		filtered = kept
	}

	total, unique := Summarize(filtered)
	return &Outcome{
		Files:        filtered,
		Failures:     failures,
		FilesScanned: filesScanned,
		TotalURLs:    total,
		UniqueURLs:   unique,
	}
}
