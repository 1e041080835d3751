package pool

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"
)

// DefaultCapacity is the per-language bucket size when none is given.
const DefaultCapacity = 10

// Pool reuses tree-sitter parser instances per language, amortizing the
// grammar-attachment cost across many files. Each language gets its own
// bounded bucket; buckets are guarded independently so acquire/release
// for different languages never contend.
//
// A bucket never hands the same parser to two callers: when concurrent
// demand for one language exceeds the bucket capacity, Acquire logs a
// warning and blocks until a parser is released. The orchestrator's
// concurrency cap bounds how long that wait can be.
type Pool struct {
	capacity int
	logger   *zap.Logger

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	mu      sync.Mutex
	cond    *sync.Cond
	entries []*entry
}

type entry struct {
	parser *sitter.Parser
	inUse  bool
}

// New creates a pool with the given per-language capacity. A capacity
// below 1 falls back to DefaultCapacity.
func New(capacity int, logger *zap.Logger) *Pool {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		capacity: capacity,
		logger:   logger,
		buckets:  make(map[string]*bucket),
	}
}

// Acquire returns a parser bound to the given grammar. A free pooled
// parser is reused when available; otherwise a new one is created while
// the bucket is under capacity, and at capacity the call waits for a
// release. The bucket never grows past capacity.
func (p *Pool) Acquire(language string, grammar *sitter.Language) *sitter.Parser {
	b := p.bucket(language)

	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		for _, e := range b.entries {
			if !e.inUse {
				e.inUse = true
				return e.parser
			}
		}

		if len(b.entries) < p.capacity {
			parser := sitter.NewParser()
			parser.SetLanguage(grammar)
			b.entries = append(b.entries, &entry{parser: parser, inUse: true})
			return parser
		}

		p.logger.Warn("parser pool exhausted, waiting for a release",
			zap.String("language", language),
			zap.Int("capacity", p.capacity))
		b.cond.Wait()
	}
}

// Release marks a parser as free again and wakes one waiting Acquire.
// Releasing a parser the pool does not track, or against an unknown
// language, is a no-op: Release runs on cleanup paths and must never
// fail.
func (p *Pool) Release(language string, parser *sitter.Parser) {
	if parser == nil {
		return
	}

	p.mu.Lock()
	b, ok := p.buckets[language]
	p.mu.Unlock()
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		if e.parser == parser {
			e.inUse = false
			b.cond.Signal()
			return
		}
	}
}

// Clear closes every pooled parser and discards all buckets. Callers
// must not hold or wait on parsers when clearing.
func (p *Pool) Clear() {
	p.mu.Lock()
	buckets := p.buckets
	p.buckets = make(map[string]*bucket)
	p.mu.Unlock()

	for _, b := range buckets {
		b.mu.Lock()
		for _, e := range b.entries {
			e.parser.Close()
		}
		b.entries = nil
		b.cond.Broadcast()
		b.mu.Unlock()
	}
}

// PoolSize returns the number of live parsers for a language, 0 for
// unknown languages.
func (p *Pool) PoolSize(language string) int {
	p.mu.Lock()
	b, ok := p.buckets[language]
	p.mu.Unlock()
	if !ok {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// AvailableCount returns the number of free parsers for a language, 0
// for unknown languages.
func (p *Pool) AvailableCount(language string) int {
	p.mu.Lock()
	b, ok := p.buckets[language]
	p.mu.Unlock()
	if !ok {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	free := 0
	for _, e := range b.entries {
		if !e.inUse {
			free++
		}
	}
	return free
}

func (p *Pool) bucket(language string) *bucket {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.buckets[language]
	if !ok {
		b = &bucket{}
		b.cond = sync.NewCond(&b.mu)
		p.buckets[language] = b
	}
	return b
}
