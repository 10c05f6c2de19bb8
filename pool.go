package md2docx

import "runtime"

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps the pool; conversion is CPU-bound and short-lived,
	// so more workers than cores buys nothing.
	MaxPoolSize = 8
)

// ConverterPool shares Converter instances across batch workers.
// Unlike heavyweight render backends, converters are cheap, so the pool is
// filled eagerly and exists to bound concurrency rather than amortize
// startup cost.
type ConverterPool struct {
	size int
	sem  chan *Converter
}

// NewConverterPool creates a pool of n converters built with the given
// options. n is clamped to at least one.
func NewConverterPool(n int, opts ...Option) (*ConverterPool, error) {
	if n < MinPoolSize {
		n = MinPoolSize
	}

	p := &ConverterPool{
		size: n,
		sem:  make(chan *Converter, n),
	}

	for i := 0; i < n; i++ {
		conv, err := NewConverter(opts...)
		if err != nil {
			return nil, err
		}
		p.sem <- conv
	}

	return p, nil
}

// Acquire gets a converter from the pool, blocking if all are in use.
func (p *ConverterPool) Acquire() *Converter {
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(conv *Converter) {
	p.sem <- conv
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size for batch conversion.
// Priority: explicit workers > GOMAXPROCS-based calculation (adjusted by
// automaxprocs in container environments).
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
