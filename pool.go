package netbuf

import (
	"sync"

	"github.com/codahale/hdrhistogram"
	"github.com/netbuf/netbuf/bytebuffer"
	"go.uber.org/zap"
)

// PoolConfig sets the capacity range of the buffers handed out by a Pool, and
// the quantile of the recorded lengths used to size new ones
type PoolConfig struct {
	MinCapacity int
	MaxCapacity int
	Quantile    float64
}

// PoolConfigFromConfig returns the pool settings of a Config
func PoolConfigFromConfig(c Config) PoolConfig {
	return PoolConfig{
		MinCapacity: c.PoolMinCapacity,
		MaxCapacity: c.PoolMaxCapacity,
		Quantile:    c.PoolQuantile,
	}
}

// PoolStats is a summary of the lengths of the buffers put back in a Pool
type PoolStats struct {
	Gets     int64
	Puts     int64
	Mean     float64
	Max      int64
	Capacity int // capacity new buffers are allocated with
}

// Pool recycles ByteBuffers, it is safe for concurrent use
//
// every buffer put back has its length recorded in a histogram, buffers that
// have to be allocated get the length at the configured quantile as their
// capacity, so that most messages fit without growing
type Pool struct {
	mu       sync.Mutex
	cfg      PoolConfig
	h        *hdrhistogram.Histogram
	gets     int64
	capacity int
	buffers  sync.Pool
}

// NewPool creates a Pool, out of range settings are replaced by the defaults
func NewPool(cfg PoolConfig) *Pool {
	d := PoolConfigFromConfig(DefaultConfig())
	if cfg.MinCapacity < 1 {
		cfg.MinCapacity = d.MinCapacity
	}
	if cfg.MaxCapacity < cfg.MinCapacity {
		cfg.MaxCapacity = cfg.MinCapacity
	}
	if cfg.Quantile <= 0 || cfg.Quantile > 100 {
		cfg.Quantile = d.Quantile
	}

	p := &Pool{
		cfg:      cfg,
		h:        hdrhistogram.New(1, int64(cfg.MaxCapacity), 2),
		capacity: cfg.MinCapacity,
	}
	p.buffers.New = func() interface{} {
		return bytebuffer.NewByteBuffer(p.Capacity())
	}

	if logging {
		logger.Named("pool").Debug("created buffer pool",
			zap.Int("min", cfg.MinCapacity),
			zap.Int("max", cfg.MaxCapacity),
			zap.Float64("quantile", cfg.Quantile),
		)
	}

	return p
}

// Get returns an empty buffer
func (p *Pool) Get() *bytebuffer.ByteBuffer {
	p.mu.Lock()
	p.gets++
	p.mu.Unlock()

	return p.buffers.Get().(*bytebuffer.ByteBuffer)
}

// Put records the length of b and hands it back for reuse, b must not be used
// by the caller afterwards
func (p *Pool) Put(b *bytebuffer.ByteBuffer) {
	if b == nil {
		return
	}

	l := int64(b.Len())
	if l < int64(p.cfg.MinCapacity) {
		l = int64(p.cfg.MinCapacity)
	}
	if l > int64(p.cfg.MaxCapacity) {
		l = int64(p.cfg.MaxCapacity)
	}

	p.mu.Lock()
	if err := p.h.RecordValue(l); err != nil && logging {
		logger.Named("pool").Warn("cannot record buffer length",
			zap.Int64("length", l),
			zap.Error(err),
		)
	}
	p.capacity = int(p.h.ValueAtQuantile(p.cfg.Quantile))
	p.mu.Unlock()

	if b.Cap() > p.cfg.MaxCapacity {
		// oversized buffers are released rather than kept around
		_ = b.Close()
		return
	}

	b.Clear()
	p.buffers.Put(b)
}

// Capacity returns the capacity newly allocated buffers get
func (p *Pool) Capacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.capacity
	if c < p.cfg.MinCapacity {
		c = p.cfg.MinCapacity
	}
	if c > p.cfg.MaxCapacity {
		c = p.cfg.MaxCapacity
	}

	return c
}

// Stats returns a summary of the pool's usage
func (p *Pool) Stats() PoolStats {
	c := p.Capacity()

	p.mu.Lock()
	defer p.mu.Unlock()

	return PoolStats{
		Gets:     p.gets,
		Puts:     p.h.TotalCount(),
		Mean:     p.h.Mean(),
		Max:      p.h.Max(),
		Capacity: c,
	}
}

// Reset forgets the recorded lengths
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.h.Reset()
	p.gets = 0
	p.capacity = p.cfg.MinCapacity
}
