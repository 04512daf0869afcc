// Package cache provides memoization for solved grids.
// Solving is deterministic, so a grid's solution can be reused whenever
// the same givens come back, such as batch runs over overlapping puzzle
// sets or replaying stored sessions.
package cache

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

// SolutionCache caches solve results keyed by grid fingerprint.
type SolutionCache struct {
	mu        sync.RWMutex
	cache     map[uint256.Int]*solver.Result
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewSolutionCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted.
// Set maxSize to 0 for an unlimited cache.
func NewSolutionCache(maxSize int) *SolutionCache {
	return &SolutionCache{
		cache:   make(map[uint256.Int]*solver.Result),
		maxSize: maxSize,
	}
}

// Get retrieves the cached result for a grid with these values.
// Returns nil if not found.
func (c *SolutionCache) Get(g *grid.Grid) *solver.Result {
	key := g.Fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.cache[key]; ok {
		c.hits++
		return res
	}
	c.misses++
	return nil
}

// Put stores a result under the grid's fingerprint.
func (c *SolutionCache) Put(g *grid.Grid, res *solver.Result) {
	key := g.Fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict if necessary (remove first key found)
	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = res
}

// GetOrCompute retrieves from cache or computes and caches the result.
// Failed computations are returned as-is and never cached.
func (c *SolutionCache) GetOrCompute(g *grid.Grid, compute func() (*solver.Result, error)) (*solver.Result, error) {
	if res := c.Get(g); res != nil {
		return res, nil
	}

	res, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(g, res)
	return res, nil
}

// Clear removes all entries from the cache.
func (c *SolutionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[uint256.Int]*solver.Result)
}

// Size returns the current number of cached entries.
func (c *SolutionCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *SolutionCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// CachedSolver wraps a Searcher with result caching.
type CachedSolver struct {
	searcher *solver.Searcher
	cache    *SolutionCache
}

// NewCachedSolver creates a solver with built-in caching.
func NewCachedSolver(cacheSize int) *CachedSolver {
	return &CachedSolver{
		searcher: solver.New(),
		cache:    NewSolutionCache(cacheSize),
	}
}

// WithSearcher replaces the underlying searcher.
func (s *CachedSolver) WithSearcher(searcher *solver.Searcher) *CachedSolver {
	s.searcher = searcher
	return s
}

// Solve completes the grid, reusing a cached result when the same givens
// were solved before. Unsolvable grids are re-searched on every call.
func (s *CachedSolver) Solve(g *grid.Grid) (*solver.Result, error) {
	return s.cache.GetOrCompute(g, func() (*solver.Result, error) {
		return s.searcher.Solve(g)
	})
}

// Cache returns the underlying cache for inspection.
func (s *CachedSolver) Cache() *SolutionCache {
	return s.cache
}

// ClearCache clears the cache.
func (s *CachedSolver) ClearCache() {
	s.cache.Clear()
}
