package terminal

import (
	"container/list"
	"sync"

	"github.com/lixenwraith/termcore/render"
)

// DefaultCacheEntries bounds the artifact cache
const DefaultCacheEntries = 64

// RenderingInfo is the read-only snapshot consumers branch on when
// choosing a presentation strategy
type RenderingInfo struct {
	Mode         render.Mode
	Kind         Kind
	Capabilities Capabilities
}

// ArtifactKey identifies one cached rendered artifact. A content version
// bump, a mode change, or a dimension change each miss the cache.
type ArtifactKey struct {
	ContentVersion uint64
	Mode           render.Mode
	Width          int
	Height         int
}

type cacheEntry struct {
	key      ArtifactKey
	artifact any
}

// Renderer holds the capability snapshot and derived mode for a session
// and caches rendered artifacts per (content version, mode, dimensions),
// LRU-bounded. Safe for concurrent readers; the snapshot is replaced, not
// mutated, on re-detect.
type Renderer struct {
	mu         sync.Mutex
	caps       Capabilities
	mode       render.Mode
	overridden bool

	maxEntries int
	entries    map[ArtifactKey]*list.Element
	order      *list.List // front = most recent
}

// NewRenderer derives the mode from caps and sets up an empty cache
func NewRenderer(caps Capabilities, maxEntries ...int) *Renderer {
	n := DefaultCacheEntries
	if len(maxEntries) > 0 && maxEntries[0] > 0 {
		n = maxEntries[0]
	}
	return &Renderer{
		caps:       caps,
		mode:       DeriveMode(caps),
		maxEntries: n,
		entries:    make(map[ArtifactKey]*list.Element),
		order:      list.New(),
	}
}

// Info returns the current snapshot
func (r *Renderer) Info() RenderingInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RenderingInfo{Mode: r.mode, Kind: r.caps.Kind, Capabilities: r.caps}
}

// Mode returns the active render mode
func (r *Renderer) Mode() render.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// SetCapabilities installs a new detection snapshot, rederives the mode
// unless overridden, and invalidates the cache
func (r *Renderer) SetCapabilities(caps Capabilities) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps = caps
	if !r.overridden {
		r.mode = DeriveMode(caps)
	}
	r.invalidateLocked()
}

// SetModeOverride pins the mode regardless of capabilities and
// invalidates the cache
func (r *Renderer) SetModeOverride(mode render.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overridden = true
	r.mode = mode
	r.invalidateLocked()
}

// ClearModeOverride returns to capability-derived mode selection
func (r *Renderer) ClearModeOverride() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overridden = false
	r.mode = DeriveMode(r.caps)
	r.invalidateLocked()
}

// Cached returns the artifact stored under key, marking it most recently
// used
func (r *Renderer) Cached(key ArtifactKey) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	r.order.MoveToFront(el)
	return el.Value.(*cacheEntry).artifact, true
}

// Store caches artifact under key, evicting the least recently used entry
// when full. Storing an existing key replaces its artifact.
func (r *Renderer) Store(key ArtifactKey, artifact any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.entries[key]; ok {
		el.Value.(*cacheEntry).artifact = artifact
		r.order.MoveToFront(el)
		return
	}
	for r.order.Len() >= r.maxEntries {
		oldest := r.order.Back()
		if oldest == nil {
			break
		}
		r.order.Remove(oldest)
		delete(r.entries, oldest.Value.(*cacheEntry).key)
	}
	r.entries[key] = r.order.PushFront(&cacheEntry{key: key, artifact: artifact})
}

// Invalidate drops every cached artifact
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidateLocked()
}

func (r *Renderer) invalidateLocked() {
	r.entries = make(map[ArtifactKey]*list.Element)
	r.order.Init()
}

// Len reports the number of cached artifacts
func (r *Renderer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}
