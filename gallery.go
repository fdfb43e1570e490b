package main

import (
	"image/color"
	"log"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ImagePath identifies one gallery entry, either a file on disk or an
// entry inside an archive.
type ImagePath struct {
	Path        string // local file path or archive:entry form
	ArchivePath string // empty for regular files
	EntryPath   string // empty for regular files
}

// name returns the path used for format classification and sorting.
func (p ImagePath) name() string {
	if p.EntryPath != "" {
		return p.EntryPath
	}
	return p.Path
}

// defaultCacheSize bounds how many decoded images stay resident at
// once.
const defaultCacheSize = 64

// Gallery is the sorted list of images currently being browsed plus a
// bounded cache of their decoded handles. Entries are decoded lazily
// on first view; eviction releases the handle's texture. An entry
// that fails to decode is remembered as failed and never retried.
type Gallery struct {
	folder   string // directory or archive the entries came from
	paths    []ImagePath
	failed   []bool
	cache    *lru.Cache[string, *ImageHandle]
	index    int
	bg       color.NRGBA
	strategy SortStrategy
	scans    int

	// onNavigate fires after the current index changes or the list is
	// replaced.
	onNavigate func()
}

// NewGallery creates an empty gallery with a handle cache of the given
// size.
func NewGallery(cacheSize int, bg color.NRGBA, strategy SortStrategy) *Gallery {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	evict := func(_ string, h *ImageHandle) {
		if h != nil {
			h.Dispose()
		}
	}
	cache, err := lru.NewWithEvict[string, *ImageHandle](cacheSize, evict)
	if err != nil {
		log.Printf("Error: Failed to create LRU cache: %v", err)
		cache, _ = lru.NewWithEvict[string, *ImageHandle](16, evict)
	}
	return &Gallery{cache: cache, bg: bg, strategy: strategy}
}

// OnNavigate registers a callback invoked whenever the current entry
// changes.
func (g *Gallery) OnNavigate(fn func()) { g.onNavigate = fn }

func (g *Gallery) notify() {
	if g.onNavigate != nil {
		g.onNavigate()
	}
}

// Len returns the number of entries.
func (g *Gallery) Len() int { return len(g.paths) }

// Index returns the current position.
func (g *Gallery) Index() int { return g.index }

// Folder returns the directory or archive backing the entries.
func (g *Gallery) Folder() string { return g.folder }

// CurrentPath returns the current entry's identifying path, or ""
// when the gallery is empty.
func (g *Gallery) CurrentPath() string {
	if len(g.paths) == 0 {
		return ""
	}
	return g.paths[g.index].Path
}

// CurrentFailed reports whether the current entry failed to decode.
func (g *Gallery) CurrentFailed() bool {
	return len(g.failed) > 0 && g.failed[g.index]
}

// Current returns the decoded handle for the current entry, loading
// and caching it on first access. It returns nil for an empty gallery
// and for entries that failed to decode.
func (g *Gallery) Current() *ImageHandle {
	if len(g.paths) == 0 || g.failed[g.index] {
		return nil
	}
	p := g.paths[g.index]
	if h, ok := g.cache.Get(p.Path); ok {
		return h
	}
	h, err := g.load(p)
	if err != nil {
		log.Printf("Error: Failed to load image [%d/%d] %s: %v",
			g.index+1, len(g.paths), p.Path, err)
		g.failed[g.index] = true
		return nil
	}
	g.cache.Add(p.Path, h)
	debugLog("loaded %s (cache: %d items)", p.Path, g.cache.Len())
	return h
}

func (g *Gallery) load(p ImagePath) (*ImageHandle, error) {
	data, err := readImageData(p)
	if err != nil {
		return nil, err
	}
	dec, err := decodeImage(data, classifyExt(p.name()), g.bg)
	if err != nil {
		return nil, err
	}
	return NewImageHandle(dec), nil
}

// CanAdvance reports whether a later entry exists.
func (g *Gallery) CanAdvance() bool { return g.index+1 < len(g.paths) }

// CanRetreat reports whether an earlier entry exists.
func (g *Gallery) CanRetreat() bool { return g.index > 0 }

// Advance moves to the next entry, staying put at the end.
func (g *Gallery) Advance() {
	if g.CanAdvance() {
		g.index++
		g.notify()
	}
}

// Retreat moves to the previous entry, staying put at the start.
func (g *Gallery) Retreat() {
	if g.CanRetreat() {
		g.index--
		g.notify()
	}
}

// JumpTo moves to an absolute position, clamped to the valid range.
func (g *Gallery) JumpTo(idx int) {
	if len(g.paths) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(g.paths) {
		idx = len(g.paths) - 1
	}
	if idx != g.index {
		g.index = idx
		g.notify()
	}
}

// First jumps to the first entry.
func (g *Gallery) First() { g.JumpTo(0) }

// Last jumps to the last entry.
func (g *Gallery) Last() { g.JumpTo(len(g.paths) - 1) }

// jumpToPath positions the gallery at target. When target is not in
// the list the nearest entry in sort order is chosen, so opening a
// non-image path lands on its alphabetical neighbor.
func (g *Gallery) jumpToPath(target string) {
	if len(g.paths) == 0 {
		return
	}
	for i, p := range g.paths {
		if p.Path == target {
			g.index = i
			g.notify()
			return
		}
	}
	key := ImagePath{Path: target}
	var i int
	if g.strategy.Ordered() {
		i = sort.Search(len(g.paths), func(i int) bool {
			return !g.strategy.Less(g.paths[i], key)
		})
		if i >= len(g.paths) {
			i = len(g.paths) - 1
		}
	} else {
		i = g.nearestUnsorted(key)
	}
	g.index = i
	g.notify()
}

// nearestUnsorted finds the entry that would follow key if the list
// were sorted, scanning linearly because entry-order galleries keep
// their list unsorted. When key sorts after every entry the greatest
// entry is chosen.
func (g *Gallery) nearestUnsorted(key ImagePath) int {
	best := -1
	for i, p := range g.paths {
		if g.strategy.Less(p, key) {
			continue
		}
		if best == -1 || g.strategy.Less(p, g.paths[best]) {
			best = i
		}
	}
	if best != -1 {
		return best
	}
	best = 0
	for i, p := range g.paths {
		if g.strategy.Less(g.paths[best], p) {
			best = i
		}
	}
	return best
}

// setPaths replaces the entry list. Cached handles keyed by path stay
// valid across the swap.
func (g *Gallery) setPaths(folder string, paths []ImagePath) {
	g.folder = folder
	g.paths = paths
	g.failed = make([]bool, len(paths))
	g.index = 0
	debugLog("gallery: %d entries from %s", len(paths), folder)
}

// SetStrategy reorders the entries with a new sort strategy, keeping
// the current entry selected.
func (g *Gallery) SetStrategy(strategy SortStrategy) {
	g.strategy = strategy
	if len(g.paths) == 0 {
		return
	}
	current := g.paths[g.index]
	paths := strategy.Sort(g.paths)
	failed := make([]bool, len(paths))
	oldFailed := make(map[string]bool, len(g.paths))
	for i, p := range g.paths {
		oldFailed[p.Path] = g.failed[i]
	}
	for i, p := range paths {
		failed[i] = oldFailed[p.Path]
	}
	g.paths = paths
	g.failed = failed
	g.jumpToPath(current.Path)
}

// Dispose evicts every cached handle, releasing their textures.
func (g *Gallery) Dispose() {
	g.cache.Purge()
}
