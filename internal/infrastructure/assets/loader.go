// Package assets loads sprite images in the background.
//
// Image returns a Handle immediately; the file is read and decoded on a
// worker goroutine. Handles that are not ready yet draw as nothing.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Handle is an image that may still be loading.
type Handle struct {
	path string

	mu   sync.Mutex
	done bool
	src  image.Image
	err  error
	img  *ebiten.Image
}

// Path returns the file the handle loads
func (h *Handle) Path() string {
	return h.path
}

// Ready reports whether the image decoded successfully
func (h *Handle) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done && h.err == nil
}

// Err returns the load error, if any
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Size returns the decoded pixel size. ok is false until the handle is ready.
func (h *Handle) Size() (w, hgt int, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.done || h.err != nil {
		return 0, 0, false
	}
	b := h.src.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the GPU image, or nil while loading or after a failure.
// It must be called from the game goroutine.
func (h *Handle) Image() *ebiten.Image {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.done || h.err != nil {
		return nil
	}
	if h.img == nil {
		h.img = ebiten.NewImageFromImage(h.src)
	}
	return h.img
}

func (h *Handle) finish(src image.Image, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.src = src
	h.err = err
	h.done = true
}

// Loader decodes images from a filesystem with a bounded worker pool.
type Loader struct {
	fsys  fs.FS
	sem   *semaphore.Weighted
	group errgroup.Group

	mu      sync.Mutex
	handles map[string]*Handle
}

// NewLoader creates a loader over fsys using up to workers decoders.
// A nil fsys yields handles that never become ready.
func NewLoader(fsys fs.FS, workers int) *Loader {
	if workers <= 0 {
		workers = 4
	}
	return &Loader{
		fsys:    fsys,
		sem:     semaphore.NewWeighted(int64(workers)),
		handles: make(map[string]*Handle),
	}
}

// Enabled reports whether the loader has a filesystem to read from
func (l *Loader) Enabled() bool {
	return l.fsys != nil
}

// Image returns the handle for path, starting the load on first request.
func (l *Loader) Image(path string) *Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.handles[path]; ok {
		return h
	}
	h := &Handle{path: path}
	l.handles[path] = h
	if l.fsys == nil || path == "" {
		return h
	}

	// The slot is taken inside the goroutine so Image never blocks the caller.
	l.group.Go(func() error {
		if err := l.sem.Acquire(context.Background(), 1); err != nil {
			h.finish(nil, err)
			return err
		}
		defer l.sem.Release(1)

		src, err := l.decode(path)
		h.finish(src, err)
		return err
	})
	return h
}

func (l *Loader) decode(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Preload starts loading every path
func (l *Loader) Preload(paths ...[]string) {
	for _, group := range paths {
		for _, p := range group {
			l.Image(p)
		}
	}
}

// Wait blocks until every started load has finished and returns the
// first load error. Failed handles keep their own errors.
func (l *Loader) Wait() error {
	return l.group.Wait()
}

// Failed returns the handles whose load failed
func (l *Loader) Failed() []*Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*Handle
	for _, h := range l.handles {
		if h.Err() != nil {
			out = append(out, h)
		}
	}
	return out
}
