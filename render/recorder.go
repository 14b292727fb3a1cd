package render

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Drawable is the last known state of one handle
type Drawable struct {
	Geometry  Geometry
	Material  Material
	Color     RGB
	Transform mgl64.Mat4
	Params    map[string]float64
}

// Recorder keeps every live drawable and the destroy sequence
type Recorder struct {
	mu        sync.Mutex
	next      Handle
	live      map[Handle]*Drawable
	destroyed []Handle
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[Handle]*Drawable)}
}

func (r *Recorder) Create(geom Geometry, mat Material) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.live[r.next] = &Drawable{
		Geometry:  geom,
		Material:  mat,
		Color:     mat.Color,
		Transform: mgl64.Ident4(),
		Params:    make(map[string]float64),
	}
	return r.next
}

func (r *Recorder) Destroy(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[h]; !ok {
		return
	}
	delete(r.live, h)
	r.destroyed = append(r.destroyed, h)
}

func (r *Recorder) SetTransform(h Handle, m mgl64.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.live[h]; ok {
		d.Transform = m
	}
}

func (r *Recorder) SetParam(h Handle, name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.live[h]; ok {
		d.Params[name] = value
	}
}

func (r *Recorder) SetColor(h Handle, c RGB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.live[h]; ok {
		d.Color = c
	}
}

// Get returns a copy of a live drawable
func (r *Recorder) Get(h Handle) (Drawable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.live[h]
	if !ok {
		return Drawable{}, false
	}
	return *d, true
}

// Live returns the number of undestroyed handles
func (r *Recorder) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Destroyed returns handles in destroy order
func (r *Recorder) Destroyed() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Handle, len(r.destroyed))
	copy(out, r.destroyed)
	return out
}
