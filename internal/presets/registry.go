package presets

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownShape is returned for a shape name with no registered generator.
var ErrUnknownShape = errors.New("presets: unknown shape")

type Registry struct {
	shapes map[string]Generator
}

// NewRegistry returns a registry holding every built-in shape.
func NewRegistry() *Registry {
	r := &Registry{shapes: make(map[string]Generator)}

	r.shapes["heart"] = Heart
	r.shapes["flower"] = Flower
	r.shapes["spiral"] = Spiral
	r.shapes["circle"] = Circle
	r.shapes["square"] = Square
	r.shapes["lissajous"] = Lissajous
	r.shapes["star"] = Star

	return r
}

func (r *Registry) Register(name string, gen Generator) {
	r.shapes[name] = gen
}

func (r *Registry) Get(name string) (Generator, error) {
	gen, ok := r.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
	return gen, nil
}

// Names lists registered shapes in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
