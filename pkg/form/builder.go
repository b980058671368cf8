package form

import "github.com/goliatone/go-payform/pkg/model"

// BuildFunc declares a form. It runs at most once per Builder.
type BuildFunc func() (*Container, error)

// Builder memoizes form construction: the declaration runs on first access
// and later calls return the cached container (or the cached error).
type Builder struct {
	build      BuildFunc
	decorators []model.Decorator

	built     bool
	container *Container
	err       error
}

// NewBuilder wraps a declaration. Decorators run once, right after the
// declaration succeeds.
func NewBuilder(build BuildFunc, decorators ...model.Decorator) *Builder {
	return &Builder{build: build, decorators: decorators}
}

// Container returns the memoized container, building it on first use.
func (b *Builder) Container() (*Container, error) {
	if b.built {
		return b.container, b.err
	}
	b.built = true
	if b.build == nil {
		b.container = NewContainer("")
		return b.container, nil
	}
	container, err := b.build()
	if err != nil {
		b.err = err
		return nil, err
	}
	if container == nil {
		container = NewContainer("")
	}
	if err := container.Decorate(b.decorators...); err != nil {
		b.err = err
		return nil, err
	}
	b.container = container
	return container, nil
}

// Built reports whether the declaration has run.
func (b *Builder) Built() bool { return b.built }
