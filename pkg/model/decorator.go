package model

// Decorator enriches an item after it has been declared, before the form is
// handed to the presentation layer.
type Decorator interface {
	Decorate(Item) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(Item) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(item Item) error {
	return fn(item)
}
