// Package strategy defines the capability contract shared by interchangeable
// variants and a context that delegates calls to the currently selected one.
package strategy

// Strategy is the single operation every interchangeable variant implements.
// Variants are stateless or carry their own immutable configuration captured
// at construction time; replacing configuration means building a new variant.
type Strategy[I, O any] interface {
	Execute(in I) (O, error)
}

// Func adapts a plain function to the Strategy interface.
type Func[I, O any] func(in I) (O, error)

func (f Func[I, O]) Execute(in I) (O, error) { return f(in) }
