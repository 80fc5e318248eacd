package govali

// Builder validates constructor arguments and only then constructs T.
//
//	b := govali.NewBuilder[Person]()
//	govali.BuildParam(b, "Name", name).MustSatisfy(rules.NotEmpty())
//	p, err := b.Build(func() (Person, error) { return Person{Name: name}, nil })
type Builder[T any] struct {
	validator *Constructor[T]
}

// NewBuilder creates a Builder for T; opts configure the underlying Constructor.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	return &Builder[T]{validator: NewConstructor[T](opts...)}
}

// BuildParam captures a named argument on b and returns the handle used to attach its rule.
func BuildParam[T, F any](b *Builder[T], name string, value F) *ParamBinding[*Builder[T], F] {
	mustArgument(b != nil, "builder must not be nil")
	mustArgument(name != "", "parameter name must not be empty")
	pb := &ParamBinding[*Builder[T], F]{parent: b, name: name, value: value}
	b.validator.params = append(b.validator.params, pb.check)
	return pb
}

// FailFast switches the underlying Constructor to FailFast.
func (b *Builder[T]) FailFast() *Builder[T] {
	b.validator.FailFast()
	return b
}

// CollectFailures switches the underlying Constructor to CollectAll.
func (b *Builder[T]) CollectFailures() *Builder[T] {
	b.validator.CollectFailures()
	return b
}

// Validate runs the underlying Constructor validation.
func (b *Builder[T]) Validate() (*Results, error) { return b.validator.Validate() }

// Build validates every captured argument and calls construct only when all of them pass.
// Validation failures are returned as an *AggregatedError and construct is not called.
func (b *Builder[T]) Build(construct func() (T, error)) (T, error) {
	var zero T
	mustArgument(construct != nil, "construct function must not be nil")
	if err := b.validator.Check(); err != nil {
		return zero, err
	}
	return construct()
}
