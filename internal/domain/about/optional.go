package about

// Optional marks a patchable attribute. The zero value is "omitted"; Some("")
// is an explicit clear.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func (o Optional[T]) IsSet() bool { return o.set }

func (o Optional[T]) Value() T { return o.value }

// FromPtr maps a decoded JSON pointer onto an Optional: nil stays omitted.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}
