package generation

// Optional is the explicit present/absent marker for best-effort pipeline
// stages. An absent value is merged into the final payload as JSON null with
// its key present, which is distinct from the key being omitted.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) Present() bool {
	return o.present
}

// OrNil yields the merge representation: the value when present, nil when
// absent.
func (o Optional[T]) OrNil() interface{} {
	if !o.present {
		return nil
	}
	return o.value
}
