// Package result models per-item work that either yields a value or is skipped.
package result

// Outcome carries either a value or the reason the item was omitted.
type Outcome[T any] struct {
	value  T
	reason string
	ok     bool
}

// Ok wraps a produced value.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Skip records why an item produced no value.
func Skip[T any](reason string) Outcome[T] {
	return Outcome[T]{reason: reason}
}

// Skipped reports whether the item was omitted.
func (o Outcome[T]) Skipped() bool { return !o.ok }

// Reason is the omission reason, empty for produced values.
func (o Outcome[T]) Reason() string { return o.reason }

// Value returns the produced value and whether there is one.
func (o Outcome[T]) Value() (T, bool) { return o.value, o.ok }

// Collect keeps produced values in order. onSkip, if non-nil, sees every omitted item.
func Collect[T any](outcomes []Outcome[T], onSkip func(index int, reason string)) []T {
	values := make([]T, 0, len(outcomes))
	for i, o := range outcomes {
		if !o.ok {
			if onSkip != nil {
				onSkip(i, o.reason)
			}
			continue
		}
		values = append(values, o.value)
	}
	return values
}
