// Package result implements the small Result[T] combinator the grammar
// productions in internal/parser use to sequence fallible steps, grounded
// on the teacher's TryParse/Sequence combinators (internal/parser/combinators.go)
// but generalized to carry a value instead of relying on a nil-means-failure
// convention.
package result

// Result is either a successful value or a failure. Unlike the teacher's
// "return nil on failure" convention, Result keeps the failed-or-not state
// explicit so a production can fail without needing a sentinel zero value
// for T.
type Result[T any] struct {
	value T
	ok    bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result.
func Fail[T any]() Result[T] {
	return Result[T]{}
}

// IsOk reports whether the result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the wrapped value and whether the result succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Unwrap returns the wrapped value, or the zero value of T on failure.
func (r Result[T]) Unwrap() T {
	return r.value
}

// Step is a single fallible production in a sequence: it takes whatever the
// prior steps have produced so far and either extends it or fails.
type Step[T any] func(T) (T, bool)

// All runs each step in order against an accumulating value, short-circuiting
// on the first failure. This is the "all(step1, step2, ...)" sequencing
// pattern grammar productions use to build up a node field by field while
// still reporting overall failure as soon as one field cannot be parsed —
// the Result-flavored counterpart to the teacher's boolean-returning
// combinator chains.
func All[T any](initial T, steps ...Step[T]) Result[T] {
	acc := initial
	for _, step := range steps {
		next, ok := step(acc)
		if !ok {
			return Fail[T]()
		}
		acc = next
	}
	return Ok(acc)
}
