package fn

// Func is a function value: one input, one output, and an error when the call
// cannot be completed.
type Func[In, Out any] func(in In) (Out, error)

// Call invokes f. Calling a nil Func returns ErrNilFunc.
func (f Func[In, Out]) Call(in In) (Out, error) {
	if f == nil {
		var zero Out
		return zero, ErrNilFunc
	}
	return f(in)
}

// Lift turns an infallible function into a Func.
func Lift[In, Out any](f func(In) Out) Func[In, Out] {
	if f == nil {
		return nil
	}
	return func(in In) (Out, error) {
		return f(in), nil
	}
}

// Identity returns its input unchanged. It is the neutral element of composition.
func Identity[T any](in T) (T, error) {
	return in, nil
}
