package validator

// Of is the contract every validator satisfies for values of type T: a nil
// return means the value passed, a non-nil return carries one or more
// structured failures. Validators are pure functions of (value, configuration)
// and are safe for concurrent use.
type Of[T any] interface {
	Validate(value T) error
}

// Func adapts a plain function into a validator.
type Func[T any] func(value T) error

func (f Func[T]) Validate(value T) error {
	return f(value)
}

// Apply runs validators against value in order and collects every failure
// into a single Errors value. Validators are independent: a failure does not
// stop the remaining ones from running. Nil validators are skipped.
func Apply[T any](value T, validators ...Of[T]) error {
	var errs Errors
	for _, v := range validators {
		if v == nil {
			continue
		}
		err := v.Validate(value)
		if err == nil {
			continue
		}
		if extracted := ExtractErrors(err); extracted != nil {
			errs = append(errs, extracted...)
		} else {
			errs = append(errs, newError(CodeInvalid, err.Error(), nil))
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Limit holds either a fixed limit or a deferred one. Deferred limits are
// resolved on every validation, which supports moving limits such as "now".
type Limit[T any] struct {
	value T
	fn    func() T
}

// Fixed wraps a constant limit.
func Fixed[T any](value T) Limit[T] {
	return Limit[T]{value: value}
}

// Deferred wraps a limit that is computed at validation time.
func Deferred[T any](fn func() T) Limit[T] {
	return Limit[T]{fn: fn}
}

// Resolve returns the current limit value.
func (l Limit[T]) Resolve() T {
	if l.fn != nil {
		return l.fn()
	}
	return l.value
}
