package validator

import "github.com/shopspring/decimal"

// Option tunes a validator at construction time. The option set is shared
// across constructors; each constructor documents which options it honors and
// ignores the rest. Configuration is immutable once the validator is built.
type Option func(*options)

type options struct {
	message      string
	code         string
	flags        string
	inverseMatch bool
	allowlist    []string
	schemes      []string
	maxLength    int
	uuidVersion  int
	acceptIDNA   *bool
	offset       *Limit[decimal.Decimal]
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// messageOr returns the configured message override or def.
func (o options) messageOr(def string) string {
	if o.message != "" {
		return o.message
	}
	return def
}

// codeOr returns the configured code override or def.
func (o options) codeOr(def string) string {
	if o.code != "" {
		return o.code
	}
	return def
}

// WithMessage overrides the default failure message template. Templates may
// reference failure params with %{name} placeholders.
func WithMessage(message string) Option {
	return func(o *options) { o.message = message }
}

// WithCode overrides the default failure code.
func WithCode(code string) Option {
	return func(o *options) { o.code = code }
}

// WithFlags sets inline regexp flags (e.g. "i", "is") applied to a string
// pattern at compile time. Combining flags with an already compiled pattern
// is a configuration error reported by the constructor.
func WithFlags(flags string) Option {
	return func(o *options) { o.flags = flags }
}

// WithInverseMatch flips the regex validator: values that match the pattern
// fail, values that do not match pass.
func WithInverseMatch() Option {
	return func(o *options) { o.inverseMatch = true }
}

// WithAllowlist replaces the email domain allowlist. Matching is
// case-insensitive and bypasses the domain pattern checks entirely.
func WithAllowlist(domains ...string) Option {
	return func(o *options) { o.allowlist = domains }
}

// WithSchemes replaces the URL scheme allowlist. Matching is
// case-insensitive.
func WithSchemes(schemes ...string) Option {
	return func(o *options) { o.schemes = schemes }
}

// WithMaxLength overrides the URL validator's length cap.
func WithMaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// WithVersion pins the UUID validator to a specific UUID version.
func WithVersion(version int) Option {
	return func(o *options) { o.uuidVersion = version }
}

// WithIDNA controls whether the domain name validator normalizes and accepts
// internationalized (non-ASCII) labels. Enabled by default.
func WithIDNA(accept bool) Option {
	return func(o *options) { o.acceptIDNA = &accept }
}

// WithOffset shifts the step validator grid: (value - offset) must be a
// multiple of the step size.
func WithOffset(offset decimal.Decimal) Option {
	return func(o *options) {
		l := Fixed(offset)
		o.offset = &l
	}
}

// WithOffsetFunc is WithOffset with the offset resolved at validation time.
func WithOffsetFunc(fn func() decimal.Decimal) Option {
	return func(o *options) {
		l := Deferred(fn)
		o.offset = &l
	}
}
