package validator

// NewSlug builds a validator for ASCII slugs: letters, numbers, underscores
// or hyphens. Honored options: WithMessage, WithCode.
func NewSlug(opts ...Option) *Regex {
	merged := append([]Option{
		WithMessage("Enter a valid slug consisting of letters, numbers, underscores or hyphens."),
	}, opts...)
	return MustRegex(`^[-a-zA-Z0-9_]+$`, merged...)
}

// NewUnicodeSlug builds a validator for slugs that may contain Unicode
// letters and numbers alongside underscores and hyphens.
// Honored options: WithMessage, WithCode.
func NewUnicodeSlug(opts ...Option) *Regex {
	merged := append([]Option{
		WithMessage("Enter a valid slug consisting of Unicode letters, numbers, underscores, or hyphens."),
	}, opts...)
	return MustRegex(`^[-\p{L}\p{N}_]+$`, merged...)
}
