package validator

import "github.com/google/uuid"

// UUID validates textual UUIDs, optionally pinned to a single version.
type UUID struct {
	version int
	message string
	code    string
}

// NewUUID builds a UUID validator. With WithVersion(n) the parsed UUID must
// additionally be of version n.
// Honored options: WithVersion, WithMessage, WithCode.
func NewUUID(opts ...Option) *UUID {
	o := newOptions(opts)
	return &UUID{
		version: o.uuidVersion,
		message: o.messageOr("Enter a valid UUID."),
		code:    o.codeOr(CodeInvalid),
	}
}

// Validate checks that value parses as a UUID of the configured version.
func (v *UUID) Validate(value string) error {
	fail := func() error {
		return newError(v.code, v.message, map[string]any{"value": value})
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		return fail()
	}
	if v.version > 0 && parsed.Version() != uuid.Version(v.version) {
		return fail()
	}
	return nil
}
