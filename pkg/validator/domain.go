package validator

import (
	"net/netip"
	"regexp"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// maxDomainNameLength caps a full domain name per RFC 1034.
const maxDomainNameLength = 255

const defaultDomainMessage = "Enter a valid domain name."

// ASCII hostname: dot-separated alphanumeric-bounded labels of up to 63
// characters. A single label ("localhost") is a valid domain name.
var domainNameRegex = regexp.MustCompile(
	`(?i)^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)*[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// DomainName validates domain names. IPv4 and IPv6 literals are rejected: a
// domain name validator must not accept IP addresses. With IDNA enabled
// (default) non-ASCII labels are normalized to their ASCII form before
// matching; with IDNA disabled any non-ASCII input fails.
type DomainName struct {
	acceptIDNA bool
	message    string
	code       string
}

// NewDomainName builds a domain name validator.
// Honored options: WithIDNA, WithMessage, WithCode.
func NewDomainName(opts ...Option) *DomainName {
	o := newOptions(opts)

	acceptIDNA := true
	if o.acceptIDNA != nil {
		acceptIDNA = *o.acceptIDNA
	}

	return &DomainName{
		acceptIDNA: acceptIDNA,
		message:    o.messageOr(defaultDomainMessage),
		code:       o.codeOr(CodeInvalid),
	}
}

// Validate checks that value is a well-formed domain name.
func (v *DomainName) Validate(value string) error {
	fail := func() error {
		return newError(v.code, v.message, map[string]any{"value": value})
	}

	if value == "" || utf8.RuneCountInString(value) > maxDomainNameLength {
		return fail()
	}

	if _, err := netip.ParseAddr(value); err == nil {
		return fail()
	}

	candidate := value
	if v.acceptIDNA {
		ascii, err := idna.Lookup.ToASCII(value)
		if err != nil {
			return fail()
		}
		candidate = ascii
	}

	if !domainNameRegex.MatchString(candidate) {
		return fail()
	}
	return nil
}
