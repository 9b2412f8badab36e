package validator

import (
	"net/netip"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// maxEmailLength caps the total address length. The RFCs allow 64 octets for
// the local part and 255 for the domain; anything longer is rejected before
// any pattern matching.
const maxEmailLength = 320

const defaultEmailMessage = "Enter a valid email address."

var (
	// Dot-atom or quoted-string local part, matched case-insensitively.
	emailUserRegex = regexp.MustCompile(
		"(?i)^[-!#$%&'*+/=?^_`{}|~0-9a-z]+(?:\\.[-!#$%&'*+/=?^_`{}|~0-9a-z]+)*$" +
			`|^"(?:[\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"$`)

	// Domain with at least one dot and an alphanumeric-bounded last label.
	emailDomainRegex = regexp.MustCompile(
		`(?i)^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z0-9][a-z0-9-]{0,61}[a-z0-9]$`)

	// Bracketed IP literal, e.g. [127.0.0.1] or [::1].
	emailLiteralRegex = regexp.MustCompile(`^\[([A-Fa-f0-9:.]+)\]$`)
)

// Email validates email addresses: the local part and domain are checked
// separately after splitting on the last "@". Domains on the allowlist
// (default: localhost) skip the domain pattern entirely; internationalized
// domains are normalized to ASCII before matching.
type Email struct {
	allowlist []string
	message   string
	code      string
}

// NewEmail builds an email validator.
// Honored options: WithAllowlist, WithMessage, WithCode.
func NewEmail(opts ...Option) *Email {
	o := newOptions(opts)

	allowlist := o.allowlist
	if allowlist == nil {
		allowlist = []string{"localhost"}
	}

	return &Email{
		allowlist: allowlist,
		message:   o.messageOr(defaultEmailMessage),
		code:      o.codeOr(CodeInvalid),
	}
}

// Validate checks that value is a well-formed email address.
func (v *Email) Validate(value string) error {
	fail := func() error {
		return newError(v.code, v.message, map[string]any{"value": value})
	}

	if value == "" || len(value) > maxEmailLength || !strings.Contains(value, "@") {
		return fail()
	}

	at := strings.LastIndex(value, "@")
	user, domain := value[:at], value[at+1:]

	if !emailUserRegex.MatchString(user) {
		return fail()
	}
	if !v.validDomain(domain) {
		return fail()
	}
	return nil
}

func (v *Email) validDomain(domain string) bool {
	for _, allowed := range v.allowlist {
		if strings.EqualFold(domain, allowed) {
			return true
		}
	}

	if emailDomainRegex.MatchString(domain) {
		return true
	}

	// Bracketed IP literal domain, e.g. user@[10.0.0.1].
	if m := emailLiteralRegex.FindStringSubmatch(domain); m != nil {
		_, err := netip.ParseAddr(m[1])
		return err == nil
	}

	// Internationalized domain: retry the pattern after IDNA normalization.
	// Encoding failures mean the domain is invalid, they never propagate.
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return false
	}
	return emailDomainRegex.MatchString(ascii)
}
