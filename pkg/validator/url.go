package validator

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	defaultURLMaxLength = 2048
	defaultURLMessage   = "Enter a valid URL."

	// maxHostnameLength caps the host per RFC 1034 section 3.1.
	maxHostnameLength = 253
)

// defaultURLSchemes is the scheme allowlist applied when none is configured.
var defaultURLSchemes = []string{"http", "https", "ftp", "ftps"}

// urlRegex matches scheme://[user[:pass]@]host[:port][/path]. The host is an
// IPv4 dotted quad, a bracketed IPv6 literal, or a hostname whose labels may
// contain Unicode letters.
var urlRegex = buildURLRegex()

func buildURLRegex() *regexp.Regexp {
	// Printable Unicode range used by hostname labels.
	const ul = `\x{00a1}-\x{ffff}`

	octet := `(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]?[0-9])`
	ipv4 := octet + `(?:\.` + octet + `){3}`
	ipv6 := `\[[0-9a-f:.]+\]`
	label := `[a-z0-9` + ul + `](?:[a-z0-9` + ul + `-]{0,61}[a-z0-9` + ul + `])?`
	host := `(?:` + ipv4 + `|` + ipv6 + `|` + label + `(?:\.` + label + `)*\.?` + `)`

	return regexp.MustCompile(
		`(?i)^[a-z0-9.+-]+://` + // scheme, verified against the allowlist separately
			`(?:[^\s:@/]+(?::[^\s:@/]*)?@)?` + // optional user:pass
			host +
			`(?::[0-9]{1,5})?` + // optional port
			`(?:[/?#][^\s]*)?$`) // optional path, query, fragment
}

// URL validates absolute URLs. The scheme is checked against a
// case-insensitive allowlist before any pattern matching, the value is capped
// at a maximum length, and a host is required: "scheme:///path" is invalid
// even for an allowed scheme.
type URL struct {
	schemes   []string
	maxLength int
	message   string
	code      string
}

// NewURL builds a URL validator.
// Honored options: WithSchemes, WithMaxLength, WithMessage, WithCode.
func NewURL(opts ...Option) *URL {
	o := newOptions(opts)

	schemes := o.schemes
	if schemes == nil {
		schemes = defaultURLSchemes
	}
	maxLength := o.maxLength
	if maxLength <= 0 {
		maxLength = defaultURLMaxLength
	}

	return &URL{
		schemes:   schemes,
		maxLength: maxLength,
		message:   o.messageOr(defaultURLMessage),
		code:      o.codeOr(CodeInvalid),
	}
}

// Validate checks that value is a well-formed URL with an allowed scheme.
func (v *URL) Validate(value string) error {
	fail := func() error {
		return newError(v.code, v.message, map[string]any{"value": value})
	}

	if value == "" || utf8.RuneCountInString(value) > v.maxLength {
		return fail()
	}

	scheme, _, found := strings.Cut(value, "://")
	if !found || !v.allowedScheme(scheme) {
		return fail()
	}

	if !urlRegex.MatchString(value) {
		return fail()
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return fail()
	}

	host := parsed.Hostname()
	if host == "" || utf8.RuneCountInString(host) > maxHostnameLength {
		return fail()
	}

	// The pattern is loose about what goes inside IPv6 brackets; verify the
	// literal actually parses.
	if strings.HasPrefix(parsed.Host, "[") {
		if _, err := netip.ParseAddr(host); err != nil {
			return fail()
		}
	}

	return nil
}

func (v *URL) allowedScheme(scheme string) bool {
	for _, allowed := range v.schemes {
		if strings.EqualFold(scheme, allowed) {
			return true
		}
	}
	return false
}
