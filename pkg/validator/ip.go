package validator

import "net/netip"

type ipKind int

const (
	ipAny ipKind = iota
	ipV4
	ipV6
)

// IPAddress validates textual IP addresses in IPv4, IPv6, or either form.
type IPAddress struct {
	kind    ipKind
	message string
	code    string
}

// NewIPv4 builds a validator accepting only IPv4 dotted-quad addresses.
// Honored options: WithMessage, WithCode.
func NewIPv4(opts ...Option) *IPAddress {
	o := newOptions(opts)
	return &IPAddress{
		kind:    ipV4,
		message: o.messageOr("Enter a valid IPv4 address."),
		code:    o.codeOr(CodeInvalid),
	}
}

// NewIPv6 builds a validator accepting only IPv6 addresses.
// Honored options: WithMessage, WithCode.
func NewIPv6(opts ...Option) *IPAddress {
	o := newOptions(opts)
	return &IPAddress{
		kind:    ipV6,
		message: o.messageOr("Enter a valid IPv6 address."),
		code:    o.codeOr(CodeInvalid),
	}
}

// NewIPAddress builds a validator accepting IPv4 or IPv6 addresses.
// Honored options: WithMessage, WithCode.
func NewIPAddress(opts ...Option) *IPAddress {
	o := newOptions(opts)
	return &IPAddress{
		kind:    ipAny,
		message: o.messageOr("Enter a valid IPv4 or IPv6 address."),
		code:    o.codeOr(CodeInvalid),
	}
}

// Validate checks that value parses as an IP address of the configured kind.
func (v *IPAddress) Validate(value string) error {
	addr, err := netip.ParseAddr(value)
	ok := err == nil
	if ok {
		switch v.kind {
		case ipV4:
			ok = addr.Is4()
		case ipV6:
			ok = addr.Is6()
		}
	}
	if !ok {
		return newError(v.code, v.message, map[string]any{"value": value})
	}
	return nil
}

// NewCommaSeparatedIntegerList builds a validator for strings of decimal
// integers separated by single commas, e.g. "1,22,333".
// Honored options: WithMessage, WithCode.
func NewCommaSeparatedIntegerList(opts ...Option) *Regex {
	merged := append([]Option{
		WithMessage("Enter only digits separated by commas."),
	}, opts...)
	return MustRegex(`^[0-9]+(?:,[0-9]+)*$`, merged...)
}
