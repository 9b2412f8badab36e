// Package validator provides a library of small, configurable value
// validators: regex matching, email/domain/URL checks, numeric range and
// length limits, decimal precision, step sizes, file extension allowlists,
// and more.
//
// A validator is built once with its configuration (pattern, limit,
// allowlist, message, code) and then applied to any number of values through
// its Validate method. Success is silent (nil); failure is reported as a
// structured *Error carrying a machine-readable Code, a human-readable
// Message template, and the Params needed to render it. Validators hold no
// mutable state after construction and are safe for concurrent use.
//
// # Core building blocks
//
//   - Error / Errors: structured failures with code, message template, params
//   - Of[T]: the validator contract, Validate(T) error
//   - Apply: runs an ordered validator list, collecting all failures
//   - Limit[T]: fixed or deferred limit, resolved at validation time
//
// # Usage
//
//	emailV := validator.NewEmail()
//	urlV := validator.NewURL(validator.WithSchemes("https"))
//
//	if err := emailV.Validate("a@localhost"); err != nil {
//	    for _, e := range validator.ExtractErrors(err) {
//	        fmt.Println(e.Code, e.Error())
//	    }
//	}
//
//	// A field typically owns an ordered validator list:
//	err := validator.Apply("my-slug",
//	    validator.NewSlug(),
//	    validator.NewMaxLength(50),
//	    validator.NewProhibitNullCharacters(),
//	)
//
// # Configuration vs. validation errors
//
// Misconfiguration (an invalid pattern, flags combined with a precompiled
// pattern, decimal places exceeding max digits) is reported by the New*
// constructors, not raised against a value. Must* variants panic instead,
// for package-level construction where misconfiguration should prevent
// startup.
//
// Validation failures can be localized: pkg/i18n maps failure codes to
// message catalogs and renders them with the failure params.
package validator
