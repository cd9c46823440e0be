package respond

import "regexp"

// Credential shapes that must never leak into a response body. Order
// matters: `sk-ant-` keys also match the broader `sk-` pattern, so the
// Anthropic rule runs first.
var credentialMasks = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`), "sk-ant-****"},
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`), "sk-****"},
	// password inside a DSN
	{regexp.MustCompile(`://([^:]+):([^@]+)@`), "://$1:****@"},
}

// SanitizeError returns the error message with credentials masked out.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, m := range credentialMasks {
		msg = m.pattern.ReplaceAllString(msg, m.replacement)
	}
	return msg
}
