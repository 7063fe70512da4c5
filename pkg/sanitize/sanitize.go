package sanitize

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for credential validation. They are fatal configuration
// errors and must never be swallowed by stage-level fallbacks.
var (
	ErrCredentialMissing  = errors.New("api key is not set")
	ErrCredentialDash     = errors.New("api key contains em-dash or en-dash characters that break HTTP headers; reset it with a clean ASCII key (avoid copying from documents with smart punctuation)")
	ErrCredentialNonASCII = errors.New("api key contains non-ASCII characters that break HTTP headers; reset it with a clean ASCII key")
)

// smartPunctuation maps common Unicode punctuation to ASCII equivalents.
var smartPunctuation = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
)

// Text converts arbitrary Unicode text to ASCII-safe text. It applies NFKC
// normalization, replaces smart punctuation with ASCII equivalents, and
// escapes any remaining non-ASCII rune as a visible backslash sequence
// instead of dropping it. Text is idempotent.
func Text(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = smartPunctuation.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r <= 0xFF:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xFFFF:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	return b.String()
}

// ValidateCredential checks an API key for characters that corrupt HTTP
// header encoding. Em and en dashes get their own error because they are
// the usual artifact of copying keys out of documents with smart
// punctuation.
func ValidateCredential(key string) error {
	if key == "" {
		return ErrCredentialMissing
	}
	if strings.ContainsAny(key, "—–") {
		return ErrCredentialDash
	}
	for i, r := range key {
		if r > 0x7F {
			return fmt.Errorf("non-ASCII character at position %d: %w", i, ErrCredentialNonASCII)
		}
	}
	return nil
}
