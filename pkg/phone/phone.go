package phone

import "strings"

// Normalize converts a raw phone number to E.164 using defaultCountryCode
// (digits only, e.g. "256") for national-format input. Returns "" when the
// input cannot be normalized; callers treat that as "no recipient".
//
//	Normalize("0780000000", "256")  -> "+256780000000"
//	Normalize("+256 780-000-000", "256") -> "+256780000000"
//	Normalize("256780000000", "256") -> "+256780000000"
func Normalize(raw, defaultCountryCode string) string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := keepDigits(raw)
	if digits == "" {
		return ""
	}

	if hasPlus {
		return "+" + digits
	}

	cc := keepDigits(defaultCountryCode)

	// National format: drop the trunk zero, prepend the country code.
	if strings.HasPrefix(digits, "0") && cc != "" {
		return "+" + cc + strings.TrimPrefix(digits, "0")
	}

	// Already carries the country code, just missing the plus.
	if cc != "" && strings.HasPrefix(digits, cc) {
		return "+" + digits
	}

	if cc == "" {
		return "+" + digits
	}

	return "+" + cc + digits
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
