package model

import "strings"

// Address is a normalized contract or account address.
type Address string

// NormalizeAddress lowercases a hex address and strips leading zeros so that
// padded and unpadded forms of the same felt compare equal.
func NormalizeAddress(raw string) Address {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return Address("0x" + s)
}

// String returns the address as a string.
func (a Address) String() string {
	return string(a)
}

// feltHexDigits is the width of a felt in hex digits.
const feltHexDigits = 64

// Padded returns the address as 0x followed by 64 zero-padded hex digits, the
// form the upstream event API keys contracts by.
func (a Address) Padded() string {
	s := strings.TrimPrefix(string(a), "0x")
	if len(s) >= feltHexDigits {
		return "0x" + s
	}
	return "0x" + strings.Repeat("0", feltHexDigits-len(s)) + s
}
