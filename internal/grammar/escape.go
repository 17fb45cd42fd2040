package grammar

import (
	"bytes"

	"braces.dev/errtrace"
)

// Reserved and explicitly excluded characters (RFC 2141 Sections 2.3 and 2.4).
var reservedChars = map[byte]bool{
	'%': true, '/': true, '?': true, '#': true,
	'<': true, '"': true, '&': true, '\\': true,
	'>': true, '[': true, ']': true, '^': true,
	'`': true, '{': true, '|': true, '}': true,
	'~': true,
}

// IsCharReserved reports whether c must be percent-encoded in an NSS.
// The control range, space, DEL and every byte above ASCII fall under
// the rule, so multi-byte UTF-8 sequences get escaped byte by byte.
func IsCharReserved(c byte) bool {
	return c <= 0x20 || c >= 0x7F || reservedChars[c]
}

// Escape escapes s by replacing each reserved char with the hex form
// "% HEXDIG HEXDIG". Hex digits are emitted in lower case.
func Escape[T ~string | ~[]byte](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		if IsCharReserved(s[i]) {
			b.WriteByte('%')
			b.WriteByte(lowerhex[s[i]>>4])
			b.WriteByte(lowerhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Unescape unescapes s by converting each 3-byte encoded substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. Every '%' must start a valid
// escape triplet; a malformed escape is an error. All valid triplets are
// decoded unconditionally, whether the escape was required or not.
func Unescape[T ~string | ~[]byte](s T) (T, error) {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			var zero T
			return zero, errtrace.Wrap(newMalformedInputErr("invalid percent escape at offset %d", i))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return T(b.Bytes()), nil
}

// LCaseOctets lowercases the two hex digits of every "% HEXDIG HEXDIG"
// triplet in s, leaving all other characters untouched. It is idempotent.
func LCaseOctets[T ~string | ~[]byte](s T) T {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte('%')
			b.WriteByte(lhex(s[i+1]))
			b.WriteByte(lhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const lowerhex = "0123456789abcdef"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func lhex(c byte) byte {
	if 'A' <= c && c <= 'F' {
		return c - 'A' + 'a'
	}
	return c
}
