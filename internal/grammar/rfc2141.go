package grammar

// MaxNIDLength is the upper bound on NID length shared by both RFCs.
const MaxNIDLength = 32

// IsNIDChar checks the non-leading NID character rule.
func IsNIDChar(c byte) bool { return IsAlphanumChar(c) || c == '-' }

// IsNID2141 checks the NID rule from RFC 2141 Section 2.1:
// 1 to 32 characters, leading alphanumeric, the rest alphanumeric or hyphen.
func IsNID2141[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || len(s) > MaxNIDLength {
		return false
	}
	if !IsAlphanumChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsNIDChar(s[i]) {
			return false
		}
	}
	return true
}

var nssOtherChars2141 = map[byte]bool{
	'(': true, ')': true, '+': true, ',': true,
	'-': true, '.': true, ':': true, '=': true,
	'@': true, ';': true, '$': true, '_': true,
	'!': true, '*': true, '\'': true,
}

// IsNSSChar2141 checks a single unescaped NSS character against
// the <trans> rule from RFC 2141 Section 2.2.
func IsNSSChar2141(c byte) bool { return nssOtherChars2141[c] || IsAlphanumChar(c) }

// IsNSS2141 validates a URL-encoded NSS literal against RFC 2141 Section 2.2:
// one or more allowed characters or "% HEXDIG HEXDIG" escape triplets.
func IsNSS2141[T ~string | ~[]byte](s T) bool {
	return isNSS(s, IsNSSChar2141)
}

func isNSS[T ~string | ~[]byte](s T, isChar func(c byte) bool) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return false
			}
			i += 2
			continue
		}
		if !isChar(s[i]) {
			return false
		}
	}
	return true
}
