package grammar

// MinNIDLength8141 is the lower bound on NID length from RFC 8141 Section 2.
const MinNIDLength8141 = 2

// IsNID8141 checks the NID rule from RFC 8141 Section 2:
// 2 to 32 characters, leading and trailing alphanumeric,
// interior alphanumeric or hyphen.
func IsNID8141[T ~string | ~[]byte](s T) bool {
	if len(s) < MinNIDLength8141 || len(s) > MaxNIDLength {
		return false
	}
	if !IsAlphanumChar(s[0]) || !IsAlphanumChar(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !IsNIDChar(s[i]) {
			return false
		}
	}
	return true
}

// IsInformalNID checks whether a NID matches the informal namespace
// pattern "urn-<number>" from RFC 8141 Section 5.2.
func IsInformalNID[T ~string | ~[]byte](s T) bool {
	if len(s) < 5 {
		return false
	}
	if !(s[0] == 'u' || s[0] == 'U') ||
		!(s[1] == 'r' || s[1] == 'R') ||
		!(s[2] == 'n' || s[2] == 'N') ||
		s[3] != '-' {
		return false
	}
	return '1' <= s[4] && s[4] <= '9'
}

// HasFormalExclusionPrefix checks whether a NID starts with one of the
// prefixes excluded from the formal namespace set by RFC 8141 Section 5.1:
// two letters followed by one or two hyphens, or "X-".
func HasFormalExclusionPrefix[T ~string | ~[]byte](s T) bool {
	if len(s) >= 2 && (s[0] == 'x' || s[0] == 'X') && s[1] == '-' {
		return true
	}
	return len(s) >= 3 && isAlphaChar(s[0]) && isAlphaChar(s[1]) && s[2] == '-'
}

func isAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

var nssExtraChars8141 = map[byte]bool{
	'/': true, '?': true, '~': true, '&': true,
}

// IsNSSChar8141 checks a single unescaped NSS character against RFC 8141
// Section 2: the RFC 2141 set extended with '/', '?', '~' and '&'.
func IsNSSChar8141(c byte) bool { return nssExtraChars8141[c] || IsNSSChar2141(c) }

// IsNSS8141 validates a URL-encoded NSS literal against RFC 8141 Section 2.
func IsNSS8141[T ~string | ~[]byte](s T) bool {
	return isNSS(s, IsNSSChar8141)
}
