// Package identifier canonicalizes legislative bill identifiers and decides
// whether a free-text query names a bill or should be searched.
package identifier

import (
	"regexp"
	"strings"
)

var (
	// Joint resolutions with a letter suffix ("SJR A", "HJRB").
	jointResolution = regexp.MustCompile(`(SJR|HJR)\s*([A-Z]+)`)
	// Letter prefix, optional spaces, leading zeros, then the numeric part.
	prefixedNumber = regexp.MustCompile(`([A-Z]*)\s*0*([-\d]+)`)
)

// Normalize rewrites a bill identifier to its canonical form: a single space
// between the letter prefix and the number, leading zeros dropped. Case is
// preserved and the function is idempotent. Input with no numeric part is
// returned trimmed.
func Normalize(raw string) string {
	if loc := jointResolution.FindStringSubmatchIndex(raw); loc != nil {
		return strings.TrimSpace(replaceFirst(jointResolution, raw, loc))
	}
	if loc := prefixedNumber.FindStringSubmatchIndex(raw); loc != nil {
		return strings.TrimSpace(replaceFirst(prefixedNumber, raw, loc))
	}
	return strings.TrimSpace(raw)
}

func replaceFirst(re *regexp.Regexp, s string, loc []int) string {
	var out []byte
	out = append(out, s[:loc[0]]...)
	out = re.ExpandString(out, "$1 $2", s, loc)
	out = append(out, s[loc[1]:]...)
	return string(out)
}
