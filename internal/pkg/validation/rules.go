package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Username pattern - lowercase letters, digits, dots and dashes
	UsernamePattern = `^[a-z0-9.\-_]{3,32}$`

	// Course code pattern - e.g. CSE1305
	CourseCodePattern = `^[A-Z]{2,4}\d{3,4}$`

	// Quarter pattern - academic year dot quarter index, e.g. 2026.1
	QuarterPattern = `^\d{4}\.[1-4]$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username   *regexp.Regexp
	CourseCode *regexp.Regexp
	Quarter    *regexp.Regexp
}{
	Username:   regexp.MustCompile(UsernamePattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
	Quarter:    regexp.MustCompile(QuarterPattern),
}

// ValidUsername reports whether s is an acceptable username.
func ValidUsername(s string) bool {
	return CompiledPatterns.Username.MatchString(s)
}

// ValidCourseCode reports whether s is an acceptable course code.
func ValidCourseCode(s string) bool {
	return CompiledPatterns.CourseCode.MatchString(s)
}

// ValidQuarter reports whether s is an acceptable quarter identifier.
func ValidQuarter(s string) bool {
	return CompiledPatterns.Quarter.MatchString(s)
}
