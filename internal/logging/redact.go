package logging

import "regexp"

type redaction struct {
	pattern     *regexp.Regexp
	replacement string
}

var redactions = []redaction{
	{regexp.MustCompile(`(?i)password['":\s]*[^\s,;]{3,}`), "***"},
	{regexp.MustCompile(`(?i)token['":\s]*[^\s,;]{3,}`), "***"},
	{regexp.MustCompile(`(?i)api[_-]?key['":\s]*[^\s,;]{3,}`), "***"},
	{regexp.MustCompile(`(?i)secret['":\s]*[^\s,;]{3,}`), "***"},
	{regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[a-zA-Z0-9.\-]+\b`), "[EMAIL]"},
	{regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`), "[PHONE]"},
}

// Redact masks credentials, e-mail addresses and phone numbers in s.
func Redact(s string) string {
	for _, r := range redactions {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return s
}
