package recording

import (
	"regexp"
	"strings"
)

// FileExtension is the suffix the TWD runner picks test files up by.
const FileExtension = ".twd.test.ts"

const maxSlugLength = 50

var slugUnsafeRe = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a safe test file name from a test name.
func Filename(testName string) string {
	if strings.TrimSpace(testName) == "" {
		testName = DefaultTestName
	}
	slug := strings.ToLower(strings.TrimSpace(testName))
	slug = slugUnsafeRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
		if i := strings.LastIndex(slug, "-"); i > 0 {
			slug = slug[:i]
		}
	}
	if slug == "" {
		slug = "recorded-test"
	}
	return slug + FileExtension
}
