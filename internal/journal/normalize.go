package journal

import (
	"regexp"
	"strings"
)

var (
	// slashWhitespacePattern matches runs of slashes or whitespace
	slashWhitespacePattern = regexp.MustCompile(`[/\s]+`)

	// unsafeCharPattern matches characters unsafe on common filesystems
	unsafeCharPattern = regexp.MustCompile(`[<>:"|?*\\]`)

	// hyphenRunPattern matches runs of hyphens
	hyphenRunPattern = regexp.MustCompile(`-+`)
)

// NormalizeBranch derives a filesystem-safe folder name component from a raw
// branch name. The order matters:
// 1. Replace runs of slashes and whitespace with a single hyphen
// 2. Strip unsafe filesystem characters
// 3. Collapse runs of hyphens
// 4. Trim leading/trailing hyphens
// The result is deterministic and idempotent, and may be empty when the
// input consists only of unsafe characters.
func NormalizeBranch(branch string) string {
	s := slashWhitespacePattern.ReplaceAllString(branch, "-")
	s = unsafeCharPattern.ReplaceAllString(s, "")
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
