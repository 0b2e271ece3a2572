package journal

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field rewrite patterns. Each keeps the captured label and replaces only
// the value portion of the line; `.` does not cross newlines, so the rest
// of the document is untouchable by construction.
var (
	gitUserPattern     = regexp.MustCompile(`(## Who\s*\n+- Git user: ).*`)
	lastUpdatedPattern = regexp.MustCompile(`(- Last updated: ).*`)
	headPattern        = regexp.MustCompile(`(- HEAD: ).*`)
	branchPattern      = regexp.MustCompile(`(- Branch: ).*`)
)

// detailedLogTitle is the heading the updater inserts log entries under.
const detailedLogTitle = "Detailed log"

// Metadata holds the live values written into an existing journal.
type Metadata struct {
	UserName  string
	Branch    string // raw branch name, rename-safe
	HeadSHA   string
	UpdatedAt time.Time
}

// UpdateMetadata rewrites the volatile metadata fields in journal content:
// the Who section's git user, the last-updated timestamp, the HEAD short
// hash, and the branch name. Everything outside those value spans is
// preserved byte for byte.
func UpdateMetadata(content string, meta Metadata) string {
	content = rewriteField(content, gitUserPattern, meta.UserName)
	content = rewriteField(content, lastUpdatedPattern, meta.UpdatedAt.Format(TimestampLayout))
	content = rewriteField(content, headPattern, meta.HeadSHA)
	content = rewriteField(content, branchPattern, meta.Branch)
	return content
}

// rewriteField replaces the value portion of every match, keeping the
// captured label. The splice is done by offsets rather than a replacement
// template so that values containing $ are inserted literally.
func rewriteField(content string, pattern *regexp.Regexp, value string) string {
	matches := pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		// m[2]:m[3] is the label group; keep it, drop the old value.
		b.WriteString(content[last:m[3]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String()
}

// InsertLogEntry inserts a new dated entry directly under the Detailed log
// heading, ahead of prior entries, so the log reads reverse-chronologically.
// It reports whether an entry was added: when an entry for now's date is
// already present anywhere, or the heading is missing, the content is
// returned unchanged.
func InsertLogEntry(content string, now time.Time, statusSummary string) (string, bool) {
	if strings.Contains(content, "### "+now.Format(DateLayout)) {
		return content, false
	}

	heading := FindHeading(Headings(content), 2, detailedLogTitle)
	if heading == nil {
		return content, false
	}

	// Skip blank lines following the heading so the new entry's own
	// leading blank line doesn't stack up with the template's.
	pos := heading.ContentStart
	for pos < len(content) && content[pos] == '\n' {
		pos++
	}

	return content[:pos] + logEntry(now, statusSummary) + content[pos:], true
}

// logEntry builds a fresh dated entry block with the live status summary
// and narrative placeholders for the operator to fill in.
func logEntry(now time.Time, statusSummary string) string {
	return fmt.Sprintf(`
### %s

**What changed**
- %s

**Why**
- [Fill in the reasoning]

**Where**
- [Key files touched]

**Notes**
- [Additional context]

`, now.Format(TimestampLayout), statusSummary)
}
