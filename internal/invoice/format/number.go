package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var copySuffixRe = regexp.MustCompile(`-copy(?:-(\d+))?$`)

// DuplicateNumber derives the invoice number for a duplicated invoice.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
//
// "INV-1" becomes "INV-1-copy", "INV-1-copy" becomes "INV-1-copy-2",
// and the counter keeps incrementing on repeated duplication.
func DuplicateNumber(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return "copy"
	}

	match := copySuffixRe.FindStringSubmatch(trimmed)
	if match == nil {
		return trimmed + "-copy"
	}

	base := trimmed[:len(trimmed)-len(match[0])]
	n := 1
	if match[1] != "" {
		if parsed, err := strconv.Atoi(match[1]); err == nil {
			n = parsed
		}
	}
	return fmt.Sprintf("%s-copy-%d", base, n+1)
}
