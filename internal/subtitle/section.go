package subtitle

import "strings"

// normalizes line endings to \n and drops a leading byte order mark
func normalizeText(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ExtractSection returns the lines of the section introduced by header: the
// header itself, an empty sentinel line, then every following line up to the
// next bracketed header. Comment lines starting with ';' are skipped. The
// result is nil when header does not occur.
func ExtractSection(text, header string) []string {
	var lines []string
	found := false

	for _, line := range strings.Split(normalizeText(text), "\n") {
		if !found {
			if line == header {
				found = true
				lines = append(lines, line, "")
			}
			continue
		}

		if strings.HasPrefix(line, "[") {
			break
		}
		if strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
