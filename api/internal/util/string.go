package util

import "strings"

const fence = "```"

// StripCodeFences pulls a JSON payload out of a Markdown-wrapped model reply.
//
// Order: a "```json" block wins; otherwise the first "```" pair is used;
// otherwise the text itself. An unterminated fence runs to the end of the
// text. Only the first block is ever considered.
func StripCodeFences(s string) string {
	if body, ok := jsonFence(s); ok {
		s = untilFence(body)
	} else if i := strings.Index(s, fence); i >= 0 {
		s = dropInfoString(untilFence(s[i+len(fence):]))
	}
	return strings.TrimSpace(s)
}

// jsonFence finds the first fence tagged exactly "json" and returns the text
// after its opening line. "```jsonc" or "```json5" are not json tags.
func jsonFence(s string) (string, bool) {
	const open = fence + "json"
	for off := 0; ; {
		i := strings.Index(s[off:], open)
		if i < 0 {
			return "", false
		}
		rest := s[off+i+len(open):]
		if rest == "" {
			return "", true
		}
		switch rest[0] {
		case '\n', '\r', ' ', '\t':
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 && !strings.Contains(rest[:nl], fence) {
				return rest[nl+1:], true
			}
			return rest, true
		}
		off += i + len(open)
	}
}

func untilFence(s string) string {
	if j := strings.Index(s, fence); j >= 0 {
		return s[:j]
	}
	return s
}

// dropInfoString removes a language tag such as "javascript" or "JSON"
// left on the opening fence line.
func dropInfoString(s string) string {
	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return s
	}
	tag := strings.TrimSpace(s[:nl])
	if tag == "" || !isInfoString(tag) {
		return s
	}
	return s[nl+1:]
}

func isInfoString(tag string) bool {
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_' || r == '+'):
		default:
			return false
		}
	}
	return true
}

// Truncate cuts s to at most n bytes for log lines, never inside a UTF-8
// sequence.
func Truncate(s string, n int) string {
	if len(s) > n {
		return CutUTF8(s, n) + "..."
	}
	return s
}

// CutUTF8 cuts s to at most n bytes without splitting a UTF-8 sequence.
func CutUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n < 0 {
		n = 0
	}
	for n > 0 && (s[n]&0xC0) == 0x80 {
		n--
	}
	return s[:n]
}
