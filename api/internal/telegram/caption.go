package telegram

import (
	"fmt"
	"strings"

	"thermal-sense/api/internal/detect"
	"thermal-sense/api/internal/util"
)

// maxCaption is Telegram's photo caption limit.
const maxCaption = 1024

func isHot(it detect.Item, threshold float64) bool { return it.Temp > threshold }

// FormatCaption renders one line per item: "Cup | 42.5°C 🔥 HOT".
func FormatCaption(items []detect.Item, threshold float64) string {
	if len(items) == 0 {
		return "No cups found."
	}
	var b strings.Builder
	hot := 0
	for _, it := range items {
		label := strings.TrimSpace(it.Label)
		if label == "" {
			label = "cup"
		}
		fmt.Fprintf(&b, "%s | %.1f°C", label, it.Temp)
		if isHot(it, threshold) {
			b.WriteString(" 🔥 HOT")
			hot++
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n%d found, %d above %.1f°C", len(items), hot, threshold)

	s := b.String()
	if len(s) > maxCaption {
		s = util.CutUTF8(s, maxCaption-len("…")) + "…"
	}
	return s
}
