package detect

import (
	"encoding/json"
	"errors"
	"fmt"

	"thermal-sense/api/internal/util"
)

var errEmptyReply = errors.New("empty model reply")

// ParseItems recovers the detection list from the model's free-form reply.
// It is a pure function of text.
func ParseItems(text string) ([]Item, error) {
	body := util.StripCodeFences(text)
	if body == "" {
		return nil, errEmptyReply
	}
	if body[0] != '[' {
		return nil, fmt.Errorf("expected a JSON list, got %q", util.Truncate(body, 40))
	}
	var items []Item
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, fmt.Errorf("bad JSON: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
