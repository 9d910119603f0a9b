package detect

import "net/http"

type Request struct {
	Image   string `json:"image"`
	LLMName string `json:"llm_name,omitempty"`
}

// Item is one detected cup: top-left x, y, width w, height h in the prompt's
// 1000x1000 space and an estimated temperature in °C.
type Item struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Temp  float64 `json:"temp"`
}

const (
	MsgSuccess          = "Detection successful"
	MsgMethodNotAllowed = "Method not allowed"
	MsgNoImage          = "No image provided"
	MsgParseFailed      = "Failed to parse AI response"
	msgProviderPrefix   = "Provider API Error: "
)

// Outcome is the result of one pipeline run. Err == nil means success;
// an Err of KindParse is a soft success carrying Raw for debugging.
type Outcome struct {
	Status  int
	Items   []Item
	Message string
	Raw     string
	Err     *Error
}

type successBody struct {
	Items   []Item `json:"items"`
	Message string `json:"message"`
}

type degradedBody struct {
	Items    []Item `json:"items"`
	DebugRaw string `json:"debug_raw"`
	Error    string `json:"error"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Body is the JSON shape sent to the caller.
func (o Outcome) Body() any {
	items := o.Items
	if items == nil {
		items = []Item{}
	}
	switch {
	case o.Err == nil:
		return successBody{Items: items, Message: o.Message}
	case o.Err.Kind == KindParse:
		return degradedBody{Items: items, DebugRaw: o.Raw, Error: o.Err.Message}
	default:
		return errorBody{Error: o.Err.Message}
	}
}

func fail(e *Error) Outcome {
	return Outcome{Status: e.Status, Err: e}
}

func success(items []Item) Outcome {
	return Outcome{Status: http.StatusOK, Items: items, Message: MsgSuccess}
}
