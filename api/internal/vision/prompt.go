package vision

const (
	// CoordScale is the square coordinate space the model is asked to use.
	// It is advisory: boxes are passed through without validation.
	CoordScale = 1000

	MaxTokens        = 500
	Temperature      = 0.1
	DefaultImageMIME = "image/jpeg"
)

type Prompt struct {
	Text        string
	ImageB64    string
	MIME        string
	MaxTokens   int
	Temperature float32
}

const detectInstruction = `Find all cups in this image.
For every cup return its bounding box as [x, y, w, h]: x, y is the top-left corner, w is the width and h is the height.
All coordinates are normalized to a 1000x1000 space where (0, 0) is the top-left and (1000, 1000) is the bottom-right corner of the image.
Also estimate the temperature of each cup in degrees Celsius from visual heat cues (simulated thermal sensing):
assume about 42C if steam is visible, use condensation, ice or the kind of drink as further hints, and about 22C when nothing suggests heat or cold.
Answer with a JSON list only. No markdown, no explanations, no extra text.
Use exactly this format:
[{"label": "cup", "x": 100, "y": 150, "w": 200, "h": 300, "temp": 42.5}]
If there are no cups, answer with [].`

// DetectPrompt builds the cup/thermal request for one base64 JPEG.
func DetectPrompt(imageB64 string) Prompt {
	return Prompt{
		Text:        detectInstruction,
		ImageB64:    imageB64,
		MIME:        DefaultImageMIME,
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}
