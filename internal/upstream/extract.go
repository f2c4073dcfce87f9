package upstream

import (
	"strings"

	"github.com/tidwall/gjson"
)

// NoTextFallback is returned whenever a response carries no usable text.
// Absence of text is a value, not an error.
const NoTextFallback = "[no text output in model response]"

// textSeparator joins consecutive output_text entries in the reply.
const textSeparator = "\n\n"

// ExtractText flattens the message items of a validated response into a
// single reply string. Pure and total: reasoning and web_search_call items
// never surface, unknown content kinds contribute nothing, and the sentinel
// covers the no-text case.
func ExtractText(items []OutputItem) string {
	var parts []string
	for _, item := range items {
		switch item.Type {
		case itemMessage:
			for _, c := range item.Content {
				if c.Type == contentOutputText {
					parts = append(parts, c.Text)
				}
			}
		case itemReasoning, itemWebSearch:
			// opaque to the caller
		}
	}
	return joinOrFallback(parts)
}

// ExtractRaw is the lenient path used when schema validation fails: it walks
// the raw JSON with gjson and recovers whatever message text is structurally
// present, with the same ordering and sentinel semantics as ExtractText.
func ExtractRaw(raw []byte) string {
	var parts []string
	gjson.GetBytes(raw, "output").ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() != itemMessage {
			return true
		}
		item.Get("content").ForEach(func(_, c gjson.Result) bool {
			if c.Get("type").String() == contentOutputText {
				if text := c.Get("text"); text.Type == gjson.String {
					parts = append(parts, text.String())
				}
			}
			return true
		})
		return true
	})
	return joinOrFallback(parts)
}

func joinOrFallback(parts []string) string {
	joined := strings.Join(parts, textSeparator)
	if joined == "" {
		return NoTextFallback
	}
	return joined
}
