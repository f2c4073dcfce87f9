package upstream

// Response is the upstream completion envelope: an ordered list of output
// items. Only fields the extractor relies on are decoded.
type Response struct {
	ID     string       `json:"id"`
	Model  string       `json:"model"`
	Output []OutputItem `json:"output"`
}

// Output items form a closed set of kinds. Reasoning and tool-activity items
// are opaque and never surface in a reply; anything outside the set fails
// schema validation.
const (
	itemMessage   = "message"
	itemReasoning = "reasoning"
	itemWebSearch = "web_search_call"
)

const contentOutputText = "output_text"

// OutputItem is one entry of the response's tagged union.
type OutputItem struct {
	Type    string        `json:"type"`
	Role    string        `json:"role,omitempty"`
	Status  string        `json:"status,omitempty"`
	Content []ContentItem `json:"content,omitempty"`
}

// ContentItem is one ordered content entry of a message item. Kinds other
// than output_text (annotations, refusals) contribute nothing to the reply.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
