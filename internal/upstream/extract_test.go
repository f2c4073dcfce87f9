package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func messageItem(texts ...string) OutputItem {
	item := OutputItem{Type: itemMessage, Role: "assistant"}
	for _, t := range texts {
		item.Content = append(item.Content, ContentItem{Type: contentOutputText, Text: t})
	}
	return item
}

func TestExtractText_NoMessageItems(t *testing.T) {
	items := []OutputItem{
		{Type: itemReasoning},
		{Type: itemWebSearch, Status: "completed"},
	}
	assert.Equal(t, NoTextFallback, ExtractText(items))
}

func TestExtractText_EmptyOutput(t *testing.T) {
	assert.Equal(t, NoTextFallback, ExtractText(nil))
}

func TestExtractText_JoinsMessagesWithBlankLine(t *testing.T) {
	items := []OutputItem{messageItem("A"), messageItem("B")}
	assert.Equal(t, "A\n\nB", ExtractText(items))
}

func TestExtractText_FlattensContentInOrder(t *testing.T) {
	items := []OutputItem{
		{Type: itemReasoning},
		messageItem("first", "second"),
		{Type: itemWebSearch},
		messageItem("third"),
	}
	assert.Equal(t, "first\n\nsecond\n\nthird", ExtractText(items))
}

func TestExtractText_IgnoresUnknownContentKinds(t *testing.T) {
	items := []OutputItem{{
		Type: itemMessage,
		Content: []ContentItem{
			{Type: "refusal", Text: "nope"},
			{Type: contentOutputText, Text: "yes"},
			{Type: "annotation"},
		},
	}}
	assert.Equal(t, "yes", ExtractText(items))
}

func TestExtractText_AllContentFilteredOut(t *testing.T) {
	items := []OutputItem{{
		Type:    itemMessage,
		Content: []ContentItem{{Type: "refusal", Text: "nope"}},
	}}
	assert.Equal(t, NoTextFallback, ExtractText(items))
}

func TestExtractText_Idempotent(t *testing.T) {
	items := []OutputItem{messageItem("A"), messageItem("B")}
	first := ExtractText(items)
	second := ExtractText(items)
	assert.Equal(t, first, second)
}

func TestExtractRaw_RecoversTextDespiteUnknownItemKinds(t *testing.T) {
	// This payload fails schema validation (unknown output kind), but the
	// message text is structurally intact and must survive.
	raw := []byte(`{
		"output": [
			{"type": "mystery_item", "payload": 42},
			{"type": "message", "content": [{"type": "output_text", "text": "recovered"}]}
		]
	}`)
	assert.Equal(t, "recovered", ExtractRaw(raw))
}

func TestExtractRaw_NoText(t *testing.T) {
	raw := []byte(`{"output": [{"type": "reasoning"}]}`)
	assert.Equal(t, NoTextFallback, ExtractRaw(raw))
}

func TestExtractRaw_SkipsNonStringText(t *testing.T) {
	raw := []byte(`{
		"output": [
			{"type": "message", "content": [{"type": "output_text", "text": 7}]},
			{"type": "message", "content": [{"type": "output_text", "text": "ok"}]}
		]
	}`)
	assert.Equal(t, "ok", ExtractRaw(raw))
}

func TestExtractRaw_MatchesExtractTextOnValidPayload(t *testing.T) {
	raw := []byte(`{
		"output": [
			{"type": "message", "content": [{"type": "output_text", "text": "A"}]},
			{"type": "message", "content": [{"type": "output_text", "text": "B"}]}
		]
	}`)
	resp, err := ValidateResponse(raw)
	assert.NoError(t, err)
	assert.Equal(t, ExtractText(resp.Output), ExtractRaw(raw))
}
