package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResponse_Valid(t *testing.T) {
	raw := []byte(`{
		"id": "resp_1",
		"model": "gpt-5",
		"output": [
			{"type": "reasoning"},
			{"type": "web_search_call", "status": "completed"},
			{"type": "message", "role": "assistant", "content": [
				{"type": "output_text", "text": "hello"}
			]}
		]
	}`)
	resp, err := ValidateResponse(raw)
	require.NoError(t, err)
	require.Len(t, resp.Output, 3)
	assert.Equal(t, "resp_1", resp.ID)
	assert.Equal(t, "hello", resp.Output[2].Content[0].Text)
}

func TestValidateResponse_UnknownOutputKindFails(t *testing.T) {
	raw := []byte(`{"output": [{"type": "hologram"}]}`)
	_, err := ValidateResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestValidateResponse_OutputTextWithoutStringTextFails(t *testing.T) {
	for name, raw := range map[string][]byte{
		"missing text": []byte(`{"output": [{"type": "message", "content": [{"type": "output_text"}]}]}`),
		"numeric text": []byte(`{"output": [{"type": "message", "content": [{"type": "output_text", "text": 3}]}]}`),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateResponse(raw)
			assert.Error(t, err)
		})
	}
}

func TestValidateResponse_UnknownContentKindsPermitted(t *testing.T) {
	raw := []byte(`{
		"output": [{"type": "message", "content": [
			{"type": "refusal", "reason": "policy"},
			{"type": "output_text", "text": "ok"}
		]}]
	}`)
	resp, err := ValidateResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "ok", ExtractText(resp.Output))
}

func TestValidateResponse_MissingOutputFails(t *testing.T) {
	_, err := ValidateResponse([]byte(`{"id": "resp_1"}`))
	assert.Error(t, err)
}

func TestValidateResponse_MalformedJSONFails(t *testing.T) {
	_, err := ValidateResponse([]byte(`{"output": [`))
	assert.Error(t, err)
}
