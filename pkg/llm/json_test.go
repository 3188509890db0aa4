package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventsEnvelope struct {
	Events []struct {
		EventName string `json:"EventName"`
	} `json:"events"`
}

func TestDecodeJSON_Raw(t *testing.T) {
	var out eventsEnvelope
	err := DecodeJSON(`{"events": [{"EventName": "Rally"}]}`, &out)
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "Rally", out.Events[0].EventName)
}

func TestDecodeJSON_Fenced(t *testing.T) {
	reply := "Here is the result:\n```json\n{\"events\": [{\"EventName\": \"Rally\"}]}\n```\nDone."
	var out eventsEnvelope
	err := DecodeJSON(reply, &out)
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
}

func TestDecodeJSON_FenceWithoutTag(t *testing.T) {
	reply := "```\n{\"events\": []}\n```"
	var out eventsEnvelope
	require.NoError(t, DecodeJSON(reply, &out))
	assert.NotNil(t, out.Events)
}

func TestDecodeJSON_EmbeddedObject(t *testing.T) {
	reply := `The extraction found one event. {"events": [{"EventName": "March {braces} inside"}]} Let me know.`
	var out eventsEnvelope
	err := DecodeJSON(reply, &out)
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "March {braces} inside", out.Events[0].EventName)
}

func TestDecodeJSON_BracesInsideStrings(t *testing.T) {
	reply := `prefix {"name": "open { but never closed in string", "ok": true} suffix`
	var out map[string]any
	err := DecodeJSON(reply, &out)
	require.NoError(t, err)
	assert.Equal(t, true, out["ok"])
}

func TestDecodeJSON_BareArray(t *testing.T) {
	reply := `Result: [{"EventName": "Rally"}]`
	var out []struct {
		EventName string `json:"EventName"`
	}
	err := DecodeJSON(reply, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestDecodeJSON_NoPayload(t *testing.T) {
	var out eventsEnvelope
	err := DecodeJSON("I could not find any events in this batch.", &out)
	assert.Error(t, err)
}
