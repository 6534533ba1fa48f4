package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	var payload struct {
		A FlexInt  `json:"a"`
		B FlexInt  `json:"b"`
		C *FlexInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":5,"b":"7","c":null}`), &payload))

	assert.Equal(t, FlexInt(5), payload.A)
	assert.Equal(t, FlexInt(7), payload.B)
	assert.Nil(t, payload.C)
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"five"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFormatAllNeverNil(t *testing.T) {
	out := FormatAll(nil)
	assert.NotNil(t, out)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFormattedShape(t *testing.T) {
	data, err := json.Marshal(Question{ID: 5, Question: "Q", Answer: "A", Category: 4, Difficulty: 2}.Format())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"question":"Q","answer":"A","category":4,"difficulty":2}`, string(data))
}
