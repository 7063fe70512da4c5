package repository

import (
	"testing"

	"golang-ai-analyzer/internal/analyzer/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONContent(t *testing.T) {
	fenced := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONContent(fenced))

	assert.Equal(t, `{"a": 1}`, CleanJSONContent("  {\"a\": 1}  \n"))
	assert.Equal(t, `{"a": 1}`, CleanJSONContent(`{"a": 1}`))
}

func TestParseJSONObject(t *testing.T) {
	obj := ParseJSONObject(`{"action": "BUY", "ai_score": 8}`)
	require.Len(t, obj, 2)
	assert.JSONEq(t, `"BUY"`, string(obj["action"]))

	assert.Empty(t, ParseJSONObject("not json at all"))
	assert.Empty(t, ParseJSONObject(""))
	assert.Empty(t, ParseJSONObject("{}"))
	assert.Empty(t, ParseJSONObject(`["a", "b"]`))
}

func TestDecodeStagePayload(t *testing.T) {
	content := "```json\n" + `{
		"action": "BUY",
		"ai_score": 8.5,
		"reasoning": "strong AI roadmap",
		"key_catalysts": ["c1"],
		"risk_factors": ["r1"]
	}` + "\n```"

	var rec dto.InvestmentRecommendation
	require.True(t, DecodeStagePayload(content, &rec))
	assert.Equal(t, dto.ActionBuy, rec.Action)
	assert.Equal(t, 8.5, rec.AIScore)
	assert.Equal(t, []string{"c1"}, rec.KeyCatalysts)
}

func TestDecodeStagePayloadFailures(t *testing.T) {
	var rec dto.InvestmentRecommendation

	assert.False(t, DecodeStagePayload("garbage", &rec))
	assert.False(t, DecodeStagePayload("{}", &rec))
	assert.False(t, DecodeStagePayload("", &rec))
}
