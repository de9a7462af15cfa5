package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchedField(t *testing.T) {
	var data ParsedData

	_, ok := data.MatchedField(FieldName)
	assert.False(t, ok, "no provenance recorded yet")

	data.SetMatched(FieldName, true)
	data.SetMatched(FieldEmail, false)

	matched, ok := data.MatchedField(FieldName)
	assert.True(t, ok)
	assert.True(t, matched)

	matched, ok = data.MatchedField(FieldEmail)
	assert.True(t, ok)
	assert.False(t, matched)

	_, ok = data.MatchedField(FieldPhone)
	assert.False(t, ok)
}

func TestProgressJSONShape(t *testing.T) {
	encoded, err := json.Marshal(Progress{Step: "Loading PDF document", Percent: 5, Confidence: 1.0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":"Loading PDF document","progress":5,"confidence":1.0}`, string(encoded))
}

func TestParsedDataJSONFieldNames(t *testing.T) {
	data := ParsedData{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Experience: []ExperienceEntry{
			{ID: "exp-1", StartDate: "2019", EndDate: "2022"},
		},
		SocialLinks: []string{"github.com/jane"},
	}
	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	assert.Contains(t, string(encoded), `"start_date":"2019"`)
	assert.Contains(t, string(encoded), `"end_date":"2022"`)
	assert.Contains(t, string(encoded), `"social_links"`)
	assert.NotContains(t, string(encoded), `"matched"`, "empty provenance map must be omitted")
}
