package intents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsText(t *testing.T) {
	params := Params{
		"programId": "  25 ",
		"faculty":   []any{"Engineering", "Science"},
		"level":     float64(3),
		"empty":     "",
	}

	assert.Equal(t, "25", params.Text("programId"))
	assert.Equal(t, "Engineering", params.Text("faculty"))
	assert.Equal(t, "3", params.Text("level"))
	assert.Equal(t, "", params.Text("missing"))

	// Alias keys are tried in order until one yields a value.
	assert.Equal(t, "25", params.Text("empty", "programId"))
}

func TestParamsTextIgnoresUnsupportedShapes(t *testing.T) {
	params := Params{
		"object": map[string]any{"nested": "value"},
		"list":   []any{},
	}

	assert.Equal(t, "", params.Text("object"))
	assert.Equal(t, "", params.Text("list"))
}

func TestProgramIDsFromList(t *testing.T) {
	params := Params{"programIds": []any{float64(1), float64(2)}}
	assert.Equal(t, []int64{1, 2}, params.ProgramIDs())
}

func TestProgramIDsFromSingleValue(t *testing.T) {
	params := Params{"programIds": "7"}
	assert.Equal(t, []int64{7}, params.ProgramIDs())
}

func TestProgramIDsFromPair(t *testing.T) {
	params := Params{"programId1": "3", "programId2": float64(9)}
	assert.Equal(t, []int64{3, 9}, params.ProgramIDs())
}

func TestProgramIDsDiscardsInvalidCandidates(t *testing.T) {
	params := Params{"programIds": []any{"abc", "-4", "0", "", float64(5)}}
	assert.Equal(t, []int64{5}, params.ProgramIDs())
}

func TestProgramIDsEmptyWhenNothingSupplied(t *testing.T) {
	assert.Empty(t, Params{}.ProgramIDs())

	// A lone pair key is not enough.
	assert.Empty(t, Params{"programId1": "3"}.ProgramIDs())
}
