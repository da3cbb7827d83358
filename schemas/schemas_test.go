package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestJobRequirementSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal(JobRequirement, &v)
	require.NoError(t, err, "embedded schema should be valid JSON")
}

func TestJobRequirementSchema_Compiles(t *testing.T) {
	loader := gojsonschema.NewBytesLoader(JobRequirement)
	_, err := gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "embedded schema should compile as a JSON Schema")
}
