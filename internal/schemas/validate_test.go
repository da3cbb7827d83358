package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobRequirement_Valid(t *testing.T) {
	doc := []byte(`{
		"title": "Senior Software Engineer",
		"company": "Acme Corp",
		"required_skills": ["Go", "PostgreSQL"],
		"preferred_skills": ["Kubernetes"],
		"min_years": 5,
		"level": "senior",
		"location": "Remote",
		"requires_degree": true,
		"salary_range": {"min": 150000, "max": 190000, "currency": "USD"}
	}`)

	assert.NoError(t, ValidateJobRequirement(doc))
}

func TestValidateJobRequirement_MissingTitle(t *testing.T) {
	err := ValidateJobRequirement([]byte(`{"company": "Acme Corp"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "title")
}

func TestValidateJobRequirement_CollectsAllFailures(t *testing.T) {
	err := ValidateJobRequirement([]byte(`{
		"title": "",
		"min_years": -2,
		"unknown_field": true
	}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 3)
}

func TestValidateJobRequirement_MalformedJSON(t *testing.T) {
	err := ValidateJobRequirement([]byte(`{not json`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
