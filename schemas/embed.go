// Package schemas carries the JSON Schema documents shipped with the
// binary. Schemas are embedded so validation works regardless of the
// working directory the server or CLI is started from.
package schemas

import _ "embed"

// JobRequirement is the schema applied to job requirement documents
// before they reach the match scorer.
//
//go:embed job_requirement.schema.json
var JobRequirement []byte
