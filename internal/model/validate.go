package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema string

//go:embed schema/job.schema.json
var jobSchema string

// ValidateResumePayload checks an inbound resume body against the resume
// schema. Returns a descriptive error listing every violation.
func ValidateResumePayload(m map[string]any) error {
	return validateAgainst(resumeSchema, m)
}

// ValidateJobPayload checks an inbound job posting body against the job schema.
func ValidateJobPayload(m map[string]any) error {
	return validateAgainst(jobSchema, m)
}

func validateAgainst(schema string, m map[string]any) error {
	res, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
