package schemas

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

const reportSchemaFile = "analysis_report.schema.json"

func TestReportSchemaIsValidJSON(t *testing.T) {
	data, err := os.ReadFile(reportSchemaFile)
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Contains(t, schema, "$schema")
	assert.Contains(t, schema, "properties")
}

func TestEngineReportValidatesAgainstSchema(t *testing.T) {
	schema, err := os.ReadFile(reportSchemaFile)
	require.NoError(t, err)

	e, err := engine.New()
	require.NoError(t, err)

	report, err := e.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText: "Senior engineer with 8 years of experience. " +
			"Skills: Python, Django, PostgreSQL, Docker, AWS.",
		JobDescription: "Hiring a senior backend developer. " +
			"Requirements: Python, Django, Kubernetes, Terraform experience.",
	})
	require.NoError(t, err)

	doc, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateBytes(schema, doc))
}

func TestSchemaRejectsMalformedReport(t *testing.T) {
	schema, err := os.ReadFile(reportSchemaFile)
	require.NoError(t, err)

	doc := `{
		"id": "not-a-uuid",
		"match": {"matching": [], "gaps": [], "unique": [], "skill_match_percentage": 150},
		"skill_analysis": {"matching_skills": [], "skill_gaps": [], "unique_skills": []},
		"score": {"skill_match_percentage": 0, "semantic_similarity": 0, "experience_level_bonus": 3, "final_score": 0},
		"resume_level": "Wizard",
		"job_level": "Senior",
		"recommendations": [],
		"analyzed_at": "2025-01-01T00:00:00Z",
		"processing_time_ms": 1
	}`

	err = schemas.ValidateBytes(schema, []byte(doc))
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	joined := strings.Join(fields, " ")
	assert.Contains(t, joined, "id")
	assert.Contains(t, joined, "resume_level")
}
