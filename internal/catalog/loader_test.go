package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/scoring"
)

const sampleJSON = `{
  "questionnaire": {
    "id": "sample",
    "title": "Sample Assessment",
    "sections": [
      {
        "id": "fit",
        "title": "Fit",
        "scoreWeight": 40,
        "questions": [
          {"id": "q1", "type": "scale", "prompt": "I enjoy this."},
          {"id": "q2", "type": "multiple-choice", "prompt": "Pick one.", "options": ["a", "b"]}
        ]
      }
    ]
  },
  "scoring": {
    "tiers": [
      {"min_score": 75, "recommendation": "yes", "reason": "strong"},
      {"min_score": 0, "recommendation": "no", "reason": "weak", "next_steps": ["explore"]}
    ],
    "axes": [
      {"key": "w", "label": "Will", "blend": {"fit": 1}}
    ],
    "aggregate": {"fit": 1},
    "careers": [
      {"role": "Analyst", "skill_level": "Entry", "floor": 50, "offset": 10}
    ]
  }
}`

const sampleYAML = `questionnaire:
  id: sample
  title: Sample Assessment
  sections:
    - id: fit
      title: Fit
      scoreWeight: 40
      questions:
        - id: q1
          type: scale
          prompt: I enjoy this.
        - id: q2
          type: multiple-choice
          prompt: Pick one.
          options: [a, b]
scoring:
  tiers:
    - min_score: 75
      recommendation: "yes"
      reason: strong
    - min_score: 0
      recommendation: "no"
      reason: weak
      next_steps: [explore]
  axes:
    - key: w
      label: Will
      blend:
        fit: 1
  aggregate:
    fit: 1
  careers:
    - role: Analyst
      skill_level: Entry
      floor: 50
      offset: 10
`

func TestParse_JSON(t *testing.T) {
	def, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	qn := def.Questionnaire
	assert.Equal(t, "sample", qn.ID)
	require.Len(t, qn.Sections, 1)
	assert.Equal(t, 40.0, qn.Sections[0].ScoreWeight)
	assert.Equal(t, 2, qn.QuestionCount())

	// Defaults filled in for the bare scale question.
	q1 := qn.QuestionByID("q1")
	require.NotNil(t, q1)
	assert.Equal(t, assessment.DefaultScaleMin, q1.Min)
	assert.Equal(t, assessment.DefaultScaleMax, q1.Max)
	assert.Equal(t, assessment.DefaultWeight, q1.Weight)

	require.Len(t, def.Scoring.Tiers, 2)
	assert.Equal(t, scoring.RecommendYes, def.Scoring.Tiers[0].Recommendation)
	require.Len(t, def.Scoring.Axes, 1)
	assert.Equal(t, map[string]float64{"fit": 1}, def.Scoring.Axes[0].Blend)
	require.Len(t, def.Scoring.Careers, 1)
	assert.Equal(t, 50, def.Scoring.Careers[0].Floor)
}

func TestParse_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Questionnaire, fromYAML.Questionnaire)
	assert.Equal(t, fromJSON.Scoring, fromYAML.Scoring)
}

func TestParse_SchemaRejections(t *testing.T) {
	cases := map[string]string{
		"unknown question type": `{
  "questionnaire": {"id": "x", "title": "X", "sections": [
    {"id": "s", "questions": [{"id": "q", "type": "freeform", "prompt": "p"}]}
  ]},
  "scoring": {"tiers": [{"min_score": 0, "recommendation": "no"}]}
}`,
		"missing tiers": `{
  "questionnaire": {"id": "x", "title": "X", "sections": [
    {"id": "s", "questions": [{"id": "q", "type": "scale", "prompt": "p"}]}
  ]},
  "scoring": {}
}`,
		"bad recommendation": `{
  "questionnaire": {"id": "x", "title": "X", "sections": [
    {"id": "s", "questions": [{"id": "q", "type": "scale", "prompt": "p"}]}
  ]},
  "scoring": {"tiers": [{"min_score": 0, "recommendation": "definitely"}]}
}`,
		"sections not an array": `{
  "questionnaire": {"id": "x", "title": "X", "sections": {}},
  "scoring": {"tiers": [{"min_score": 0, "recommendation": "no"}]}
}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestParse_StructuralRejection(t *testing.T) {
	// Passes the schema but trips model validation: duplicate question
	// IDs live across sections, which the schema cannot see.
	doc := `{
  "questionnaire": {"id": "x", "title": "X", "sections": [
    {"id": "s1", "questions": [{"id": "q", "type": "scale", "prompt": "p"}]},
    {"id": "s2", "questions": [{"id": "q", "type": "scale", "prompt": "p"}]}
  ]},
  "scoring": {"tiers": [{"min_score": 0, "recommendation": "no"}]}
}`
	_, err := Parse([]byte(doc), FormatJSON)
	var verr *assessment.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParse_MalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`{"questionnaire": `), FormatJSON)
	assert.Error(t, err)
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "def.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o644))
	yamlPath := filepath.Join(dir, "def.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON.Questionnaire, fromYAML.Questionnaire)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	def := Default()
	require.NoError(t, def.Questionnaire.Validate())

	assert.Equal(t, "data-science", def.Questionnaire.ID)
	assert.Len(t, def.Questionnaire.Sections, 3)
	assert.Equal(t, 20, def.Questionnaire.QuestionCount())
	assert.Len(t, def.Scoring.Tiers, 3)
	assert.Len(t, def.Scoring.Axes, 6)
	assert.NotEmpty(t, def.Scoring.Careers)

	// Every axis blend and the aggregate blend must reference real
	// sections, or scoring would silently treat them as zero.
	ids := make(map[string]bool)
	for _, sec := range def.Questionnaire.Sections {
		ids[sec.ID] = true
	}
	for _, axis := range def.Scoring.Axes {
		for id := range axis.Blend {
			assert.True(t, ids[id], "axis %s references unknown section %s", axis.Key, id)
		}
	}
	for id := range def.Scoring.Aggregate {
		assert.True(t, ids[id], "aggregate references unknown section %s", id)
	}
}
