// Package catalog loads questionnaire definitions and their scoring
// configuration from JSON or YAML documents, and carries the embedded
// default assessment. Documents pass JSON Schema validation first, then
// the model's structural validation.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/scoring"
)

// Format selects the document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Definition pairs a questionnaire with the scoring configuration the
// engine evaluates against it.
type Definition struct {
	Questionnaire *assessment.Questionnaire
	Scoring       scoring.Config
}

// Load reads and parses a definition file, picking the format from the
// extension (.yaml/.yml vs .json).
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Parse(data, format)
}

// Parse decodes, schema-validates and structurally validates a
// definition document.
func Parse(data []byte, format Format) (*Definition, error) {
	unmarshal := json.Unmarshal
	if format == FormatYAML {
		unmarshal = yaml.Unmarshal
	}

	// Validate the loose shape first so errors point at the document,
	// not at a half-decoded struct.
	var loose any
	if err := unmarshal(data, &loose); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(loose); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	def := doc.toDefinition()
	def.Questionnaire.ApplyDefaults()
	if err := def.Questionnaire.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

var (
	schemaOnce sync.Once
	schemaVal  *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles catalogSchema once. The jsonschema library
// expects a parsed JSON value, so the map literal round-trips through
// encoding/json first.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(catalogSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaVal, schemaErr = c.Compile(url)
	})
	return schemaVal, schemaErr
}

// Wire representation. Field names mirror the serialized form; the
// engine types stay tag-free.

type document struct {
	Questionnaire questionnaireDoc `json:"questionnaire" yaml:"questionnaire"`
	Scoring       scoringDoc       `json:"scoring" yaml:"scoring"`
}

type questionnaireDoc struct {
	ID                string       `json:"id" yaml:"id"`
	Title             string       `json:"title" yaml:"title"`
	Subtitle          string       `json:"subtitle" yaml:"subtitle"`
	Description       string       `json:"description" yaml:"description"`
	Duration          string       `json:"duration" yaml:"duration"`
	WhatIs            string       `json:"what_is" yaml:"what_is"`
	TypicalCareers    []string     `json:"typical_careers" yaml:"typical_careers"`
	WhoShouldConsider []string     `json:"who_should_consider" yaml:"who_should_consider"`
	Sections          []sectionDoc `json:"sections" yaml:"sections"`
}

type sectionDoc struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	ScoreWeight float64       `json:"scoreWeight" yaml:"scoreWeight"`
	Questions   []questionDoc `json:"questions" yaml:"questions"`
}

type questionDoc struct {
	ID       string   `json:"id" yaml:"id"`
	Type     string   `json:"type" yaml:"type"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Category string   `json:"category" yaml:"category"`
	Options  []string `json:"options" yaml:"options"`
	Min      int      `json:"min" yaml:"min"`
	Max      int      `json:"max" yaml:"max"`
	Weight   float64  `json:"weight" yaml:"weight"`
}

type scoringDoc struct {
	Tiers     []tierDoc          `json:"tiers" yaml:"tiers"`
	Axes      []axisDoc          `json:"axes" yaml:"axes"`
	Aggregate map[string]float64 `json:"aggregate" yaml:"aggregate"`
	Careers   []careerDoc        `json:"careers" yaml:"careers"`
}

type tierDoc struct {
	MinScore       int      `json:"min_score" yaml:"min_score"`
	Recommendation string   `json:"recommendation" yaml:"recommendation"`
	Reason         string   `json:"reason" yaml:"reason"`
	NextSteps      []string `json:"next_steps" yaml:"next_steps"`
}

type axisDoc struct {
	Key   string             `json:"key" yaml:"key"`
	Label string             `json:"label" yaml:"label"`
	Blend map[string]float64 `json:"blend" yaml:"blend"`
}

type careerDoc struct {
	Role        string `json:"role" yaml:"role"`
	Description string `json:"description" yaml:"description"`
	SkillLevel  string `json:"skill_level" yaml:"skill_level"`
	Floor       int    `json:"floor" yaml:"floor"`
	Offset      int    `json:"offset" yaml:"offset"`
}

func (d document) toDefinition() *Definition {
	qd := d.Questionnaire
	qn := &assessment.Questionnaire{
		ID:                qd.ID,
		Title:             qd.Title,
		Subtitle:          qd.Subtitle,
		Description:       qd.Description,
		Duration:          qd.Duration,
		WhatIs:            qd.WhatIs,
		TypicalCareers:    qd.TypicalCareers,
		WhoShouldConsider: qd.WhoShouldConsider,
	}
	for _, sd := range qd.Sections {
		sec := assessment.Section{
			ID:          sd.ID,
			Title:       sd.Title,
			Description: sd.Description,
			ScoreWeight: sd.ScoreWeight,
		}
		for _, q := range sd.Questions {
			sec.Questions = append(sec.Questions, assessment.Question{
				ID:       q.ID,
				Type:     assessment.QuestionType(q.Type),
				Prompt:   q.Prompt,
				Category: q.Category,
				Options:  q.Options,
				Min:      q.Min,
				Max:      q.Max,
				Weight:   q.Weight,
			})
		}
		qn.Sections = append(qn.Sections, sec)
	}

	cfg := scoring.Config{Aggregate: d.Scoring.Aggregate}
	for _, t := range d.Scoring.Tiers {
		cfg.Tiers = append(cfg.Tiers, scoring.Tier{
			MinScore:       t.MinScore,
			Recommendation: scoring.Recommendation(t.Recommendation),
			Reason:         t.Reason,
			NextSteps:      t.NextSteps,
		})
	}
	for _, a := range d.Scoring.Axes {
		cfg.Axes = append(cfg.Axes, scoring.Axis{Key: a.Key, Label: a.Label, Blend: a.Blend})
	}
	for _, c := range d.Scoring.Careers {
		cfg.Careers = append(cfg.Careers, scoring.Career{
			Role:        c.Role,
			Description: c.Description,
			SkillLevel:  c.SkillLevel,
			Floor:       c.Floor,
			Offset:      c.Offset,
		})
	}

	return &Definition{Questionnaire: qn, Scoring: cfg}
}
