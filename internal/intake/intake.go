// Package intake decodes completed-session events from activity screens and
// validates them before they reach the difficulty engine.
package intake

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/subject"
)

// ErrInvalidSession is returned when an event fails decoding or validation.
var ErrInvalidSession = errors.New("invalid session event")

const schemaURL = "schema://session-result.json"

// Event is the wire form of a completed session.
type Event struct {
	Subject               string   `json:"subject"`
	AgeGroup              string   `json:"age_group"`
	QuestionsAnswered     int      `json:"questions_answered"`
	CorrectAnswers        int      `json:"correct_answers"`
	TotalTimeSpentSeconds float64  `json:"total_time_spent_seconds"`
	ConceptsEncountered   []string `json:"concepts_encountered,omitempty"`
	DurationMinutes       float64  `json:"duration_minutes,omitempty"`
	ActivitiesCompleted   int      `json:"activities_completed,omitempty"`
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func sessionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go literals.
		defBytes, err := json.Marshal(sessionResultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Decode validates raw JSON against the session-result schema and converts
// it into engine input plus session-log metadata.
func Decode(raw []byte) (performance.SessionResult, performance.SessionMeta, error) {
	var (
		res  performance.SessionResult
		meta performance.SessionMeta
	)

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return res, meta, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidSession, err)
	}

	schema, err := sessionSchema()
	if err != nil {
		return res, meta, fmt.Errorf("compile session schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return res, meta, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return res, meta, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return FromEvent(ev)
}

// FromEvent converts a wire event into engine input. Counts are checked for
// consistency: correct answers may not exceed questions answered.
func FromEvent(ev Event) (performance.SessionResult, performance.SessionMeta, error) {
	var (
		res  performance.SessionResult
		meta performance.SessionMeta
	)

	sub, err := subject.Parse(ev.Subject)
	if err != nil {
		return res, meta, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	age, err := subject.ParseAgeGroup(ev.AgeGroup)
	if err != nil {
		return res, meta, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if ev.QuestionsAnswered < 0 || ev.CorrectAnswers < 0 || ev.TotalTimeSpentSeconds < 0 {
		return res, meta, fmt.Errorf("%w: negative counts", ErrInvalidSession)
	}
	if ev.CorrectAnswers > ev.QuestionsAnswered {
		return res, meta, fmt.Errorf("%w: correct_answers %d exceeds questions_answered %d",
			ErrInvalidSession, ev.CorrectAnswers, ev.QuestionsAnswered)
	}

	res = performance.SessionResult{
		Subject:               sub,
		QuestionsAnswered:     ev.QuestionsAnswered,
		CorrectAnswers:        ev.CorrectAnswers,
		TotalTimeSpentSeconds: ev.TotalTimeSpentSeconds,
		ConceptsEncountered:   ev.ConceptsEncountered,
		AgeGroup:              age,
	}
	meta = performance.SessionMeta{
		DurationMinutes:     ev.DurationMinutes,
		ActivitiesCompleted: ev.ActivitiesCompleted,
	}
	return res, meta, nil
}
