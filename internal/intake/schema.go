package intake

// sessionResultSchema describes the completed-session event emitted by
// activity screens.
var sessionResultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject": map[string]any{
			"type":        "string",
			"enum":        []any{"math", "reading", "science", "art"},
			"description": "Learning domain the activity belongs to",
		},
		"age_group": map[string]any{
			"type":        "string",
			"enum":        []any{"young", "middle", "older", "4-6", "7-9", "10-12"},
			"description": "Learner cohort",
		},
		"questions_answered": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"correct_answers": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"total_time_spent_seconds": map[string]any{
			"type":    "number",
			"minimum": 0,
		},
		"concepts_encountered": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"duration_minutes": map[string]any{
			"type":    "number",
			"minimum": 0,
		},
		"activities_completed": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
	},
	"required":             []any{"subject", "age_group", "questions_answered", "correct_answers", "total_time_spent_seconds"},
	"additionalProperties": false,
}
