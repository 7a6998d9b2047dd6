package learnerstate

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

const (
	LEARNER_STATE_SYSTEM_PROMPT = `You are analysing a student's recent messages in a programming task.
Infer a simple learner state with fields:
- knowledge_level: one of ['low', 'medium', 'high']
- affect: one of ['neutral', 'confused', 'frustrated', 'engaged']
- talkativeness: one of ['low', 'medium', 'high']
- misconceptions: list of short phrases describing likely misconceptions
Respond ONLY as valid JSON with these keys.`

	LEARNER_STATE_SCHEMA_SUFFIX = `
The JSON must conform to this schema:
%s`

	LEARNER_STATE_USER_PROMPT = `Recent messages from this student:
%s`
)

// profileInference is the shape the model is asked to produce. Pointer
// fields distinguish omitted keys from present ones, and a nil slice
// distinguishes omitted misconceptions from an intentionally empty list.
type profileInference struct {
	KnowledgeLevel *string  `json:"knowledge_level,omitempty" jsonschema:"enum=low,enum=medium,enum=high"`
	Affect         *string  `json:"affect,omitempty" jsonschema:"enum=neutral,enum=confused,enum=frustrated,enum=engaged"`
	Talkativeness  *string  `json:"talkativeness,omitempty" jsonschema:"enum=low,enum=medium,enum=high"`
	Misconceptions []string `json:"misconceptions,omitempty" jsonschema:"description=Short phrases describing likely misconceptions"`
}

func profileSchema() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(profileInference{})

	out, err := json.Marshal(schema)
	if err != nil {
		return "{}"
	}
	return string(out)
}
