package summary

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// rubricShape and recordShape exist only to derive the JSON schema embedded
// in the summary prompt; responses are validated against Criteria, not
// decoded into these.
type rubricShape struct {
	Publishability          int `json:"publishability" jsonschema:"minimum=1,maximum=5"`
	DistinctionPotential    int `json:"distinction_potential" jsonschema:"minimum=1,maximum=5"`
	DataAvailability        int `json:"data_availability" jsonschema:"minimum=1,maximum=5"`
	PracticalImpact         int `json:"practical_impact" jsonschema:"minimum=1,maximum=5"`
	MethodologicalSoundness int `json:"methodological_soundness" jsonschema:"minimum=1,maximum=5"`
	EthicalConsiderations   int `json:"ethical_considerations" jsonschema:"minimum=1,maximum=5"`
	TimeToCompletion        int `json:"time_to_completion" jsonschema:"minimum=1,maximum=5"`
	InnovationRevolutionary int `json:"innovation_revolutionary" jsonschema:"minimum=1,maximum=5"`
	IncrementalContribution int `json:"incremental_contribution" jsonschema:"minimum=1,maximum=5"`
}

type recordShape struct {
	Rubric        rubricShape `json:"rubric"`
	KeyPoints     string      `json:"key_points" jsonschema_description:"Bullet list of the strongest arguments."`
	AdvisorAdvice string      `json:"advisor_advice" jsonschema_description:"Concise guidance for the student."`
}

// schemaJSON is the schema text embedded in every summary prompt.
var schemaJSON = generateSchemaJSON()

func generateSchemaJSON() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&recordShape{})
	b, _ := json.MarshalIndent(schema, "", "  ")
	return string(b)
}
