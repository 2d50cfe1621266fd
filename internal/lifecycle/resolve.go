package lifecycle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Resolve selects the active stage and decodes its definition.
//
// A non-empty override takes precedence over the config's current_stage.
// Resolve fails with [ErrUnknownStage] if the resolved name is not declared
// (or its body is not a mapping), and with [ErrInvalidStageDefinition] if
// required_gates is present but not a list of strings. A stage that omits
// required_gates entirely resolves to an empty gate list.
//
// Resolve does not check that the required gate names exist in the gate
// catalog; that cross-reference is deferred to [Executor.RunStage].
func (c *Config) Resolve(override string) (string, StageDef, error) {
	name := override
	if name == "" {
		name = c.CurrentStage
	}

	node, ok := c.stages[name]
	if !ok || node.Kind != yaml.MappingNode {
		return "", StageDef{}, fmt.Errorf("%w: %s", ErrUnknownStage, name)
	}

	var stage StageDef
	var gatesNode *yaml.Node
	hasGates := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], deref(node.Content[i+1])
		switch key.Value {
		case "description":
			if isString(value) {
				stage.Description = value.Value
			}
		case "required_gates":
			gatesNode = value
			hasGates = true
		}
	}

	if hasGates {
		gates, ok := stringList(gatesNode)
		if !ok {
			return "", StageDef{}, fmt.Errorf(
				"%w: stage %q must define 'required_gates' as a list of gate names",
				ErrInvalidStageDefinition, name)
		}
		stage.RequiredGates = gates
	}

	return name, stage, nil
}
