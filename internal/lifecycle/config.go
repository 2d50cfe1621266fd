// Package lifecycle loads lifecycle-stage configs and runs their gates.
//
// A lifecycle config is a YAML document declaring project stages, the named
// gates each stage requires, and which stage is currently active. The package
// provides [LoadConfig] for structural validation, [Config.Resolve] for stage
// selection, and [Executor] for sequential gate execution.
//
// Validation is deliberately staged:
//   - [LoadConfig] checks the document shape and every gate definition.
//   - [Config.Resolve] checks the shape of the one stage being resolved.
//   - [Executor.RunStage] checks that required gate names exist in the gate
//     catalog, immediately before execution.
//
// A config with dangling gate references therefore loads and lists cleanly
// and only fails when the referencing stage is actually run.
package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the conventional lifecycle config location relative
// to the invocation directory.
const DefaultConfigPath = "lifecycle-stage.yaml"

// Config is a loaded lifecycle config.
//
// It is read-only after load: loaded fresh on every invocation, never mutated,
// never cached. Stage bodies are kept as raw YAML nodes so that shape errors
// in stages other than the resolved one do not fail the load.
type Config struct {
	// CurrentStage is the stage name declared as active in the config.
	CurrentStage string

	// Gates is the gate catalog, validated at load time.
	Gates map[string]GateDef

	// Path is the config file path the document was loaded from.
	Path string

	stages     map[string]*yaml.Node
	stageOrder []string
}

// StageDef is a resolved stage: its description and the ordered list of gate
// names that must pass for the stage to be satisfied.
type StageDef struct {
	Description   string
	RequiredGates []string
}

// GateDef is a declared gate check.
type GateDef struct {
	// Description is free-form text shown before the gate runs.
	Description string

	// Command is the argv to execute: the first token is the executable,
	// the rest are arguments. No shell interpretation.
	Command []string
}

// GateResult records the outcome of one gate invocation.
type GateResult struct {
	Gate     string
	ExitCode int
}

// Passed reports whether the gate exited zero.
func (r GateResult) Passed() bool {
	return r.ExitCode == 0
}

// LoadConfig reads and structurally validates a lifecycle config.
//
// It fails with [ErrConfigNotFound] if path does not exist, and with
// [ErrInvalidConfig] if the document is not a mapping or any of the
// current_stage/stages/gates keys is missing or has the wrong shape.
// Every gate definition is validated in a secondary pass; a malformed gate
// fails the load with [ErrInvalidGateDefinition] naming the gate.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading lifecycle config %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document must be a YAML mapping", ErrInvalidConfig)
	}
	root := doc.Content[0]

	cfg := &Config{
		Gates:  make(map[string]GateDef),
		Path:   path,
		stages: make(map[string]*yaml.Node),
	}

	var stagesNode, gatesNode, currentNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], deref(root.Content[i+1])
		switch key.Value {
		case "stages":
			stagesNode = value
		case "gates":
			gatesNode = value
		case "current_stage":
			currentNode = value
		}
	}

	if stagesNode == nil || stagesNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: must define a 'stages' mapping", ErrInvalidConfig)
	}
	if gatesNode == nil || gatesNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: must define a 'gates' mapping", ErrInvalidConfig)
	}
	if currentNode == nil || !isString(currentNode) {
		return nil, fmt.Errorf("%w: must define string field 'current_stage'", ErrInvalidConfig)
	}
	cfg.CurrentStage = currentNode.Value

	for i := 0; i+1 < len(stagesNode.Content); i += 2 {
		name := stagesNode.Content[i].Value
		cfg.stages[name] = deref(stagesNode.Content[i+1])
		cfg.stageOrder = append(cfg.stageOrder, name)
	}

	for i := 0; i+1 < len(gatesNode.Content); i += 2 {
		name := gatesNode.Content[i].Value
		gate, err := decodeGate(name, deref(gatesNode.Content[i+1]))
		if err != nil {
			return nil, err
		}
		cfg.Gates[name] = gate
	}

	return cfg, nil
}

// decodeGate validates and decodes a single gate definition node.
func decodeGate(name string, node *yaml.Node) (GateDef, error) {
	if node.Kind != yaml.MappingNode {
		return GateDef{}, fmt.Errorf("%w: gate %q must be a mapping", ErrInvalidGateDefinition, name)
	}

	var gate GateDef
	var commandNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], deref(node.Content[i+1])
		switch key.Value {
		case "command":
			commandNode = value
		case "description":
			if isString(value) {
				gate.Description = value.Value
			}
		}
	}

	command, ok := stringList(commandNode)
	if !ok || len(command) == 0 {
		return GateDef{}, fmt.Errorf("%w: gate %q must define non-empty string list field 'command'",
			ErrInvalidGateDefinition, name)
	}
	gate.Command = command
	return gate, nil
}

// StageNames returns the stage names in declaration order.
func (c *Config) StageNames() []string {
	return c.stageOrder
}

// HasStage reports whether the named stage is declared.
func (c *Config) HasStage(name string) bool {
	_, ok := c.stages[name]
	return ok
}

// StageSummary returns a stage's description and required gate names for
// display purposes. It decodes leniently: malformed fields are simply left
// empty rather than reported, so the stage matrix can be printed even for
// work-in-progress configs. Strict decoding happens in [Config.Resolve].
func (c *Config) StageSummary(name string) (description string, gates []string) {
	node, ok := c.stages[name]
	if !ok || node.Kind != yaml.MappingNode {
		return "", nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], deref(node.Content[i+1])
		switch key.Value {
		case "description":
			if isString(value) {
				description = value.Value
			}
		case "required_gates":
			gates, _ = stringList(value)
		}
	}
	return description, gates
}

// deref follows YAML alias nodes to their anchor target.
func deref(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// isString reports whether the node is a YAML string scalar. Tag is checked
// so bare numerics and booleans are rejected rather than coerced.
func isString(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

// stringList decodes a sequence of string scalars. It returns ok=false if
// the node is not a sequence or any element is not a string.
func stringList(n *yaml.Node) ([]string, bool) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = deref(item)
		if !isString(item) {
			return nil, false
		}
		out = append(out, item.Value)
	}
	return out, true
}
