package lifecycle

import "errors"

// Sentinel errors for lifecycle config loading and stage resolution.
//
// All of these are structural: they are detected before any gate subprocess
// is spawned, and callers should map them to a configuration-error exit code
// rather than a gate-failure exit code. Errors returned by this package wrap
// one of these sentinels, so use errors.Is to classify them.
var (
	// ErrConfigNotFound indicates the lifecycle config file does not exist
	// at the given path.
	ErrConfigNotFound = errors.New("lifecycle config not found")

	// ErrInvalidConfig indicates the config document is not a YAML mapping
	// or is missing one of the required top-level keys (current_stage,
	// stages, gates), or a key has the wrong shape.
	ErrInvalidConfig = errors.New("invalid lifecycle config")

	// ErrInvalidGateDefinition indicates a gate entry is malformed: not a
	// mapping, or its command is absent, empty, not a list, or contains a
	// non-string element. The wrapping error names the offending gate.
	ErrInvalidGateDefinition = errors.New("invalid gate definition")

	// ErrUnknownStage indicates the resolved stage name (override or
	// current_stage) is not declared in the stages mapping.
	ErrUnknownStage = errors.New("unknown lifecycle stage")

	// ErrInvalidStageDefinition indicates the resolved stage declares
	// required_gates with the wrong shape (present but not a list of
	// strings).
	ErrInvalidStageDefinition = errors.New("invalid stage definition")

	// ErrUnknownGateReference indicates a stage's required_gates names a
	// gate that is not declared in the gates mapping. This is checked when
	// the stage is run, not when the config is loaded, so work-in-progress
	// configs can still be loaded and listed.
	ErrUnknownGateReference = errors.New("unknown gate reference")
)
