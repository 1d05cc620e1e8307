package vidgen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved reports a binding absent from both the entity store and
	// the constants table.
	ErrUnresolved = errors.New("vidgen: unresolved identifier")
	// ErrTypeMismatch reports a resolved value whose payload is not the one requested.
	ErrTypeMismatch = errors.New("vidgen: value type mismatch")
	// ErrNoFactory reports an entity name with neither a constructor nor a prototype.
	ErrNoFactory = errors.New("vidgen: no factory for name")
	// ErrNoObject reports a scene lookup for a name that was never declared.
	ErrNoObject = errors.New("vidgen: no object with that name")
	// ErrDuplicate reports a second definition of a constant, prototype or block.
	ErrDuplicate = errors.New("vidgen: duplicate definition")
	// ErrMissingIdentifier reports a definition that must be named but is not.
	ErrMissingIdentifier = errors.New("vidgen: missing identifier")
	// ErrMissingValue reports a constant definition without a literal value.
	ErrMissingValue = errors.New("vidgen: missing value")
	// ErrUnknownEasing reports an animate easing name with no registered curve.
	ErrUnknownEasing = errors.New("vidgen: unknown easing")
	// ErrInvalidConfig reports a config block with an unusable setting.
	ErrInvalidConfig = errors.New("vidgen: invalid config")
)

// ParamTypeError reports a parameter whose bound literal does not match the
// field it targets. The field keeps its previous value.
type ParamTypeError struct {
	Key  string
	Want string
	Got  Value
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("invalid parameter type: %q wants %s, got %s", e.Key, e.Want, e.Got)
}

// BuildError wraps a failure while building a block, naming the block and
// the command being processed.
type BuildError struct {
	Block   BlockKind
	Command string
	Err     error
}

func (e *BuildError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("build %s: %v", e.Block, e.Err)
	}
	return fmt.Sprintf("build %s %q: %v", e.Block, e.Command, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BuildError) Unwrap() error {
	return e.Err
}
