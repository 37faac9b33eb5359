package ports

import "beast/internal/types"

// VariablesPort loads the placeholder mapping of a target from its cmake
// variables file. Implementations must read the file on every call.
type VariablesPort interface {
	Load(target *types.TargetConfig) (map[string]string, error)
}
