// Package shared provides error constructors and small helpers used across
// the beast packages.
package shared

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// MalformedVariableFile reports a variables file line that does not hold
// exactly one name/value pair.
func MalformedVariableFile(path string, line string, separator string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed variables file %s: '%s' line does not contain a single '%s' separated variable", path, line, separator))
}

// UndefinedTemplateVariable reports a base directory placeholder with no
// value in the target's variables file.
func UndefinedTemplateVariable(token string, target string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("undefined template variable: '%s' could not be found in '%s' target cmake variables file", token, target))
}

// FileAlreadyExists reports a scaffolding collision.
func FileAlreadyExists(path string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("file already exists: %s", path))
}

// FileNotFound reports a missing file on removal.
func FileNotFound(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("file not found: %s", path)).
		WithCause(cause)
}

// BaseDirectoryNotFound reports a resolved base directory missing on disk.
// Class files are only created below an existing base directory.
func BaseDirectoryNotFound(path string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("base directory not found: %s", path))
}

// UnknownTarget reports a target name missing from the manifest.
func UnknownTarget(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("unknown target: \"%s\" is not a valid target", name))
}

// IOError wraps a filesystem failure outside the named kinds.
func IOError(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}
