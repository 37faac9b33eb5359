package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"beast/internal/types"
)

// ParseClassName validates a slash separated class name. Names must be
// relative and free of empty, "." and ".." segments so that files and
// directories always stay below the base directory.
func ParseClassName(raw string) (types.ClassName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class name is empty")
	}
	if strings.Contains(name, "\\") {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("class name '%s' must use '/' as directory separator", name))
	}
	for _, segment := range strings.Split(name, types.ClassSeparator) {
		switch segment {
		case "", ".", "..":
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("class name '%s' contains an invalid path segment '%s'", name, segment))
		}
	}
	return types.ClassName(name), nil
}
