package core

import (
	"strings"

	"beast/internal/shared"
)

const (
	variablesLineSeparator  = "\n"
	variablesValueSeparator = "="
)

// ParseVariables turns "KEY=VALUE" lines into a placeholder mapping. Every
// line must split into exactly two parts on '='. Later keys overwrite
// earlier ones. A single trailing line terminator is not treated as an
// extra empty line.
func ParseVariables(path string, content string) (map[string]string, error) {
	variables := map[string]string{}
	content = strings.TrimSuffix(content, variablesLineSeparator)
	if content == "" {
		return variables, nil
	}
	for _, line := range strings.Split(content, variablesLineSeparator) {
		line = strings.TrimSuffix(line, "\r")
		parts := strings.Split(line, variablesValueSeparator)
		if len(parts) != 2 {
			return nil, shared.MalformedVariableFile(path, line, variablesValueSeparator)
		}
		variables[parts[0]] = parts[1]
	}
	return variables, nil
}
