package core

import (
	"regexp"
	"strings"

	"beast/internal/ports"
	"beast/internal/shared"
	"beast/internal/types"
)

var placeholderPattern = regexp.MustCompile(`\$\{[a-zA-Z0-9._-]+\}`)

// PathResolver resolves the base directory templates of a target.
type PathResolver struct {
	Variables ports.VariablesPort
}

func NewPathResolver(variables ports.VariablesPort) PathResolver {
	return PathResolver{Variables: variables}
}

// ResolveBaseDirectory substitutes every ${TOKEN} of the section's base_dir
// with its value from the target's variables file. An empty base_dir
// resolves to "" and a template without tokens is returned as is; neither
// reads the variables file.
func (r PathResolver) ResolveBaseDirectory(target *types.TargetConfig, kind types.FileKind) (string, error) {
	template := target.Section(kind).BaseDir
	if template == "" {
		return "", nil
	}
	tokens := placeholderPattern.FindAllString(template, -1)
	if len(tokens) == 0 {
		return template, nil
	}
	variables, err := r.Variables.Load(target)
	if err != nil {
		return "", err
	}
	return SubstitutePlaceholders(template, tokens, variables, target.Name)
}

// SubstitutePlaceholders replaces tokens left to right. A token is looked up
// as written ("${X}") and then by its bare name ("X").
func SubstitutePlaceholders(template string, tokens []string, variables map[string]string, targetName string) (string, error) {
	values := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		value, ok := lookupPlaceholder(token, variables)
		if !ok {
			return "", shared.UndefinedTemplateVariable(token, targetName)
		}
		values = append(values, token, value)
	}
	return strings.NewReplacer(values...).Replace(template), nil
}

func lookupPlaceholder(token string, variables map[string]string) (string, bool) {
	if value, ok := variables[token]; ok {
		return value, true
	}
	value, ok := variables[strings.TrimSuffix(strings.TrimPrefix(token, "${"), "}")]
	return value, ok
}
