package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"beast/internal/types"
)

const fileListIndent = "    "

// RenderPlaceholders replaces every "{key}" of content with values[key].
// Braces that do not name a known key are left untouched, so CMake's own
// "${VAR}" references survive.
func RenderPlaceholders(content string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		if key == "" {
			continue
		}
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

// RenderFileList renders a section's files as quoted CMake list items, one
// per line, prefixed with the section's base_dir template.
func RenderFileList(section types.FileSection) string {
	items := make([]string, 0, len(section.Files))
	for _, file := range section.Files {
		if section.BaseDir == "" {
			items = append(items, `"`+file+`"`)
			continue
		}
		items = append(items, `"`+section.BaseDir+"/"+file+`"`)
	}
	return strings.Join(items, "\n"+fileListIndent)
}

// ProjectVersion validates the project's version parts and joins them.
func ProjectVersion(project types.ProjectConfig) (string, error) {
	version := fmt.Sprintf("%s.%s.%s", project.VersionMajor, project.VersionMinor, project.VersionPatch)
	if _, err := pep440.Parse(version); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid project version '%s'", version)).
			WithCause(err)
	}
	return version, nil
}

// MainConfigValues maps the main config placeholders to project and target
// names.
func MainConfigValues(config types.CMakeConfig) (map[string]string, error) {
	if _, err := ProjectVersion(config.Project); err != nil {
		return nil, err
	}
	project := config.Project
	values := map[string]string{
		project.NamePlaceholder:         project.Name,
		project.VersionMajorPlaceholder: project.VersionMajor,
		project.VersionMinorPlaceholder: project.VersionMinor,
		project.VersionPatchPlaceholder: project.VersionPatch,
	}
	for _, key := range config.Targets.Keys() {
		target, _ := config.Targets.Get(key)
		values[target.NamePlaceholder] = target.Name
	}
	delete(values, "")
	return values, nil
}

// TargetConfigValues maps a target's config placeholders. The second
// result is false for targets that carry no config template.
func TargetConfigValues(target *types.TargetConfig, configDir string) (map[string]string, bool) {
	if target.ConfigFiles == nil || target.Directories == nil || target.Variables == nil {
		return nil, false
	}
	values := map[string]string{
		target.Directories.IncludeDirectoryPlaceholder: target.Directories.IncludeDirectory,
		target.Directories.SourceDirectoryPlaceholder:  target.Directories.SourceDirectory,
		target.Headers.FilesListPlaceholder:            RenderFileList(target.Headers),
		target.Sources.FilesListPlaceholder:            RenderFileList(target.Sources),
		target.Variables.FilePathPlaceholder:           `"` + configDir + "/" + target.Variables.FilePath + `"`,
	}
	delete(values, "")
	return values, true
}
