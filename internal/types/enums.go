package types

// BuildConfig is a CMake build configuration name.
type BuildConfig string

const (
	BuildConfigDebug          BuildConfig = "Debug"
	BuildConfigRelease        BuildConfig = "Release"
	BuildConfigRelWithDebInfo BuildConfig = "RelWithDebInfo"
	BuildConfigMinSizeRel     BuildConfig = "MinSizeRel"
)

// BuildConfigs lists every build configuration in build order.
func BuildConfigs() []BuildConfig {
	return []BuildConfig{
		BuildConfigDebug,
		BuildConfigRelease,
		BuildConfigRelWithDebInfo,
		BuildConfigMinSizeRel,
	}
}

// ParseBuildConfig matches name exactly against the known configurations.
func ParseBuildConfig(name string) (BuildConfig, bool) {
	for _, config := range BuildConfigs() {
		if string(config) == name {
			return config, true
		}
	}
	return "", false
}

type CommandName string

const (
	CommandInit        CommandName = "init"
	CommandConfigure   CommandName = "configure"
	CommandInstall     CommandName = "install"
	CommandBuild       CommandName = "build"
	CommandClass       CommandName = "class"
	CommandClassAdd    CommandName = "add"
	CommandClassRemove CommandName = "remove"
	CommandClassPath   CommandName = "path"
	CommandConfig      CommandName = "config"
)

// CommandNames lists the command names in help order.
func CommandNames() []CommandName {
	return []CommandName{
		CommandInit,
		CommandConfigure,
		CommandInstall,
		CommandBuild,
		CommandClass,
		CommandClassAdd,
		CommandClassRemove,
		CommandClassPath,
		CommandConfig,
	}
}

type FileKind string

const (
	FileKindHeader FileKind = "headers"
	FileKindSource FileKind = "sources"
)

// Extension is the fixed file extension for the kind.
func (k FileKind) Extension() string {
	if k == FileKindSource {
		return "cpp"
	}
	return "h"
}

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
