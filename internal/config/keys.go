package config

// EnvPrefix is prepended to every key when reading the environment,
// e.g. FIX_COMPONENTS_ROOT
const EnvPrefix = "FIX_COMPONENTS"

// Configuration key constants to prevent typos and enable autocomplete
const (
	KeyRoot    = "root"    // Directory the component paths are resolved against
	KeyConfirm = "confirm" // Ask before overwriting existing files
)

// Default values for configuration keys
var Defaults = map[string]interface{}{
	KeyRoot:    ".",
	KeyConfirm: false,
}
