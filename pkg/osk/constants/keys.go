package constants

import "os"

// Reserved placeholder tokens. A raw grid cell holding one of these is a
// special key rather than literal text.
const (
	TokenBackspace = "{BACKSPACE}"
	TokenDelete    = "{DELETE}"
	TokenClear     = "{CLEAR}"
	TokenSpace     = "{SPACE}"
)

const (
	// KeyButtonNamePrefix and friends build control names like buttonKeyR0C10.
	KeyButtonNamePrefix       = "buttonKey"
	KeyButtonNameRowPrefix    = "R"
	KeyButtonNameColumnPrefix = "C"
)

// DefaultMaxLength matches the usual native text box limit.
const DefaultMaxLength = 32767

const (
	InjectionMappingEnvVar = "OSK_INJECTION_MAPPING_PATH"
	DebugEnvVar            = "OSK_DEBUG"
	LanguageEnvVar         = "OSK_LANG"
)

func IsDebugMode() bool {
	return os.Getenv(DebugEnvVar) != ""
}
