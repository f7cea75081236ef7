package osk

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
	"github.com/BrandonKowalski/osk/pkg/osk/i18n"
	"github.com/BrandonKowalski/osk/pkg/osk/internal"
)

// InjectionMapping is the token forwarded to the host for each special key.
type InjectionMapping = internal.InjectionMapping

type Options struct {
	LogFilename string
	LogLevel    string
	// Language is a BCP 47 code for key captions, e.g. "es".
	Language string
	// InjectionMapping is a JSON mapping that overrides the default tokens.
	InjectionMapping []byte
}

// Init configures logging, captions and key injection.
// Call it once before creating keyboards; every field is optional.
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDebugMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	lang := options.Language
	if lang == "" {
		lang = os.Getenv(constants.LanguageEnvVar)
	}
	if lang != "" {
		if err := i18n.SetWithCode(lang); err != nil {
			return fmt.Errorf("invalid caption language %q: %w", lang, err)
		}
	}

	if len(options.InjectionMapping) > 0 {
		internal.SetInjectionMappingBytes(options.InjectionMapping)
	}

	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel controls the keyboard's own diagnostics, which only
// report warnings by default.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// ParseLogLevel maps debug, info, warn or error to a slog level.
func ParseLogLevel(level string) slog.Level {
	return internal.ParseLevel(level)
}

func SetInjectionMappingBytes(data []byte) {
	internal.SetInjectionMappingBytes(data)
}

// GetInjectionMapping returns the active mapping: embedded bytes, then the
// file named by OSK_INJECTION_MAPPING_PATH, then the defaults.
func GetInjectionMapping() *InjectionMapping {
	return internal.GetInjectionMapping()
}

func DefaultInjectionMapping() *InjectionMapping {
	return internal.DefaultInjectionMapping()
}

func LoadInjectionMappingFromFile(path string) (*InjectionMapping, error) {
	return internal.LoadInjectionMappingFromFile(path)
}
