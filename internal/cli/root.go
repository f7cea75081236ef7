// Package cli provides the command-line interface for osk.
package cli

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyConfig           = "config"
	keyLogLevel         = "log-level"
	keyLanguage         = "lang"
	keyInjectionMapping = "injection-mapping"
	keyTheme            = "theme"
	keyThemeFile        = "theme-file"
)

// app is the state shared by every command.
type app struct {
	viper   *viper.Viper
	mapping *osk.InjectionMapping
	style   osk.Style
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("OSK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLanguage, "en")
	v.SetDefault(keyTheme, "dark")
	return v
}

// NewRootCmd creates the root command for osk.
func NewRootCmd(version string) *cobra.Command {
	a := &app{viper: newViper()}

	rootCmd := &cobra.Command{
		Use:           "osk",
		Short:         "On-screen keyboard layouts and key dispatch",
		Long:          `Inspect the built-in on-screen keyboard layouts, replay key presses against a text field, or try the keyboard interactively in the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			osk.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (TOML, YAML or JSON)")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(keyLanguage, "en", "language of the key captions, e.g. es")
	flags.String(keyInjectionMapping, "", "JSON or TOML file overriding the injected special key tokens")
	flags.String(keyTheme, "dark", "keyboard theme: "+strings.Join(osk.ThemeNames(), ", "))
	flags.String(keyThemeFile, "", "JSON theme applied over --theme")

	for _, name := range []string{keyConfig, keyLogLevel, keyLanguage, keyInjectionMapping, keyTheme, keyThemeFile} {
		_ = a.viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newLayoutsCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newTypeCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newMappingCmd(a))

	return rootCmd
}

func (a *app) setup() error {
	if path := a.viper.GetString(keyConfig); path != "" {
		a.viper.SetConfigFile(path)
		if err := a.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	level := a.viper.GetString(keyLogLevel)
	if err := osk.Init(osk.Options{
		LogLevel: level,
		Language: a.viper.GetString(keyLanguage),
	}); err != nil {
		return err
	}
	osk.SetInternalLogLevel(osk.ParseLogLevel(level))

	a.mapping = osk.GetInjectionMapping()
	if path := a.viper.GetString(keyInjectionMapping); path != "" {
		mapping, err := osk.LoadInjectionMappingFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to load injection mapping: %w", err)
		}
		a.mapping = mapping
	}

	style, err := osk.Theme(a.viper.GetString(keyTheme))
	if err != nil {
		return err
	}
	if path := a.viper.GetString(keyThemeFile); path != "" {
		if style, err = osk.LoadThemeFile(path, style); err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
	}
	a.style = style

	osk.GetLogger().Debug("CLI configured",
		"config", a.viper.ConfigFileUsed(),
		"log_level", level,
		"lang", a.viper.GetString(keyLanguage),
		"theme", a.viper.GetString(keyTheme),
	)
	return nil
}

// layoutFlag registers --layout on cmd.
func layoutFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "layout", "l", osk.AlphanumericSpanish.String(),
		"layout: "+strings.Join(layoutNames(), ", "))
}

func layoutNames() []string {
	var names []string
	for _, mode := range osk.LayoutModes() {
		names = append(names, mode.String())
	}
	return names
}
