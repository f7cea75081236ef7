// Command osk-sdl shows the on-screen keyboard in an SDL2 window with a text
// field to type into.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/platform/sdlhost"
	"github.com/spf13/cobra"
)

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()
}

func newRootCmd() *cobra.Command {
	var (
		config   sdlhost.AppConfig
		layout   string
		fontPath string
		fontSize int
		logLevel string
		lang     string
		theme    string
	)

	cmd := &cobra.Command{
		Use:          "osk-sdl",
		Short:        "On-screen keyboard in an SDL2 window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := osk.Init(osk.Options{LogLevel: logLevel, Language: lang}); err != nil {
				return err
			}
			defer osk.Close()

			mode, err := osk.ParseLayoutMode(layout)
			if err != nil {
				return err
			}
			config.Layout = mode
			config.Style, err = osk.Theme(theme)
			if err != nil {
				return err
			}
			config.Style.Font = osk.Font{Path: fontPath, Size: fontSize}

			return sdlhost.Run(cmd.Context(), config)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Title, "title", "osk", "window title")
	flags.Int32Var(&config.Width, "width", 1024, "window width, 0 for the display width")
	flags.Int32Var(&config.Height, "height", 600, "window height, 0 for the display height")
	flags.BoolVar(&config.Borderless, "borderless", false, "open a borderless window")
	flags.StringVar(&config.Text, "text", "", "initial text")
	flags.IntVar(&config.MaxLength, "max-length", 0, "maximum length of the text")
	flags.BoolVar(&config.ReadOnly, "read-only", false, "make the text field read-only")
	flags.StringVarP(&layout, "layout", "l", osk.AlphanumericSpanish.String(), "keyboard layout")
	flags.StringVar(&fontPath, "font", "", "TTF font for captions")
	flags.IntVar(&fontSize, "font-size", osk.DefaultStyle().Font.Size, "caption font size")
	flags.StringVar(&logLevel, "log-level", "warn", "log level")
	flags.StringVar(&lang, "lang", "en", "caption language")
	flags.StringVar(&theme, "theme", "dark", "keyboard theme")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
