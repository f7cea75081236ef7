package cli

import (
	"fmt"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/constants"
	"github.com/BrandonKowalski/osk/pkg/osk/platform/uinput"
	"github.com/spf13/cobra"
)

const (
	injectBuffer = "buffer"
	injectUinput = "uinput"
)

type focusRecorder struct {
	focused bool
}

func (f *focusRecorder) Focus() { f.focused = true }

func newTypeCmd(a *app) *cobra.Command {
	var (
		layout    string
		text      string
		maxLength int
		readOnly  bool
		disabled  bool
		inject    string
	)

	cmd := &cobra.Command{
		Use:   "type [labels...]",
		Short: "Press keys against a text field and print the result",
		Long: `Press each label in order, as if its key was tapped on the keyboard, and
print the resulting text. Labels are literal key text or one of
{BACKSPACE}, {DELETE}, {CLEAR} and {SPACE}.

With --inject uinput, keys bound for an editable field are typed into the
focused window through a virtual keyboard instead (needs write access to
/dev/uinput). Only characters on a US keymap can be typed that way.`,
		Example: `  osk type --text ABC {BACKSPACE} D
  osk type --read-only --max-length 4 --text 12 3 4 5
  osk type --inject uinput H O L A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := osk.ParseLayoutMode(layout)
			if err != nil {
				return err
			}

			buffer := osk.NewTextBuffer(text)
			buffer.SetMaxLength(maxLength)
			buffer.SetReadOnly(readOnly)
			buffer.SetEnabled(!disabled)

			var injector osk.KeyInjector
			switch inject {
			case injectBuffer:
				injector = osk.NewBufferInjector(buffer, a.mapping)
			case injectUinput:
				device, err := uinput.NewInjector(uinput.DefaultDeviceName, a.mapping)
				if err != nil {
					return err
				}
				defer device.Close()
				injector = device
			default:
				return fmt.Errorf("unknown injector %q, want %s or %s", inject, injectBuffer, injectUinput)
			}

			host := &focusRecorder{}
			kb, err := osk.NewKeyboard(osk.KeyboardOptions{
				Layout:   mode,
				Injector: injector,
				Host:     host,
				Target:   buffer,
				Mapping:  a.mapping,
			})
			if err != nil {
				return err
			}

			for _, raw := range args {
				if err := kb.ActivateLabel(cmd.Context(), osk.ParseKeyLabel(raw)); err != nil {
					return fmt.Errorf("key %s: %w", raw, err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), buffer.Text())
			return nil
		},
	}

	layoutFlag(cmd, &layout)
	cmd.Flags().StringVar(&text, "text", "", "initial text")
	cmd.Flags().IntVar(&maxLength, "max-length", constants.DefaultMaxLength, "maximum length of the text")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "make the text field read-only")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "disable the text field")
	cmd.Flags().StringVar(&inject, "inject", injectBuffer, "where editable keys go: buffer or uinput")

	return cmd
}
