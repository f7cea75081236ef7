package cli

import (
	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/platform/term"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		layout    string
		text      string
		maxLength int
		readOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Try the keyboard in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := osk.ParseLayoutMode(layout)
			if err != nil {
				return err
			}

			model, err := term.NewModel(term.Config{
				Layout:    mode,
				Text:      text,
				MaxLength: maxLength,
				ReadOnly:  readOnly,
				Style:     &a.style,
				Mapping:   a.mapping,
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}

	layoutFlag(cmd, &layout)
	cmd.Flags().StringVar(&text, "text", "", "initial text")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum length of the text")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "start with a read-only text field")

	return cmd
}
