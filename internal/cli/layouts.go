package cli

import (
	"encoding/json"
	"fmt"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/platform/term"
	"github.com/spf13/cobra"
)

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the built-in layouts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, mode := range osk.LayoutModes() {
				plan := osk.CompilePlan(mode)
				fmt.Fprintf(out, "%-20s %dx%d  %d keys\n", mode, plan.Rows, plan.Columns, plan.Len())
			}
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range osk.ThemeNames() {
				style, _ := osk.Theme(name)
				fmt.Fprintf(out, "%-8s back %s  key %s  fore %s\n", name,
					osk.ColorToHex(style.BackColor),
					osk.ColorToHex(style.KeyBackColor),
					osk.ColorToHex(style.ForeColor))
			}
		},
	}
}

type cellJSON struct {
	Name    string `json:"name"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Span    int    `json:"span"`
	Label   string `json:"label"`
	Caption string `json:"caption"`
}

type planJSON struct {
	Layout  string     `json:"layout"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   []cellJSON `json:"cells"`
}

func newShowCmd(a *app) *cobra.Command {
	var (
		layout   string
		asJSON   bool
		keyWidth int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the compiled cells of a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := osk.ParseLayoutMode(layout)
			if err != nil {
				return err
			}
			plan := osk.CompilePlan(mode)

			if asJSON {
				return writePlanJSON(cmd, plan)
			}

			renderer := term.NewRenderer(cmd.OutOrStdout(), keyWidth)
			return renderer.Render(plan, a.style)
		},
	}

	layoutFlag(cmd, &layout)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	cmd.Flags().IntVar(&keyWidth, "key-width", term.DefaultKeyWidth, "width of a single key in columns")

	return cmd
}

func writePlanJSON(cmd *cobra.Command, plan osk.Plan) error {
	doc := planJSON{
		Layout:  plan.Mode.String(),
		Rows:    plan.Rows,
		Columns: plan.Columns,
		Cells:   make([]cellJSON, 0, plan.Len()),
	}
	for i, cell := range plan.Cells {
		doc.Cells = append(doc.Cells, cellJSON{
			Name:    plan.CellName(i),
			Row:     cell.Row,
			Column:  cell.Column,
			Span:    cell.Span,
			Label:   cell.Label.String(),
			Caption: osk.Caption(cell.Label),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
