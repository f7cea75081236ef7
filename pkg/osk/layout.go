package osk

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
)

// LayoutMode specifies which key arrangement the keyboard shows.
type LayoutMode int

const (
	// AlphanumericSpanish is the 4x11 Spanish alphanumeric layout.
	AlphanumericSpanish LayoutMode = iota
	// NumericPhone is a 4x3 phone-style pad (1 2 3 on top).
	NumericPhone
	// NumericCalculator is a 4x3 calculator-style pad (7 8 9 on top).
	NumericCalculator
)

var layoutModeNames = map[LayoutMode]string{
	AlphanumericSpanish: "alphanumeric-es",
	NumericPhone:        "numeric-phone",
	NumericCalculator:   "numeric-calculator",
}

// LayoutModes returns the built-in layouts in declaration order.
func LayoutModes() []LayoutMode {
	return []LayoutMode{AlphanumericSpanish, NumericPhone, NumericCalculator}
}

func (m LayoutMode) String() string {
	if name, ok := layoutModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(m))
}

// Valid reports whether m is one of the built-in layouts.
func (m LayoutMode) Valid() bool {
	_, ok := layoutModeNames[m]
	return ok
}

// ParseLayoutMode accepts the names produced by String, case-insensitively.
func ParseLayoutMode(s string) (LayoutMode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range layoutModeNames {
		if name == want {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// KeyKind tells literal keys apart from the special placeholder keys.
type KeyKind int

const (
	KeyLiteral KeyKind = iota
	KeyBackspace
	KeyDelete
	KeyClear
	KeySpace
)

// KeyLabel is the content of one raw grid cell.
// Text is only meaningful for KeyLiteral.
type KeyLabel struct {
	Kind KeyKind
	Text string
}

var (
	BackspaceKey = KeyLabel{Kind: KeyBackspace}
	DeleteKey    = KeyLabel{Kind: KeyDelete}
	ClearKey     = KeyLabel{Kind: KeyClear}
	SpaceKey     = KeyLabel{Kind: KeySpace}
)

// Literal builds a key that types text.
func Literal(text string) KeyLabel {
	return KeyLabel{Kind: KeyLiteral, Text: text}
}

// ParseKeyLabel turns a raw string into a label, recognising the reserved
// placeholder tokens. Anything else is a literal.
func ParseKeyLabel(raw string) KeyLabel {
	switch raw {
	case constants.TokenBackspace:
		return BackspaceKey
	case constants.TokenDelete:
		return DeleteKey
	case constants.TokenClear:
		return ClearKey
	case constants.TokenSpace:
		return SpaceKey
	default:
		return Literal(raw)
	}
}

// IsPlaceholder reports whether the label is a special key.
func (l KeyLabel) IsPlaceholder() bool {
	return l.Kind != KeyLiteral
}

// String returns the literal text or the reserved token of a placeholder.
func (l KeyLabel) String() string {
	switch l.Kind {
	case KeyBackspace:
		return constants.TokenBackspace
	case KeyDelete:
		return constants.TokenDelete
	case KeyClear:
		return constants.TokenClear
	case KeySpace:
		return constants.TokenSpace
	default:
		return l.Text
	}
}

// RawGrid is an immutable rectangular table of key labels.
type RawGrid struct {
	rows    int
	columns int
	keys    [][]KeyLabel
}

// NewRawGrid copies keys into a grid, rejecting ragged rows, empty literals
// and literals spelling a reserved placeholder token.
func NewRawGrid(keys [][]KeyLabel) (RawGrid, error) {
	if len(keys) == 0 {
		return RawGrid{}, nil
	}

	columns := len(keys[0])
	copied := make([][]KeyLabel, len(keys))
	for r, row := range keys {
		if len(row) != columns {
			return RawGrid{}, fmt.Errorf("%w: row %d has %d keys, want %d", ErrRaggedGrid, r, len(row), columns)
		}
		for c, label := range row {
			if label.Kind == KeyLiteral && label.Text == "" {
				return RawGrid{}, fmt.Errorf("%w: row %d column %d", ErrEmptyLabel, r, c)
			}
			if label.Kind == KeyLiteral && ParseKeyLabel(label.Text).IsPlaceholder() {
				return RawGrid{}, fmt.Errorf("%w: %s at row %d column %d", ErrReservedLabel, label.Text, r, c)
			}
		}
		copied[r] = append([]KeyLabel(nil), row...)
	}

	return RawGrid{rows: len(keys), columns: columns, keys: copied}, nil
}

func (g RawGrid) Rows() int    { return g.rows }
func (g RawGrid) Columns() int { return g.columns }

// At returns the label at row r, column c.
func (g RawGrid) At(r, c int) KeyLabel {
	return g.keys[r][c]
}

// Row returns a copy of row r.
func (g RawGrid) Row(r int) []KeyLabel {
	return append([]KeyLabel(nil), g.keys[r]...)
}

// literalRow is shorthand for table rows made only of literal keys.
func literalRow(texts ...string) []KeyLabel {
	row := make([]KeyLabel, len(texts))
	for i, text := range texts {
		row[i] = Literal(text)
	}
	return row
}

func mustGrid(keys [][]KeyLabel, rows, columns int) RawGrid {
	grid, err := NewRawGrid(keys)
	if err != nil {
		panic("osk: invalid built-in layout: " + err.Error())
	}
	if grid.Rows() != rows || grid.Columns() != columns {
		panic(fmt.Sprintf("osk: built-in layout is %dx%d, want %dx%d", grid.Rows(), grid.Columns(), rows, columns))
	}
	return grid
}

var catalog = map[LayoutMode]RawGrid{
	AlphanumericSpanish: mustGrid([][]KeyLabel{
		append(literalRow("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), BackspaceKey),
		append(literalRow("Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"), DeleteKey),
		literalRow("A", "S", "D", "F", "G", "H", "J", "K", "L", "Ñ", "Ç"),
		{
			Literal("Z"), Literal("X"), Literal("C"), Literal("V"), Literal("B"), Literal("N"), Literal("M"),
			SpaceKey, SpaceKey,
			Literal("'"), Literal("Ü"),
		},
	}, 4, 11),

	NumericPhone: mustGrid([][]KeyLabel{
		literalRow("1", "2", "3"),
		literalRow("4", "5", "6"),
		literalRow("7", "8", "9"),
		{ClearKey, Literal("0"), BackspaceKey},
	}, 4, 3),

	NumericCalculator: mustGrid([][]KeyLabel{
		literalRow("7", "8", "9"),
		literalRow("4", "5", "6"),
		literalRow("1", "2", "3"),
		{ClearKey, Literal("0"), BackspaceKey},
	}, 4, 3),
}

// Grid looks up the raw grid of a layout. Unknown modes yield an empty 0x0
// grid instead of an error.
func Grid(mode LayoutMode) (rows int, columns int, grid RawGrid) {
	grid, ok := catalog[mode]
	if !ok {
		return 0, 0, RawGrid{}
	}
	return grid.Rows(), grid.Columns(), grid
}
