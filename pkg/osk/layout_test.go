package osk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(grid RawGrid, row int) []string {
	var out []string
	for _, label := range grid.Row(row) {
		out = append(out, label.String())
	}
	return out
}

func TestGrid_Shapes(t *testing.T) {
	tests := []struct {
		mode    LayoutMode
		rows    int
		columns int
	}{
		{AlphanumericSpanish, 4, 11},
		{NumericPhone, 4, 3},
		{NumericCalculator, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			rows, columns, grid := Grid(tt.mode)
			assert.Equal(t, tt.rows, rows)
			assert.Equal(t, tt.columns, columns)
			assert.Equal(t, rows, grid.Rows())
			assert.Equal(t, columns, grid.Columns())
			for r := 0; r < rows; r++ {
				assert.Len(t, grid.Row(r), columns, "row %d", r)
			}
		})
	}
}

func TestGrid_AlphanumericSpanishRows(t *testing.T) {
	_, _, grid := Grid(AlphanumericSpanish)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "{BACKSPACE}"}, labelsOf(grid, 0))
	assert.Equal(t, []string{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "{DELETE}"}, labelsOf(grid, 1))
	assert.Equal(t, []string{"A", "S", "D", "F", "G", "H", "J", "K", "L", "Ñ", "Ç"}, labelsOf(grid, 2))
	assert.Equal(t, []string{"Z", "X", "C", "V", "B", "N", "M", "{SPACE}", "{SPACE}", "'", "Ü"}, labelsOf(grid, 3))
}

func TestGrid_NumericRows(t *testing.T) {
	_, _, phone := Grid(NumericPhone)
	assert.Equal(t, []string{"1", "2", "3"}, labelsOf(phone, 0))
	assert.Equal(t, []string{"4", "5", "6"}, labelsOf(phone, 1))
	assert.Equal(t, []string{"7", "8", "9"}, labelsOf(phone, 2))
	assert.Equal(t, []string{"{CLEAR}", "0", "{BACKSPACE}"}, labelsOf(phone, 3))

	_, _, calc := Grid(NumericCalculator)
	assert.Equal(t, []string{"7", "8", "9"}, labelsOf(calc, 0))
	assert.Equal(t, []string{"4", "5", "6"}, labelsOf(calc, 1))
	assert.Equal(t, []string{"1", "2", "3"}, labelsOf(calc, 2))
	assert.Equal(t, []string{"{CLEAR}", "0", "{BACKSPACE}"}, labelsOf(calc, 3))
}

func TestGrid_UnknownModeIsEmpty(t *testing.T) {
	rows, columns, grid := Grid(LayoutMode(42))
	assert.Zero(t, rows)
	assert.Zero(t, columns)
	assert.Zero(t, grid.Rows())
	assert.Empty(t, Compile(grid))
}

func TestNewRawGrid_Validation(t *testing.T) {
	_, err := NewRawGrid([][]KeyLabel{
		literalRow("A", "B"),
		literalRow("C"),
	})
	require.ErrorIs(t, err, ErrRaggedGrid)

	_, err = NewRawGrid([][]KeyLabel{{Literal("")}})
	require.ErrorIs(t, err, ErrEmptyLabel)

	for _, token := range []string{"{BACKSPACE}", "{DELETE}", "{CLEAR}", "{SPACE}"} {
		_, err = NewRawGrid([][]KeyLabel{{Literal(token), SpaceKey}})
		require.ErrorIs(t, err, ErrReservedLabel, token)
	}

	lookalike, err := NewRawGrid([][]KeyLabel{{Literal("{space}"), SpaceKey}})
	require.NoError(t, err)
	assert.Len(t, Compile(lookalike), 2)

	grid, err := NewRawGrid(nil)
	require.NoError(t, err)
	assert.Zero(t, grid.Columns())
}

func TestNewRawGrid_CopiesInput(t *testing.T) {
	keys := [][]KeyLabel{literalRow("A", "B")}
	grid, err := NewRawGrid(keys)
	require.NoError(t, err)

	keys[0][0] = Literal("Z")
	assert.Equal(t, Literal("A"), grid.At(0, 0))

	row := grid.Row(0)
	row[1] = Literal("Y")
	assert.Equal(t, Literal("B"), grid.At(0, 1))
}

func TestParseLayoutMode(t *testing.T) {
	for _, mode := range LayoutModes() {
		parsed, err := ParseLayoutMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseLayoutMode("  Numeric-Phone ")
	require.NoError(t, err)
	assert.Equal(t, NumericPhone, parsed)

	_, err = ParseLayoutMode("dvorak")
	assert.ErrorIs(t, err, ErrUnknownLayout)
	assert.Equal(t, "layout(7)", LayoutMode(7).String())
}

func TestParseKeyLabel(t *testing.T) {
	assert.Equal(t, BackspaceKey, ParseKeyLabel("{BACKSPACE}"))
	assert.Equal(t, DeleteKey, ParseKeyLabel("{DELETE}"))
	assert.Equal(t, ClearKey, ParseKeyLabel("{CLEAR}"))
	assert.Equal(t, SpaceKey, ParseKeyLabel("{SPACE}"))
	assert.Equal(t, Literal("Ñ"), ParseKeyLabel("Ñ"))
	assert.False(t, Literal("A").IsPlaceholder())
	assert.True(t, SpaceKey.IsPlaceholder())
}
