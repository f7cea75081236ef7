package osk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBuffer_Editing(t *testing.T) {
	buf := NewTextBuffer("hola")
	assert.Equal(t, 4, buf.Caret())
	assert.True(t, buf.Enabled())
	assert.False(t, buf.ReadOnly())

	buf.MoveCaret(-1)
	buf.MoveCaret(-1)
	require.True(t, buf.InsertAtCaret("Ñ"))
	assert.Equal(t, "hoÑla", buf.Text())
	assert.Equal(t, 3, buf.Caret())

	require.True(t, buf.DeleteAtCaret())
	assert.Equal(t, "hoÑa", buf.Text())

	require.True(t, buf.BackspaceAtCaret())
	assert.Equal(t, "hoa", buf.Text())
	assert.Equal(t, 2, buf.Caret())

	buf.ClearAll()
	assert.Empty(t, buf.Text())
	assert.Zero(t, buf.Caret())
	assert.False(t, buf.BackspaceAtCaret())
	assert.False(t, buf.DeleteAtCaret())
}

func TestTextBuffer_MaxLength(t *testing.T) {
	buf := NewTextBuffer("ab")
	buf.SetMaxLength(3)

	assert.True(t, buf.InsertAtCaret("c"))
	assert.False(t, buf.InsertAtCaret("d"))
	assert.False(t, buf.InsertAtCaret(""))
	assert.Equal(t, "abc", buf.Text())
}

func TestTextBuffer_CaretClamping(t *testing.T) {
	buf := NewTextBuffer("abc")
	buf.SetCaret(10)
	assert.Equal(t, 3, buf.Caret())
	buf.SetCaret(-2)
	assert.Equal(t, 0, buf.Caret())

	buf.SetCaret(3)
	buf.SetText("x")
	assert.Equal(t, 1, buf.Caret())
}

func TestTextBuffer_OnChange(t *testing.T) {
	var seen []string
	buf := NewTextBuffer("")
	buf.OnChange(func(text string) { seen = append(seen, text) })

	buf.InsertAtCaret("a")
	buf.InsertAtCaret("b")
	buf.BackspaceAtCaret()
	buf.SetCaret(0)
	buf.ClearAll()

	assert.Equal(t, []string{"a", "ab", "a", ""}, seen)
}

func TestBufferInjector(t *testing.T) {
	ctx := context.Background()
	buf := NewTextBuffer("abc")
	buf.SetCaret(1)
	inj := NewBufferInjector(buf, DefaultInjectionMapping())

	require.NoError(t, inj.Inject(ctx, "X"))
	assert.Equal(t, "aXbc", buf.Text())

	require.NoError(t, inj.Inject(ctx, "{DELETE}"))
	assert.Equal(t, "aXc", buf.Text())

	require.NoError(t, inj.Inject(ctx, "{BACKSPACE}"))
	assert.Equal(t, "ac", buf.Text())

	require.NoError(t, inj.Inject(ctx, " "))
	assert.Equal(t, "a c", buf.Text())

	require.NoError(t, inj.Inject(ctx, "{CLEAR}"))
	assert.Empty(t, buf.Text())

	require.NoError(t, inj.Inject(ctx, ""))
	assert.Empty(t, buf.Text())
}

func TestBufferInjector_ThroughDispatcher(t *testing.T) {
	ctx := context.Background()
	buf := NewTextBuffer("AB")
	buf.SetCaret(0)
	inj := NewBufferInjector(buf, nil)

	d := NewDispatcher(inj, nil)
	require.NoError(t, d.Dispatch(ctx, InsertText("C"), buf))

	// dispatch moves the caret to the end before typing
	assert.Equal(t, "ABC", buf.Text())
	assert.True(t, buf.Focused())

	buf.SetReadOnly(true)
	require.NoError(t, d.Dispatch(ctx, KeyAction{Kind: ActionBackspace}, buf))
	assert.Equal(t, "AB", buf.Text())
}
