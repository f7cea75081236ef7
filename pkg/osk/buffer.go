package osk

import (
	"context"
	"unicode/utf8"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
)

// TextBuffer is an in-memory TargetBuffer with a caret. Hosts without a
// native text widget can bind it directly; its *AtCaret methods are the
// native editing path BufferInjector drives.
type TextBuffer struct {
	text      []rune
	caret     int
	maxLength int
	enabled   bool
	readOnly  bool
	focused   bool
	onChange  func(text string)
}

var _ TargetBuffer = (*TextBuffer)(nil)

// NewTextBuffer returns an enabled, writable buffer holding text with the
// caret at the end.
func NewTextBuffer(text string) *TextBuffer {
	runes := []rune(text)
	return &TextBuffer{
		text:      runes,
		caret:     len(runes),
		maxLength: constants.DefaultMaxLength,
		enabled:   true,
	}
}

func (b *TextBuffer) Text() string   { return string(b.text) }
func (b *TextBuffer) MaxLength() int { return b.maxLength }
func (b *TextBuffer) Enabled() bool  { return b.enabled }
func (b *TextBuffer) ReadOnly() bool { return b.readOnly }
func (b *TextBuffer) Caret() int     { return b.caret }
func (b *TextBuffer) Focused() bool  { return b.focused }
func (b *TextBuffer) Len() int       { return len(b.text) }

func (b *TextBuffer) SetMaxLength(n int)       { b.maxLength = n }
func (b *TextBuffer) SetEnabled(v bool)        { b.enabled = v }
func (b *TextBuffer) SetReadOnly(v bool)       { b.readOnly = v }
func (b *TextBuffer) Focus()                   { b.focused = true }
func (b *TextBuffer) Blur()                    { b.focused = false }
func (b *TextBuffer) OnChange(fn func(string)) { b.onChange = fn }

// SetText replaces the whole text and clamps the caret.
func (b *TextBuffer) SetText(text string) {
	b.text = []rune(text)
	if b.caret > len(b.text) {
		b.caret = len(b.text)
	}
	b.changed()
}

func (b *TextBuffer) SetCaret(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.text) {
		pos = len(b.text)
	}
	b.caret = pos
}

// MoveCaret moves the caret one character left (direction < 0) or right.
func (b *TextBuffer) MoveCaret(direction int) {
	if direction > 0 && b.caret < len(b.text) {
		b.caret++
	} else if direction < 0 && b.caret > 0 {
		b.caret--
	}
}

// InsertAtCaret types text at the caret, refusing input that would exceed
// the max length like a native text box does.
func (b *TextBuffer) InsertAtCaret(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	if len(b.text)+len(insert) > b.maxLength {
		return false
	}

	if b.caret == len(b.text) {
		b.text = append(b.text, insert...)
	} else {
		updated := make([]rune, 0, len(b.text)+len(insert))
		updated = append(updated, b.text[:b.caret]...)
		updated = append(updated, insert...)
		updated = append(updated, b.text[b.caret:]...)
		b.text = updated
	}
	b.caret += len(insert)
	b.changed()
	return true
}

// BackspaceAtCaret removes the character before the caret.
func (b *TextBuffer) BackspaceAtCaret() bool {
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
	b.changed()
	return true
}

// DeleteAtCaret removes the character after the caret.
func (b *TextBuffer) DeleteAtCaret() bool {
	if b.caret >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.caret], b.text[b.caret+1:]...)
	b.changed()
	return true
}

func (b *TextBuffer) ClearAll() {
	b.text = b.text[:0]
	b.caret = 0
	b.changed()
}

func (b *TextBuffer) changed() {
	if b.onChange != nil {
		b.onChange(string(b.text))
	}
}

// BufferInjector plays forwarded key tokens into a TextBuffer through its
// native editing path, standing in for an OS-level key injector.
type BufferInjector struct {
	buffer  *TextBuffer
	mapping *InjectionMapping
}

var _ KeyInjector = (*BufferInjector)(nil)

// NewBufferInjector decodes tokens with mapping, or the active mapping when nil.
func NewBufferInjector(buffer *TextBuffer, mapping *InjectionMapping) *BufferInjector {
	if mapping == nil {
		mapping = GetInjectionMapping()
	}
	return &BufferInjector{buffer: buffer, mapping: mapping}
}

func (bi *BufferInjector) Inject(_ context.Context, token string) error {
	switch token {
	case bi.mapping.Backspace:
		bi.buffer.BackspaceAtCaret()
	case bi.mapping.Delete:
		bi.buffer.DeleteAtCaret()
	case bi.mapping.Clear:
		bi.buffer.ClearAll()
	case bi.mapping.Space:
		bi.buffer.InsertAtCaret(" ")
	default:
		if utf8.RuneCountInString(token) > 0 {
			bi.buffer.InsertAtCaret(token)
		}
	}
	return nil
}
