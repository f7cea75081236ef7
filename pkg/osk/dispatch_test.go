package osk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	text      string
	maxLength int
	enabled   bool
	readOnly  bool
	caret     int
	focused   int
}

func (f *fakeTarget) Text() string        { return f.text }
func (f *fakeTarget) SetText(text string) { f.text = text }
func (f *fakeTarget) MaxLength() int      { return f.maxLength }
func (f *fakeTarget) Enabled() bool       { return f.enabled }
func (f *fakeTarget) ReadOnly() bool      { return f.readOnly }
func (f *fakeTarget) SetCaret(pos int)    { f.caret = pos }
func (f *fakeTarget) Focus()              { f.focused++ }

type mockInjector struct {
	mock.Mock
}

func (m *mockInjector) Inject(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type countingHost struct {
	focused int
}

func (h *countingHost) Focus() { h.focused++ }

func lockedTarget(text string, maxLength int) *fakeTarget {
	return &fakeTarget{text: text, maxLength: maxLength, enabled: true, readOnly: true}
}

func TestDispatch_LockedTarget(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		action KeyAction
		want   string
	}{
		{"backspace removes last character", "ABC", KeyAction{Kind: ActionBackspace}, "AB"},
		{"backspace on empty", "", KeyAction{Kind: ActionBackspace}, ""},
		{"backspace removes whole rune", "AÑ", KeyAction{Kind: ActionBackspace}, "A"},
		{"clear empties", "ABC", KeyAction{Kind: ActionClear}, ""},
		{"delete is ignored", "ABC", KeyAction{Kind: ActionDelete}, "ABC"},
		{"insert appends", "ABC", InsertText("D"), "ABCD"},
		{"space appends", "ABC", KeyAction{Kind: ActionSpace}, "ABC "},
		{"insert at capacity", "ABCDE", InsertText("F"), "ABCDE"},
		{"space at capacity", "ABCDE", KeyAction{Kind: ActionSpace}, "ABCDE"},
		{"capacity counts runes", "ÑÑÑÑ", InsertText("Ü"), "ÑÑÑÑÜ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injector := &mockInjector{}
			host := &countingHost{}
			target := lockedTarget(tt.text, 5)

			d := NewDispatcher(injector, host)
			require.NoError(t, d.Dispatch(context.Background(), tt.action, target))

			assert.Equal(t, tt.want, target.text)
			assert.Equal(t, 1, host.focused)
			assert.Zero(t, target.focused)
			injector.AssertNotCalled(t, "Inject", mock.Anything, mock.Anything)
		})
	}
}

func TestDispatch_DisabledTargetIsEditedInPlace(t *testing.T) {
	target := &fakeTarget{text: "12", maxLength: 10, enabled: false}
	host := &countingHost{}

	d := NewDispatcher(nil, host)
	require.NoError(t, d.Dispatch(context.Background(), InsertText("3"), target))

	assert.Equal(t, "123", target.text)
	assert.Equal(t, 1, host.focused)
}

func TestDispatch_EditableTargetForwardsToInjector(t *testing.T) {
	tests := []struct {
		name   string
		action KeyAction
		token  string
	}{
		{"literal", InsertText("Ñ"), "Ñ"},
		{"backspace", KeyAction{Kind: ActionBackspace}, "{BACKSPACE}"},
		{"delete", KeyAction{Kind: ActionDelete}, "{DELETE}"},
		{"clear", KeyAction{Kind: ActionClear}, "{CLEAR}"},
		{"space", KeyAction{Kind: ActionSpace}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			injector := &mockInjector{}
			injector.On("Inject", ctx, tt.token).Return(nil).Once()
			host := &countingHost{}
			target := &fakeTarget{text: "héllo", maxLength: 32, enabled: true, caret: 1}

			d := NewDispatcher(injector, host, WithInjectionMapping(DefaultInjectionMapping()))
			require.NoError(t, d.Dispatch(ctx, tt.action, target))

			injector.AssertExpectations(t)
			assert.Equal(t, "héllo", target.text)
			assert.Equal(t, 5, target.caret)
			assert.Equal(t, 2, target.focused)
			assert.Zero(t, host.focused)
		})
	}
}

func TestDispatch_CustomMapping(t *testing.T) {
	ctx := context.Background()
	injector := &mockInjector{}
	injector.On("Inject", ctx, "\b").Return(nil).Once()

	mapping := DefaultInjectionMapping()
	mapping.Backspace = "\b"
	d := NewDispatcher(injector, nil, WithInjectionMapping(mapping))

	target := &fakeTarget{text: "x", maxLength: 8, enabled: true}
	require.NoError(t, d.Dispatch(ctx, KeyAction{Kind: ActionBackspace}, target))
	injector.AssertExpectations(t)
}

func TestDispatch_InjectorErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("device gone")
	injector := &mockInjector{}
	injector.On("Inject", ctx, "A").Return(boom)

	d := NewDispatcher(injector, nil)
	target := &fakeTarget{maxLength: 8, enabled: true}

	err := d.Dispatch(ctx, InsertText("A"), target)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "inject insert")
	assert.Equal(t, 2, target.focused)
}

func TestDispatch_NilInjectorDropsKey(t *testing.T) {
	target := &fakeTarget{text: "A", maxLength: 8, enabled: true}
	d := NewDispatcher(nil, nil)

	require.NoError(t, d.Dispatch(context.Background(), InsertText("B"), target))
	assert.Equal(t, "A", target.text)
	assert.Equal(t, 1, target.caret)
}

func TestDispatch_NilTarget(t *testing.T) {
	injector := &mockInjector{}
	host := &countingHost{}
	d := NewDispatcher(injector, host)

	require.NoError(t, d.Dispatch(context.Background(), InsertText("A"), nil))
	assert.Equal(t, 1, host.focused)
	injector.AssertNotCalled(t, "Inject", mock.Anything, mock.Anything)

	require.NoError(t, NewDispatcher(nil, nil).Dispatch(context.Background(), InsertText("A"), nil))
}

func TestDispatcher_Token(t *testing.T) {
	d := NewDispatcher(nil, nil, WithInjectionMapping(nil))
	assert.Equal(t, "x", d.Token(InsertText("x")))
	assert.Equal(t, " ", d.Token(KeyAction{Kind: ActionSpace}))
}
