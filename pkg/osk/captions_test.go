package osk

import (
	"testing"

	"github.com/BrandonKowalski/osk/pkg/osk/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaption(t *testing.T) {
	require.NoError(t, i18n.SetWithCode("en"))

	assert.Equal(t, "Back", Caption(BackspaceKey))
	assert.Equal(t, "Del", Caption(DeleteKey))
	assert.Equal(t, "Clear", Caption(ClearKey))
	assert.Empty(t, Caption(SpaceKey))
	assert.Equal(t, "Ç", Caption(Literal("Ç")))
}

func TestCaption_Spanish(t *testing.T) {
	require.NoError(t, i18n.SetWithCode("es"))
	t.Cleanup(func() { _ = i18n.SetWithCode("en") })

	assert.Equal(t, "Borrar", Caption(BackspaceKey))
	assert.Equal(t, "Supr", Caption(DeleteKey))
	assert.Equal(t, "Limpiar", Caption(ClearKey))
}
