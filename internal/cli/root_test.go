package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmoreno/courtbook/internal/dependencies/mocks"
)

func setupConfirm(t *testing.T, yes bool) *mocks.MockNotifier {
	t.Helper()
	mock := mocks.NewMockNotifier()

	prevCfg, prevNotify := cfg, notify
	cfg = &Config{Yes: yes}
	notify = mock
	t.Cleanup(func() {
		cfg, notify = prevCfg, prevNotify
	})

	return mock
}

func TestConfirmedAsksNotifier(t *testing.T) {
	mock := setupConfirm(t, false)
	mock.QueueConfirm(true)

	assert.True(t, confirmed("Eliminar jugador", "¿Deseas eliminar este jugador?"))
	assert.Equal(t, []string{"Eliminar jugador"}, mock.ConfirmPrompts)
}

func TestConfirmedHonorsDismissal(t *testing.T) {
	mock := setupConfirm(t, false)
	mock.QueueConfirm(false)

	assert.False(t, confirmed("Eliminar reserva", "¿Deseas eliminar esta reserva?"))
}

func TestConfirmedSkipsPromptWithYesFlag(t *testing.T) {
	mock := setupConfirm(t, true)

	assert.True(t, confirmed("Eliminar jugador", "¿Deseas eliminar este jugador?"))
	assert.Empty(t, mock.ConfirmPrompts)
}
