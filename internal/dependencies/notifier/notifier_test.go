package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func confirm(t *testing.T, input string) bool {
	t.Helper()
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(input), &out)
	ok := c.Confirm("Eliminar jugador", "¿Deseas eliminar este jugador?", "Sí", "Cancelar")
	assert.Contains(t, out.String(), "[Sí/Cancelar]")
	return ok
}

func TestConfirmAcceptsConfirmLabel(t *testing.T) {
	assert.True(t, confirm(t, "sí\n"))
}

func TestConfirmAcceptsShortAffirmatives(t *testing.T) {
	for _, answer := range []string{"y\n", "s\n", "yes\n", "si\n"} {
		assert.True(t, confirm(t, answer), "answer %q", answer)
	}
}

func TestConfirmRejectsAnythingElse(t *testing.T) {
	assert.False(t, confirm(t, "no\n"))
	assert.False(t, confirm(t, "cancelar\n"))
	assert.False(t, confirm(t, "\n"))
}

func TestConfirmRejectsClosedInput(t *testing.T) {
	assert.False(t, confirm(t, ""))
}

func TestSuccessFormatsTitleAndMessage(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Success("Reserva creada", "lun 10 junio 18:00")
	assert.Equal(t, "Reserva creada: lun 10 junio 18:00\n", out.String())
}

func TestErrorWithoutTitle(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Error("", "El horario ya está reservado")
	assert.Equal(t, "Error: El horario ya está reservado\n", out.String())
}
