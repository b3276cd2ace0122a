package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug").Component("product")
	l.Info().Str("id", "abc").Msg("producto creado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "product", line["component"])
	assert.Equal(t, "abc", line["id"])
	assert.Equal(t, "info", line["level"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	l.Debug().Msg("no debe salir")
	l.Info().Msg("tampoco")
	assert.Empty(t, buf.String())
}

func TestParseLevel_Desconocido(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "verbose")
	l.Info().Msg("sale en info")
	assert.NotEmpty(t, buf.String())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("descartado") })
}
