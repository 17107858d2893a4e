package interactive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestShell returns a shell without a terminal that writes to buf.
func newTestShell(t *testing.T, cat *catalog.Catalog) (*Shell, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return &Shell{conv: catalog.NewConverter(cat, nil), out: buf}, buf
}

func TestShellConvert(t *testing.T) {
	s, buf := newTestShell(t, nil)

	assert.True(t, s.Execute("convert temperature 283.15 K C"))
	assert.Equal(t, "10.0 C\n", buf.String())

	buf.Reset()
	s.Execute("c analog 12 mA_4_20 MEASURE 50 250 kPa")
	assert.Equal(t, "150.0 kPa\n", buf.String())
}

func TestShellArith(t *testing.T) {
	s, buf := newTestShell(t, nil)

	s.Execute("add temperature 10 C 283.15 K")
	assert.Equal(t, "20.0 C\n", buf.String())

	buf.Reset()
	s.Execute("sub temperature 95 F 283.15 K")
	assert.Equal(t, "77.0 F\n", buf.String())
}

func TestShellRead(t *testing.T) {
	cat, err := catalog.Load(filepath.Join("..", "commands", "testdata", "plant.yaml"))
	require.NoError(t, err)
	s, buf := newTestShell(t, cat)

	s.Execute("read PT-101 12")
	assert.Equal(t, "PT-101: 125.0 kPa\n", buf.String())

	buf.Reset()
	s.Execute("snapshot LT-102=5")
	assert.Contains(t, buf.String(), "50.0 %")

	buf.Reset()
	s.Execute("channels")
	assert.Contains(t, buf.String(), "TT-201")
}

func TestShellErrors(t *testing.T) {
	s, buf := newTestShell(t, nil)

	tests := []struct {
		line string
		want string
	}{
		{"convert temperature", "usage: convert"},
		{"convert temperature abc K C", "invalid value"},
		{"convert pressure 1 psi Pa", "unknown unit"},
		{"add temperature 1 C", "usage: add"},
		{"read PT-101 12", "unknown channel"},
		{"snapshot", "usage: snapshot"},
		{"frobnicate", "Unknown command: frobnicate"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			buf.Reset()
			assert.True(t, s.Execute(tt.line))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestShellQuit(t *testing.T) {
	s, _ := newTestShell(t, nil)

	assert.True(t, s.Execute(""))
	assert.False(t, s.Execute("quit"))
	assert.False(t, s.Execute("q"))
}

func TestShellHelpAndSession(t *testing.T) {
	s, buf := newTestShell(t, nil)

	s.Execute("help")
	assert.Contains(t, buf.String(), "engunit Commands:")

	buf.Reset()
	s.Execute("session")
	assert.True(t, strings.HasPrefix(buf.String(), "Session: "+s.conv.SessionID()))
}

func TestParseScale(t *testing.T) {
	sc, err := parseScale([]string{"0", "250", "kPa"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc.Low)
	assert.Equal(t, 250.0, sc.High)
	assert.Equal(t, "kPa", sc.Label)

	_, err = parseScale([]string{"x", "1"})
	assert.Error(t, err)
}
