package prompt

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YES", true},
		{"okay", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, Affirmative(tt.answer))
		})
	}
}

func TestPrompt_Ask(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("yes\nignored\n"), &out)

	answer, err := p.Ask("Is that the case? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)
	assert.Equal(t, "Is that the case? ", out.String())
}

func TestPrompt_AskCRLF(t *testing.T) {
	p := New(strings.NewReader("y\r\n"), &bytes.Buffer{})

	answer, err := p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "y", answer)
}

func TestPrompt_AskEOF(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		p := New(strings.NewReader(""), &bytes.Buffer{})
		answer, err := p.Ask("> ")
		require.NoError(t, err)
		assert.Equal(t, "", answer)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		p := New(strings.NewReader("y"), &bytes.Buffer{})
		answer, err := p.Ask("> ")
		require.NoError(t, err)
		assert.Equal(t, "y", answer)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestPrompt_AskReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask("> ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read answer")
}

func TestPrompt_Close(t *testing.T) {
	p := New(strings.NewReader("y\ny\n"), &bytes.Buffer{})

	_, err := p.Ask("> ")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, p.Closed())

	_, err = p.Ask("> ")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
