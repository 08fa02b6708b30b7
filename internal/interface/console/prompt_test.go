package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Int(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("42\n"), &out, 3)

	n, err := p.Int("Enter: ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Contains(t, out.String(), "Enter: ")
}

func TestPrompter_Int_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n7\n"), &out, 3)

	n, err := p.Int("Enter: ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), `got "abc"`)
}

func TestPrompter_Int_AttemptsExhausted(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("a\nb\nc\n9\n"), &out, 3)

	_, err := p.Int("Enter: ")
	assert.ErrorIs(t, err, ErrTooManyInvalidInputs)
}

func TestPrompter_Int_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard, 3)

	_, err := p.Int("Enter: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Line(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Bhanu Pratap  \n"), &out, 3)

	line, err := p.Line("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Bhanu Pratap", line)
}

func TestPrompter_Line_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("Harsh"), io.Discard, 3)

	line, err := p.Line("Name: ")
	require.NoError(t, err, "a final line without a newline is still a line")
	assert.Equal(t, "Harsh", line)
}
