package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()

	return buf.String(), err
}

// TestEncodeCommand drives a Caesar encode end to end.
func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "--cipher", "caesar", "--key", "3", "ATTACK AT DAWN")
	require.NoError(t, err)
	assert.Equal(t, "DWWDFN DW GDZQ\n", out)
}

// TestDecodeCommand inverts the same ciphertext.
func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", "--cipher", "caesar", "--key", "3", "DWWDFN DW GDZQ")
	require.NoError(t, err)
	assert.Equal(t, "ATTACK AT DAWN\n", out)
}

// TestEncodeCommand_TwoKeys exercises the secondary-key plumbing.
func TestEncodeCommand_TwoKeys(t *testing.T) {
	out, err := run(t, "encode", "--cipher", "twosquare",
		"--key", "EXAMPLE", "--key2", "KEYWORD", "HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, "HEFFSKORBR\n", out)
}

// TestEncodeCommand_UnknownCipher lists the valid names in the error.
func TestEncodeCommand_UnknownCipher(t *testing.T) {
	_, err := run(t, "encode", "--cipher", "enigma", "HELLO")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cipher")
	assert.Contains(t, err.Error(), "caesar")
}

// TestEncodeCommand_KeyErrorSurfaces propagates library validation.
func TestEncodeCommand_KeyErrorSurfaces(t *testing.T) {
	_, err := run(t, "encode", "--cipher", "amsco", "--key", "1245", "SOME TEXT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key validation")
}

// TestAnalyzeCommand checks the letter table and chi-squared line.
func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "AAB")
	require.NoError(t, err)
	assert.Contains(t, out, "A\t")
	assert.Contains(t, out, "B\t")
	assert.Contains(t, out, "chi-squared")
}

// TestAnalyzeCommand_Ngram skips the chi-squared line for n-grams
// (no embedded n-gram reference).
func TestAnalyzeCommand_Ngram(t *testing.T) {
	out, err := run(t, "analyze", "--ngram", "2", "BANANA")
	require.NoError(t, err)
	assert.Contains(t, out, "AN\t")
	assert.NotContains(t, out, "chi-squared")
}
