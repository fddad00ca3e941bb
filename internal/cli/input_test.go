package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(newReader("  alice  \n"), "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(newReader("alice"), "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("Sup3r$ecret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("Sup3r$ecret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetWeightValue(t *testing.T) {
	var out bytes.Buffer

	v, err := GetWeightValue(newReader("70.5\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 70.5, v)

	_, err = GetWeightValue(newReader("heavy\n"), &out)
	require.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	got, err := normalizeDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", got)

	got, err = normalizeDate("")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), got)

	_, err = normalizeDate("31/01/2024")
	require.Error(t, err)

	_, err = normalizeDate("2024-13-40")
	require.Error(t, err)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer

	id, err := GetID(newReader("42\n"), "Enter entry id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = GetID(newReader("abc\n"), "Enter entry id", &out)
	require.Error(t, err)
}
