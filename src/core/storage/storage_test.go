package storage

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_SaveOpenDelete(t *testing.T) {
	d := NewDisk(t.TempDir())

	key, err := d.Save("cvs", ".pdf", strings.NewReader("%PDF-1.4 content"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	f, err := d.Open(key)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "%PDF-1.4 content", string(data))

	require.NoError(t, d.Delete(key))

	_, err = d.Open(key)
	assert.Error(t, err)
}

func TestDisk_SaveGeneratesDistinctKeys(t *testing.T) {
	d := NewDisk(t.TempDir())

	k1, err := d.Save("cvs", ".pdf", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	k2, err := d.Save("cvs", ".pdf", bytes.NewReader([]byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestDisk_DeleteMissingKeyIsNoError(t *testing.T) {
	d := NewDisk(t.TempDir())
	assert.NoError(t, d.Delete("cvs/does-not-exist.pdf"))
}
