package tablestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tables")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFingerprint_EmptyWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	fp, err := store.Fingerprint("CA")
	require.NoError(t, err)
	assert.Empty(t, fp)
}

func TestWriteAtomic_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteAtomic("CA", strings.NewReader("table-v1")))

	data, err := os.ReadFile(store.PathFor("CA"))
	require.NoError(t, err)
	assert.Equal(t, "table-v1", string(data))

	fp1, err := store.Fingerprint("CA")
	require.NoError(t, err)
	assert.NotEmpty(t, fp1)
	assert.Len(t, fp1, 64)

	// Same content, same fingerprint.
	fp2, err := store.Fingerprint("CA")
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)

	// New content changes the fingerprint.
	require.NoError(t, store.WriteAtomic("CA", strings.NewReader("table-v2")))
	fp3, err := store.Fingerprint("CA")
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp3)
}

func TestWriteAtomic_PerRegionFiles(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteAtomic("CA", strings.NewReader("ca")))
	require.NoError(t, store.WriteAtomic("TX", strings.NewReader("tx")))

	assert.NotEqual(t, store.PathFor("CA"), store.PathFor("TX"))

	ca, err := os.ReadFile(store.PathFor("CA"))
	require.NoError(t, err)
	assert.Equal(t, "ca", string(ca))
}

type failingReader struct{ after int }

func (f *failingReader) Read(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, os.ErrClosed
	}
	n := f.after
	if n > len(p) {
		n = len(p)
	}
	f.after -= n
	for i := 0; i < n; i++ {
		p[i] = 'x'
	}
	return n, nil
}

func TestWriteAtomic_FailedWriteKeepsPreviousTable(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteAtomic("CA", strings.NewReader("good")))
	fpBefore, err := store.Fingerprint("CA")
	require.NoError(t, err)

	err = store.WriteAtomic("CA", &failingReader{after: 2})
	require.Error(t, err)

	data, err := os.ReadFile(store.PathFor("CA"))
	require.NoError(t, err)
	assert.Equal(t, "good", string(data))

	fpAfter, err := store.Fingerprint("CA")
	require.NoError(t, err)
	assert.Equal(t, fpBefore, fpAfter)

	// No temp litter left behind.
	entries, err := os.ReadDir(filepath.Dir(store.PathFor("CA")))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
