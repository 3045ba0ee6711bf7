package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := New("")
		assert.Equal(t, ".", s.Root())
		assert.False(t, s.Recursive())
		assert.True(t, s.Eligible("page.html"))
		assert.False(t, s.Eligible("page.htm"))
	})

	t.Run("resolves file URI", func(t *testing.T) {
		s := New("file:///srv/site/")
		assert.Equal(t, "/srv/site", s.Root())
	})

	t.Run("custom extensions", func(t *testing.T) {
		s := New("/srv", WithExtensions("htm", ".XHTML", " "))
		assert.True(t, s.Eligible("/srv/a.htm"))
		assert.True(t, s.Eligible("/srv/a.xhtml"))
		assert.False(t, s.Eligible("/srv/a.html"))
	})
}

func TestSource_Eligible(t *testing.T) {
	flat := New("/srv/site")
	deep := New("/srv/site", WithRecursive(true))

	tests := []struct {
		name string
		path string
		flat bool
		deep bool
	}{
		{"top level html", "/srv/site/a.html", true, true},
		{"upper case extension", "/srv/site/A.HTML", true, true},
		{"nested html", "/srv/site/managers/a.html", false, true},
		{"hidden file", "/srv/site/.a.html", false, false},
		{"temp file", "/srv/site/.philcanon-123", false, false},
		{"hidden directory", "/srv/site/.git/a.html", false, false},
		{"outside root", "/srv/other/a.html", false, false},
		{"wrong extension", "/srv/site/a.css", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.flat, flat.Eligible(tt.path))
			assert.Equal(t, tt.deep, deep.Eligible(tt.path))
		})
	}
}

func TestSource_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.html"), "b")
	writeFile(t, filepath.Join(dir, "a.html"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "n")
	writeFile(t, filepath.Join(dir, ".hidden.html"), "h")
	writeFile(t, filepath.Join(dir, "managers", "c.html"), "c")
	writeFile(t, filepath.Join(dir, ".git", "d.html"), "d")
	ctx := context.Background()

	t.Run("top level only", func(t *testing.T) {
		paths, err := New(dir).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "b.html"),
		}, paths)
	})

	t.Run("recursive", func(t *testing.T) {
		paths, err := New(dir, WithRecursive(true)).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "b.html"),
			filepath.Join(dir, "managers", "c.html"),
		}, paths)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := New(filepath.Join(dir, "missing")).List(ctx)
		assert.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		_, err := New(filepath.Join(dir, "a.html")).List(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := New(dir).List(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSource_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(path, []byte("(Klopp)"), 0600))
	s := New(dir)
	ctx := context.Background()

	doc, err := s.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "(Klopp)", doc.Content)
	assert.Equal(t, "(Klopp)", doc.Original)
	assert.Equal(t, os.FileMode(0600), doc.Mode)

	doc.Content = "(Philosophy_45_Bielsa_Intensity)"
	require.NoError(t, s.Write(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(Philosophy_45_Bielsa_Intensity)", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestSource_ReadErrors(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	_, err := s.Read(ctx, filepath.Join(dir, "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = s.Read(ctx, dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSource_WriteErrors(t *testing.T) {
	s := New(t.TempDir())

	assert.ErrorIs(t, s.Write(context.Background(), nil), domain.ErrInvalidInput)

	doc := domain.NewDocument(filepath.Join(t.TempDir(), "missing", "a.html"), "x")
	assert.Error(t, s.Write(context.Background(), doc))
}

func TestSource_Restore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(path, []byte("new"), 0640))
	s := New(dir)

	require.NoError(t, s.Restore(context.Background(), path, "old"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	created := filepath.Join(dir, "gone.html")
	require.NoError(t, s.Restore(context.Background(), created, "back"))
	data, err = os.ReadFile(created)
	require.NoError(t, err)
	assert.Equal(t, "back", string(data))
}
