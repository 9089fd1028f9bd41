package store_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hbjs97/cswap/internal/store"
	"github.com/hbjs97/cswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(t *testing.T, repo *store.Repository) []string {
	t.Helper()
	seq, err := repo.List()
	require.NoError(t, err)
	var out []string
	for p := range seq {
		out = append(out, p.ID)
	}
	return out
}

func TestList_OneProfilePerBackup(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  []string
	}{
		{
			name:  "single",
			files: map[string]string{"cookies_work": "B"},
			want:  []string{"work"},
		},
		{
			name: "with active file",
			files: map[string]string{
				"cookies":      "A",
				"cookies_work": "B",
				"cookies_home": "C",
			},
			want: []string{"home", "work"},
		},
		{
			name: "separator inside identifier",
			files: map[string]string{
				"cookies_work_alt":  "x",
				"cookies_cookies_x": "y",
				"cookies_a-b.c":     "z",
			},
			want: []string{"a-b.c", "cookies_x", "work_alt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := store.New(testutil.TempStore(t, tt.files))
			got := ids(t, repo)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestList_ProfilePathPointsAtBackup(t *testing.T) {
	dir := testutil.SoberStore(t)
	repo := store.New(dir)

	profiles, err := repo.Sorted()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "home", profiles[0].ID)
	assert.Equal(t, filepath.Join(dir, "cookies_home"), profiles[0].Path)
	assert.Equal(t, "work", profiles[1].ID)
	assert.Equal(t, "C", testutil.ReadFile(t, profiles[0].Path))
}

func TestList_IgnoresNonMatchingEntries(t *testing.T) {
	dir := testutil.TempStore(t, map[string]string{
		"cookies":                 "A",
		"cookies_":                "empty suffix",
		"cookiesx":                "no separator",
		"Cookies_upper":           "case differs",
		".cookies_hidden":         "hidden",
		"cookies_.dotted":         "hidden identifier",
		".cookies.1234.swap":      "staged",
		"notes.txt":               "unrelated",
		"cookies_work":            "B",
		"prefix_cookies_whatever": "prefix not at start",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cookies_dir"), 0700))

	got := ids(t, store.New(dir))
	assert.Equal(t, []string{"work"}, got)
}

func TestList_EmptyDirectory(t *testing.T) {
	repo := store.New(t.TempDir())

	seq, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestList_MissingDirectory(t *testing.T) {
	repo := store.New(filepath.Join(t.TempDir(), "missing"))

	_, err := repo.List()
	assert.ErrorIs(t, err, store.ErrRepositoryUnavailable)

	_, err = repo.Sorted()
	assert.ErrorIs(t, err, store.ErrRepositoryUnavailable)
}

func TestList_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	testutil.WriteFile(t, file, "x")

	_, err := store.New(file).List()
	assert.ErrorIs(t, err, store.ErrRepositoryUnavailable)
}

func TestList_Restartable(t *testing.T) {
	repo := store.New(testutil.SoberStore(t))

	seq, err := repo.List()
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// 중간에 멈춰도 다음 순회에 영향이 없다.
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)
	assert.Len(t, slices.Collect(seq), 2)
}

func TestList_TrimTxtSuffix(t *testing.T) {
	dir := testutil.TempStore(t, map[string]string{
		"cookies_work.txt": "B",
		"cookies_home":     "C",
		"cookies_old.bak":  "skipped",
		"cookies_dup":      "1",
		"cookies_dup.txt":  "2",
	})
	repo := store.New(dir, store.WithTrimTxtSuffix(true))

	assert.ElementsMatch(t, []string{"work", "home"}, ids(t, repo))

	p, err := repo.Lookup("work")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cookies_work.txt"), p.Path)

	_, err = repo.Lookup("dup")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestList_WithoutTrimKeepsSuffix(t *testing.T) {
	repo := store.New(testutil.TempStore(t, map[string]string{"cookies_work.txt": "B"}))
	assert.Equal(t, []string{"work.txt"}, ids(t, repo))
}

func TestLookup(t *testing.T) {
	repo := store.New(testutil.SoberStore(t))

	p, err := repo.Lookup("home")
	require.NoError(t, err)
	assert.Equal(t, "home", p.ID)

	_, err = repo.Lookup("office")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)

	_, err = repo.Lookup("../cookies")
	assert.ErrorIs(t, err, store.ErrInvalidIdentifier)
}

func TestStat_BackupVanished(t *testing.T) {
	dir := testutil.SoberStore(t)
	repo := store.New(dir)

	p, err := repo.Lookup("work")
	require.NoError(t, err)
	require.NoError(t, repo.Stat(p))

	require.NoError(t, os.Remove(p.Path))
	assert.ErrorIs(t, repo.Stat(p), store.ErrProfileNotFound)
}

func TestStat_ForeignPath(t *testing.T) {
	repo := store.New(testutil.SoberStore(t))
	other := testutil.SoberStore(t)

	err := repo.Stat(store.Profile{ID: "work", Path: filepath.Join(other, "cookies_work")})
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestHasActive(t *testing.T) {
	ok, err := store.New(testutil.SoberStore(t)).HasActive()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.New(t.TempDir()).HasActive()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"work", false},
		{"work_alt", false},
		{"a.b", false},
		{"", true},
		{".", true},
		{"..", true},
		{".hidden", true},
		{"a/b", true},
		{`a\b`, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := store.ValidateID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, store.ErrInvalidIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"work", "Work"},
		{"work_alt", "Work Alt"},
		{"MAIN-account", "Main Account"},
		{"émile", "Émile"},
		{"__", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Profile{ID: tt.id}.DisplayName())
		})
	}
}

func TestList_Symlinks(t *testing.T) {
	dir := testutil.TempStore(t, map[string]string{"cookies_work": "B"})
	target := t.TempDir()
	testutil.WriteFile(t, filepath.Join(target, "saved"), "S")

	require.NoError(t, os.Symlink(target, filepath.Join(dir, "cookies_linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(target, "missing"), filepath.Join(dir, "cookies_dangling")))
	require.NoError(t, os.Symlink(filepath.Join(target, "saved"), filepath.Join(dir, "cookies_linked")))

	assert.ElementsMatch(t, []string{"linked", "work"}, ids(t, store.New(dir)))
}

func TestList_SymlinkedDirectoryDoesNotMakeTxtAmbiguous(t *testing.T) {
	dir := testutil.TempStore(t, map[string]string{"cookies_a.txt": "A"})
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(dir, "cookies_a")))

	assert.Equal(t, []string{"a"}, ids(t, store.New(dir, store.WithTrimTxtSuffix(true))))
}

func TestActiveWritable(t *testing.T) {
	t.Run("missing active file", func(t *testing.T) {
		assert.NoError(t, store.New(t.TempDir()).ActiveWritable())
	})
	t.Run("writable", func(t *testing.T) {
		dir := testutil.SoberStore(t)
		require.NoError(t, store.New(dir).ActiveWritable())
		assert.Equal(t, "A", testutil.ReadFile(t, filepath.Join(dir, "cookies")))
	})
	t.Run("read-only", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		dir := testutil.SoberStore(t)
		require.NoError(t, os.Chmod(filepath.Join(dir, "cookies"), 0400))

		err := store.New(dir).ActiveWritable()
		assert.ErrorIs(t, err, store.ErrPermissionDenied)
	})
}
