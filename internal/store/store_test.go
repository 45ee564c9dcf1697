package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore(t *testing.T) {
	s := NewFileStore("/tmp/prefs.json")
	require.NotNil(t, s)
	assert.Equal(t, "/tmp/prefs.json", s.Path())
}

func TestNewFileStore_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	s := NewFileStore("~/prefs.json")
	assert.Equal(t, filepath.Join(home, "prefs.json"), s.Path())
}

func TestFileStore_Get(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		key      string
		expected string
		present  bool
		wantErr  bool
	}{
		{
			name:     "existing key",
			content:  `{"shade.theme": "dark"}`,
			key:      "shade.theme",
			expected: "dark",
			present:  true,
		},
		{
			name:    "missing key",
			content: `{"other": "value"}`,
			key:     "shade.theme",
			present: false,
		},
		{
			name:    "empty file",
			content: "",
			key:     "shade.theme",
			present: false,
		},
		{
			name:    "invalid json",
			content: "{not json",
			key:     "shade.theme",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			v, ok, err := NewFileStore(path).Get(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestFileStore_Get_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	_, ok, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_Set(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set(ThemeKey, "dark"))

	v, ok, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// overwrite
	require.NoError(t, s.Set(ThemeKey, "light"))
	v, ok, err = s.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFileStore_Set_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set("other.key", "kept"))
	require.NoError(t, s.Set(ThemeKey, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var values map[string]string
	require.NoError(t, json.Unmarshal(data, &values))
	assert.Equal(t, "kept", values["other.key"])
	assert.Equal(t, "dark", values[ThemeKey])
}

func TestFileStore_Set_EmptyPath(t *testing.T) {
	s := NewFileStore("")
	err := s.Set(ThemeKey, "dark")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not set")
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get(ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ThemeKey, "dark"))
	v, ok, err := m.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, 1, m.Writes)

	m.SetErr = assert.AnError
	require.Error(t, m.Set(ThemeKey, "light"))
	assert.Equal(t, 1, m.Writes)
}
