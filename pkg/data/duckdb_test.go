package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewDuckDBRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestThemeDefaultsToLight(t *testing.T) {
	repo := setupTestDB(t)

	theme, err := repo.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestSetAndGetTheme(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.SetTheme(ThemeDark))
	theme, err := repo.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	value, ok, err := repo.GetPreference("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark-mode", value)
}

func TestLightThemeRemovesKey(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.SetTheme(ThemeDark))
	require.NoError(t, repo.SetTheme(ThemeLight))

	_, ok, err := repo.GetPreference("theme")
	require.NoError(t, err)
	assert.False(t, ok, "light theme must be stored as an absent key")
}

func TestThemePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	repo, err := NewDuckDBRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetTheme(ThemeDark))
	require.NoError(t, repo.Close())

	reopened, err := NewDuckDBRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	theme, err := reopened.GetTheme()
	require.NoError(t, err)
	assert.True(t, theme.IsDark())
}

func TestSetPreferenceUpsert(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.SetPreference("k", "one"))
	require.NoError(t, repo.SetPreference("k", "two"))

	value, ok, err := repo.GetPreference("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", value)
}

func TestThemeToggleAndParse(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeDark, ParseTheme("dark-mode"))
	assert.Equal(t, ThemeLight, ParseTheme("anything"))
	assert.Equal(t, "dark", ThemeDark.String())
}
