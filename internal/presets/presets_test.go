package presets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Parallel()

	store, err := Load("")
	require.NoError(t, err)

	list := store.List()
	require.Len(t, list, 2)
	require.Equal(t, "default", list[0].Name)
	require.Equal(t, "image-right", list[1].Name)

	def, err := store.Get("default")
	require.NoError(t, err)
	require.Equal(t, hero.PresetSettings(), def.Settings)

	watch, err := store.Get("IMAGE-RIGHT")
	require.NoError(t, err)
	require.Equal(t, hero.LayoutImageRight, watch.Settings.Layout)
	require.Equal(t, hero.Accent1, watch.Settings.ColorStyle)
	require.True(t, watch.Settings.HasAccent())
	require.Contains(t, string(watch.Settings.Description), "<strong>advanced smartwatch</strong>")
	require.Equal(t, "embedded/image-right.yaml", watch.Source)
}

func TestGetUnknownPreset(t *testing.T) {
	t.Parallel()

	store, err := Load("")
	require.NoError(t, err)

	_, err = store.Get("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadDirectoryOverridesAndMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "default.yaml", `
name: default
label: Overridden
order: 1
settings:
  title: Overridden title
`)
	writeFile(t, dir, "notes.yml", `
order: 30
settings:
  title: Notes
  description: "Write **bold** copy."
  description_format: markdown
  color_style: accent-2
`)
	writeFile(t, dir, "raw.json", `{"name":"raw","order":40,"settings":{"title":"JSON","description":"<p onclick=\"x()\">Hi</p>"}}`)
	writeFile(t, dir, "README.md", "ignored")

	store, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, dir, store.Dir())

	names := []string{}
	for _, p := range store.List() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"default", "image-right", "notes", "raw"}, names)

	def, err := store.Get("default")
	require.NoError(t, err)
	require.Equal(t, "Overridden", def.Label)
	require.Equal(t, "Overridden title", def.Settings.Title)
	require.Empty(t, def.Settings.Description)

	notes, err := store.Get("notes")
	require.NoError(t, err)
	require.Equal(t, "notes", notes.Label)
	require.Equal(t, hero.TrustedHTML("<p>Write <strong>bold</strong> copy.</p>"), notes.Settings.Description)
	require.Equal(t, hero.Accent2, notes.Settings.ColorStyle)
	require.Equal(t, hero.DefaultLayout, notes.Settings.Layout)

	raw, err := store.Get("raw")
	require.NoError(t, err)
	require.Equal(t, hero.TrustedHTML(`<p onclick="x()">Hi</p>`), raw.Settings.Description)
}

func TestLoadWithSanitize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "raw.yaml", `
settings:
  description: '<p onclick="x()">Hi</p><script>alert(1)</script>'
`)

	store, err := Load(dir, WithSanitize(true))
	require.NoError(t, err)

	raw, err := store.Get("raw")
	require.NoError(t, err)
	require.Equal(t, hero.TrustedHTML("<p>Hi</p>"), raw.Settings.Description)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown-field.yaml", body: "settings:\n  headline: nope\n"},
		{name: "bad-format.yaml", body: "settings:\n  description: x\n  description_format: rtf\n"},
		{name: "broken.yaml", body: "settings: [\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, dir, tc.name, tc.body)

			_, err := Load(dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), "presets: parse "+filepath.Join(dir, tc.name))
		})
	}
}

func TestReloadPicksUpNewFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, store.List(), 2)

	writeFile(t, dir, "late.yaml", "settings:\n  title: Late\n")
	require.NoError(t, store.Reload())

	late, err := store.Get("late")
	require.NoError(t, err)
	require.Equal(t, "Late", late.Settings.Title)
}

func TestLoadMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
