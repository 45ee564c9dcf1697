package server

import (
	"context"
	"encoding/json"
	"image"
	_ "image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkawower/shade/internal/controller"
	"github.com/darkawower/shade/internal/theme"
)

// fakeController is a canned ThemeController.
type fakeController struct {
	theme     theme.Theme
	source    controller.Source
	toggleErr error
	setErr    error
	toggles   int
}

func (f *fakeController) ResolveWithSource() (theme.Theme, controller.Source) {
	return f.theme, f.source
}

func (f *fakeController) Toggle() error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.theme = f.theme.Toggle()
	f.source = controller.SourceStored
	f.toggles++
	return nil
}

func (f *fakeController) Set(t theme.Theme) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.theme = t
	f.source = controller.SourceStored
	return nil
}

func newTestServer(ctrl ThemeController) *httptest.Server {
	s := New(ctrl, Config{Listen: "localhost:0", Version: "test", IconSize: 16})
	return httptest.NewServer(s.routes())
}

func decodeTheme(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestServer_GetTheme(t *testing.T) {
	ctrl := &fakeController{theme: theme.Light, source: controller.SourceSystem}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/theme")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeTheme(t, resp)
	assert.Equal(t, "light", body["theme"])
	assert.Equal(t, "system", body["source"])
	assert.Equal(t, theme.GlyphMoon, body["glyph"])
}

func TestServer_Toggle(t *testing.T) {
	ctrl := &fakeController{theme: theme.Light, source: controller.SourceStored}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme/toggle", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeTheme(t, resp)
	assert.Equal(t, "dark", body["theme"])
	assert.Equal(t, theme.GlyphSun, body["glyph"])
	assert.Equal(t, 1, ctrl.toggles)
}

func TestServer_ToggleError(t *testing.T) {
	ctrl := &fakeController{theme: theme.Light, toggleErr: assert.AnError}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme/toggle", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_SetTheme(t *testing.T) {
	ctrl := &fakeController{theme: theme.Light, source: controller.SourceSystem}
	ts := newTestServer(ctrl)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/theme/dark", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeTheme(t, resp)
	assert.Equal(t, "dark", body["theme"])
	assert.Equal(t, theme.Dark, ctrl.theme)
}

func TestServer_SetThemeInvalid(t *testing.T) {
	ctrl := &fakeController{theme: theme.Light}
	ts := newTestServer(ctrl)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/theme/sepia", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Icon(t *testing.T) {
	ctrl := &fakeController{theme: theme.Dark, source: controller.SourceStored}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/icon.png")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, format, err := image.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
}

func TestServer_Ping(t *testing.T) {
	ts := newTestServer(&fakeController{theme: theme.Light})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_StartWatcher(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("# initial"), 0644))

	var reloads int32
	s := New(&fakeController{theme: theme.Light}, Config{Listen: "localhost:0"})
	s.Reload = func() error {
		atomic.AddInt32(&reloads, 1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.StartWatcher(ctx, configFile))

	require.NoError(t, os.WriteFile(configFile, []byte("# changed"), 0644))

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) > 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestServer_StartWatcherErrors(t *testing.T) {
	s := New(&fakeController{theme: theme.Light}, Config{})

	err := s.StartWatcher(context.Background(), "config.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload callback")

	s.Reload = func() error { return nil }
	err = s.StartWatcher(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}
