package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath = ""
	jsonOutput = false
	forceInit = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// isolateConfig keeps config discovery away from the developer's files.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("TELEPATHY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func tracksFixture(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "tracks.json"))
	require.NoError(t, err)
	return path
}

// writeTestConfig writes a valid config pointing the catalog at baseURL.
func writeTestConfig(t *testing.T, baseURL, tracks string) string {
	t.Helper()
	content := fmt.Sprintf(`
[log]
level = "error"

[catalog]
base_url = %q
page = "1021"
space = "3854"
timeout = "5s"

[catalog.query]
content_id = "1271432825"
page_enum = "watch"
tab_name = "movie"

[catalog.headers]
accept-language = "eng"
x-hs-usertoken = "${TEST_HS_TOKEN:-token}"

[playback]
manifest_url = "https://example.com/manifest.mpd"
drm_scheme = "widevine"
license_url = "https://license.example.com/no_auth"
tracks = %q
`, baseURL, tracks)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const catalogBody = `{"success":{"space":{"widget_wrappers":[{"widget":{"data":{"items":[
{"vertical_content_poster":{"data":{"expanded_content_poster":{"content_info":{"title":"Movie A","description":"Desc A"}}}}}
]}}}]}}}`

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/internal/bff/v2/pages/1021/spaces/3854", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
