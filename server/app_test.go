package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msx-backend/config"
	"msx-backend/msx/actions"
	"msx-backend/msx/routes"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(public, "tvx-plugin.min.js"), []byte("// runtime"), 0o644))
	return config.Config{
		Port:              "0",
		AppEnv:            "test",
		BaseURL:           "https://msx.example.com",
		AppName:           "MSX Player",
		AppVersion:        "1.0.0",
		PublicDir:         public,
		PluginScriptURL:   "//msx.benzac.de/js/tvx-plugin.min.js",
		SearchResultCount: 3,
		SampleVideoURL:    "https://msx.benzac.de/media/thankyou.mp4",
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app, err := Bootstrap(testConfig(t))
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestBootstrapRejectsVideoURLOutsideActionGrammar(t *testing.T) {
	cfg := testConfig(t)
	cfg.SampleVideoURL = "https://cdn.example.com/media/clip@2x.mp4"

	app, err := Bootstrap(cfg)
	require.ErrorIs(t, err, actions.ErrInvalidAction)
	assert.Nil(t, app)
}

func TestSearchResultsScenario(t *testing.T) {
	resp, body := get(t, newTestApp(t), "/msx/search_results?query=matrix")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	doc := decode(t, body)
	assert.Contains(t, doc["headline"], "matrix")
	assert.GreaterOrEqual(t, len(doc["items"].([]any)), 1)
}

func TestSearchResultsEmptyQuery(t *testing.T) {
	app := newTestApp(t)
	for _, target := range []string{"/msx/search_results?query=", "/msx/search_results", "/msx/search_results?query=%20%20"} {
		resp, body := get(t, app, target)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, target)

		doc := decode(t, body)
		assert.Equal(t, "Ошибка поиска", doc["headline"])
		items := doc["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "Пустой запрос", items[0].(map[string]any)["title"])
	}
}

func TestSearchResultsEscapesQuery(t *testing.T) {
	q := `the "best" \ movie`
	resp, body := get(t, newTestApp(t), "/msx/search_results?query="+url.QueryEscape(q))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `Найдено для "`+q+`"`, decode(t, body)["headline"])
}

func TestMenuScenario(t *testing.T) {
	resp, body := get(t, newTestApp(t), "/msx/menu.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	menu := decode(t, body)["menu"].([]any)
	require.NotEmpty(t, menu)
	assert.Equal(t, map[string]any{"type": "separator", "label": "Поиск"}, menu[0])
}

func TestStartupIsConstant(t *testing.T) {
	app := newTestApp(t)
	_, first := get(t, app, "/msx/start.json")
	_, second := get(t, app, "/start.json")
	assert.JSONEq(t, string(first), string(second))

	start := decode(t, first)
	assert.Equal(t, "menu:https://msx.example.com/msx/menu.json", start["parameter"])
	assert.Equal(t, "MSX Player", start["name"])
}

func TestUnknownPathScenario(t *testing.T) {
	resp, body := get(t, newTestApp(t), "/unknown/path")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Endpoint not found","path":"/unknown/path"}`, string(body))
}

func TestHealth(t *testing.T) {
	resp, body := get(t, newTestApp(t), "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health := decode(t, body)
	assert.Equal(t, "OK", health["status"])
	assert.NotEmpty(t, health["timestamp"])
}

func TestBannerListsEndpoints(t *testing.T) {
	_, body := get(t, newTestApp(t), "/")
	banner := decode(t, body)
	assert.Equal(t, "MSX Player Server is running!", banner["message"])
	assert.Contains(t, banner["endpoints"], "/msx/menu.json")
	assert.Contains(t, banner["endpoints"], "/msx/interaction/search.html")
}

func TestSearchFormEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, first := get(t, app, "/msx/interaction/search_form")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, second := get(t, app, "/msx/interaction/search_form")
	assert.JSONEq(t, string(first), string(second))
	assert.Contains(t, string(first), "{query:{search_query}}")
}

func TestInteractionRequestEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, body := get(t, app, "/msx/interaction/request?dataId=search&query=matrix")
	res := decode(t, body)
	assert.Equal(t, true, res["success"])
	assert.Contains(t, res["payload"].(map[string]any)["headline"], "matrix")

	_, body = get(t, app, "/msx/interaction/request?dataId=search&query=")
	res = decode(t, body)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "Ошибка поиска", res["payload"].(map[string]any)["headline"])

	resp, body := get(t, app, "/msx/interaction/request?dataId=foo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res = decode(t, body)
	assert.Equal(t, false, res["success"])
	assert.Equal(t, "Unknown request: foo", res["payload"])
}

func TestSearchPageTransport(t *testing.T) {
	resp, body := get(t, newTestApp(t), "/msx/interaction/search.html")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/html"))
	assert.Equal(t, "ALLOWALL", resp.Header.Get(fiber.HeaderXFrameOptions))
	assert.Equal(t, "frame-ancestors *", resp.Header.Get(fiber.HeaderContentSecurityPolicy))
	assert.Contains(t, string(body), "TVXInteractionPlugin")
	assert.Contains(t, string(body), "search_query")
}

func TestPluginInfo(t *testing.T) {
	_, body := get(t, newTestApp(t), "/msx/interaction/info")
	info := decode(t, body)
	assert.Equal(t, "search.interaction.plugin", info["id"])
	assert.Equal(t, []any{"init", "search"}, info["phases"])
}

func TestStaticAssets(t *testing.T) {
	app := newTestApp(t)
	resp, body := get(t, app, "/msx/tvx-plugin.min.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "// runtime", string(body))

	resp, body = get(t, app, "/msx/missing.js")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "/msx/missing.js", decode(t, body)["path"])
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/msx/menu.json", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://tv.local")
	resp, err := newTestApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := newTestApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	resp, err = newTestApp(t).Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestInternalFaultIsGeneric(t *testing.T) {
	table := routes.Table{
		{Method: fiber.MethodGet, Path: "/panic", Handlers: []fiber.Handler{func(*fiber.Ctx) error { panic("secret detail") }}},
		{Method: fiber.MethodGet, Path: "/fail", Handlers: []fiber.Handler{func(*fiber.Ctx) error { return io.ErrUnexpectedEOF }}},
	}
	app := New(testConfig(t), table)

	for _, target := range []string{"/panic", "/fail"} {
		resp, body := get(t, app, target)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, target)
		assert.JSONEq(t, `{"error":"Something went wrong!"}`, string(body))
	}

	resp, _ := get(t, app, "/health")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "server keeps serving after a fault")
}
