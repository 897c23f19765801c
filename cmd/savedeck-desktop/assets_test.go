package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevMode(t *testing.T) {
	origGetEnvVar := getEnvVar
	origVersion := Version
	t.Cleanup(func() {
		getEnvVar = origGetEnvVar
		Version = origVersion
	})

	env := map[string]string{}
	getEnvVar = func(key string) string { return env[key] }

	Version = "1.2.0"
	assert.False(t, isDevMode())

	env["SAVEDECK_DEV"] = "1"
	assert.True(t, isDevMode())

	delete(env, "SAVEDECK_DEV")
	Version = devVersion
	assert.False(t, isDevMode(), "unversioned builds serve the embedded frontend")
	assert.True(t, isDevBuild())
}

func TestAssetServerOptions_UnversionedBuildServesEmbeddedFrontend(t *testing.T) {
	origGetEnvVar := getEnvVar
	origVersion := Version
	t.Cleanup(func() {
		getEnvVar = origGetEnvVar
		Version = origVersion
	})
	getEnvVar = func(string) string { return "" }
	Version = devVersion

	opts, err := assetServerOptions(isDevMode(), defaultDevServerURL)
	require.NoError(t, err)
	assert.NotNil(t, opts.Assets)
	assert.Nil(t, opts.Handler)
}

func TestAssetServerOptions_ProductionServesEmbeddedBuild(t *testing.T) {
	opts, err := assetServerOptions(false, "http://localhost:5173")
	require.NoError(t, err)
	assert.NotNil(t, opts.Assets)
	assert.Nil(t, opts.Handler)
}

func TestAssetServerOptions_DevProxiesToDevServer(t *testing.T) {
	devServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "dev:"+r.URL.Path)
	}))
	defer devServer.Close()

	opts, err := assetServerOptions(true, devServer.URL)
	require.NoError(t, err)
	assert.Nil(t, opts.Assets)
	require.NotNil(t, opts.Handler)

	rec := httptest.NewRecorder()
	opts.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/src/main.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev:/src/main.js", rec.Body.String())
}

func TestAssetServerOptions_RejectsInvalidDevURL(t *testing.T) {
	_, err := assetServerOptions(true, "::not a url")
	assert.Error(t, err)
}

func TestEmbeddedFrontendHasIndex(t *testing.T) {
	data, err := assets.ReadFile("frontend/dist/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "SaveDeck")
}
