package main

import (
	"fmt"
	"log"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// devVersion is the Version value of binaries built without ldflags.
const devVersion = "0.1.0-dev"

// Package-level hooks for testing.
var getEnvVar = os.Getenv

// isDevMode reports whether the window should load the frontend dev server
// instead of the embedded build. Only SAVEDECK_DEV turns it on.
func isDevMode() bool {
	return getEnvVar("SAVEDECK_DEV") != ""
}

// isDevBuild reports whether this binary was built without a release version.
func isDevBuild() bool {
	return Version == devVersion
}

// assetServerOptions returns the asset server configuration for the window.
// In dev mode every request is proxied to the frontend dev server so hot
// reload keeps working; otherwise the embedded frontend/dist is served.
func assetServerOptions(isDev bool, devServerURL string) (*assetserver.Options, error) {
	if !isDev {
		return &assetserver.Options{Assets: assets}, nil
	}

	target, err := url.Parse(devServerURL)
	if err != nil || target.Host == "" {
		return nil, fmt.Errorf("invalid dev server url %q", devServerURL)
	}

	log.Printf("[assets] dev mode: proxying frontend to %s", target)

	// Assets is left nil so the handler serves every request
	return &assetserver.Options{
		Handler: httputil.NewSingleHostReverseProxy(target),
	}, nil
}
