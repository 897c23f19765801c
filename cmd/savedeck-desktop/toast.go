package main

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// eventsEmit is swapped in tests; the real runtime needs a Wails context.
var eventsEmit = wailsRuntime.EventsEmit

// emitToast sends a toast notification to the frontend
func emitToast(ctx context.Context, message, toastType string) {
	if ctx == nil {
		return
	}
	eventsEmit(ctx, "toast:show", map[string]string{
		"message": message,
		"type":    toastType, // "info", "success", "error", "warning"
	})
}
