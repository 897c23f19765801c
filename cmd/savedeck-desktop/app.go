package main

import (
	"context"
	"fmt"
	"log"
	goruntime "runtime"

	"github.com/myrison/savedeck/internal/filesave"
)

// Version is set at build time via ldflags.
var Version = devVersion

// App is bound to the frontend. Its exported methods are the complete set of
// operations the frontend can invoke; keep host-only helpers unexported.
type App struct {
	ctx      context.Context
	settings *DesktopSettingsManager
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{
		settings: NewDesktopSettingsManager(),
	}
}

// startup is called when the app starts.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if err := a.settings.EnsureExists(); err != nil {
		log.Printf("[settings] failed to write default config: %v", err)
	}
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	log.Printf("[app] shutting down")
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return Version
}

// GetPlatform returns the host operating system identifier
// ("darwin", "linux", "windows").
func (a *App) GetPlatform() string {
	return goruntime.GOOS
}

// SaveFile writes a base64 data URI to filePath, creating or overwriting it.
// Failures are reported in the result, never as an error.
func (a *App) SaveFile(filePath, data string) filesave.SaveResult {
	return filesave.SaveFile(filePath, data)
}

// SaveFiles writes each entry into folderPath and reports a per-file result
// in input order. The batch-level Success only means the batch ran; check
// AllSucceeded or Results for individual outcomes.
func (a *App) SaveFiles(folderPath string, files []filesave.FileEntry) filesave.BatchResult {
	result := filesave.SaveFiles(folderPath, files)
	a.notifyBatchResult(result)
	return result
}

// notifyBatchResult shows a toast summarising a batch save.
func (a *App) notifyBatchResult(result filesave.BatchResult) {
	total := len(result.Results)

	switch {
	case !result.Success:
		emitToast(a.ctx, "Saving files failed: "+result.Error, "error")
	case total == 0:
		return
	case result.AllSucceeded:
		emitToast(a.ctx, fmt.Sprintf("Saved %d file(s)", total), "success")
	case result.Saved() == 0:
		emitToast(a.ctx, fmt.Sprintf("Could not save any of %d file(s)", total), "error")
	default:
		emitToast(a.ctx, fmt.Sprintf("Saved %d of %d file(s)", result.Saved(), total), "warning")
	}
}
