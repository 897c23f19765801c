package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/myrison/savedeck/internal/statefile"
)

const folderStateFile = "state.json"

// Package-level hooks for testing. In production, these use the real implementations.
var (
	openDirectoryDialog = wailsRuntime.OpenDirectoryDialog
	getStatePath        = defaultGetStatePath
)

// FolderState remembers the last folder chosen in the picker.
type FolderState struct {
	LastFolder string    `json:"lastFolder,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

func defaultGetStatePath() string {
	return filepath.Join(appDataDir(), folderStateFile)
}

// SelectFolder opens a native directory picker.
// Returns the chosen absolute path, or an empty string if the user cancelled.
// Cancelling is not an error and writes nothing.
func (a *App) SelectFolder() (string, error) {
	dir, err := openDirectoryDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title:                "Select Folder",
		DefaultDirectory:     a.initialDirectory(),
		CanCreateDirectories: true,
	})
	if err != nil {
		log.Printf("[folder-picker] dialog failed: %v", err)
		return "", fmt.Errorf("failed to open folder dialog: %w", err)
	}
	if dir == "" {
		return "", nil
	}

	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if err := rememberFolder(dir); err != nil {
		// The selection itself succeeded; only the convenience state is lost
		log.Printf("[folder-picker] failed to remember %s: %v", dir, err)
	}
	return dir, nil
}

// initialDirectory picks where the dialog opens: the last chosen folder,
// then the configured default directory, then the home directory.
func (a *App) initialDirectory() string {
	if state, err := statefile.Load[FolderState](getStatePath()); err == nil && isDir(state.LastFolder) {
		return state.LastFolder
	}

	if a.settings != nil {
		if config, err := a.settings.Load(); err == nil && isDir(config.DefaultDirectory) {
			return config.DefaultDirectory
		}
	}

	home, _ := os.UserHomeDir()
	return home
}

// rememberFolder records dir as the last chosen folder.
func rememberFolder(dir string) error {
	return statefile.Update(getStatePath(), func(state *FolderState) error {
		state.LastFolder = dir
		state.UpdatedAt = time.Now()
		return nil
	})
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
