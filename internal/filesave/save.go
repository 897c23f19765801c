package filesave

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Package-level hooks for testing.
var (
	writeFile  = os.WriteFile
	newBatchID = uuid.NewString
)

// SaveFile decodes data and writes it to path, creating or truncating the
// file. The path is used as given.
//
// The write is not atomic: a failed write may leave a truncated file behind.
func SaveFile(path, data string) SaveResult {
	if _, err := writeDataURI(path, data); err != nil {
		log.Printf("[filesave] save %s failed: %v", path, err)
		return SaveResult{Error: err.Error()}
	}
	return SaveResult{Success: true}
}

// SaveFiles writes every entry into folder, in order, one at a time.
//
// An entry failing never stops the entries after it, and earlier writes are
// never rolled back. Results has exactly one element per entry, in input
// order, including entries that share a name (the later one wins on disk).
func SaveFiles(folder string, files []FileEntry) (result BatchResult) {
	batchID := newBatchID()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[filesave] batch %s aborted: %v", batchID, r)
			result = BatchResult{
				BatchID: batchID,
				Error:   fmt.Sprintf("batch aborted: %v", r),
				Results: []EntryResult{},
			}
		}
	}()

	results := make([]EntryResult, 0, len(files))
	allSucceeded := true

	for _, f := range files {
		entry := saveEntry(folder, f)
		if !entry.Success {
			allSucceeded = false
			log.Printf("[filesave] batch %s: %s failed: %s", batchID, f.Name, entry.Error)
		}
		results = append(results, entry)
	}

	result = BatchResult{
		Success:      true,
		BatchID:      batchID,
		AllSucceeded: allSucceeded,
		Results:      results,
	}
	log.Printf("[filesave] batch %s: wrote %d/%d file(s) to %s", batchID, result.Saved(), len(files), folder)
	return result
}

func saveEntry(folder string, f FileEntry) EntryResult {
	path := filepath.Join(folder, f.Name)

	data, err := writeDataURI(path, f.Data)
	if err != nil {
		return EntryResult{Name: f.Name, Error: err.Error()}
	}

	return EntryResult{
		Name:     f.Name,
		Success:  true,
		Bytes:    len(data),
		MimeType: sniffMimeType(data),
	}
}

// writeDataURI decodes data and writes the bytes to path.
// Returns the decoded bytes on success.
func writeDataURI(path, data string) ([]byte, error) {
	decoded, err := DecodeDataURI(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if err := writeFile(path, decoded, 0644); err != nil {
		return nil, err
	}
	return decoded, nil
}
