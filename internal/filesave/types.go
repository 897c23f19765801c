// Package filesave writes base64 data URIs to disk on behalf of the front-end.
//
// Every failure is converted into result data so that nothing crossing the
// bridge can take the host process down.
package filesave

// FileEntry is one file of a batch save request.
type FileEntry struct {
	Name string `json:"name"`
	Data string `json:"data"` // data URI or raw base64
}

// SaveResult is the outcome of a single-file save.
type SaveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// EntryResult is the outcome of one entry of a batch save.
type EntryResult struct {
	Name     string `json:"name"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Bytes    int    `json:"bytes,omitempty"`
	MimeType string `json:"mimeType,omitempty"` // sniffed from the decoded bytes
}

// BatchResult is the outcome of a batch save.
//
// Success reports only that the batch ran to completion. Callers must look at
// Results (or AllSucceeded) to learn whether individual files were written.
type BatchResult struct {
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	BatchID      string        `json:"batchId"`
	AllSucceeded bool          `json:"allSucceeded"`
	Results      []EntryResult `json:"results"`
}

// Saved returns the number of entries that were written successfully.
func (r BatchResult) Saved() int {
	n := 0
	for _, e := range r.Results {
		if e.Success {
			n++
		}
	}
	return n
}
