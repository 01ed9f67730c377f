// Package library loads and serves the static idea library.
package library

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smith505/ideafit/internal/schemas"
	"github.com/smith505/ideafit/internal/types"
)

// Document is the on-disk shape of the idea library, produced offline by the
// ingestion pipeline.
type Document struct {
	Candidates []types.Candidate `json:"candidates"`
	Tracks     []types.Track     `json:"tracks"`
}

// Library is an immutable, validated candidate collection. Constructed once at
// process start and safe for concurrent reads; nothing mutates it afterwards.
type Library struct {
	candidates []types.Candidate
	byID       map[string]*types.Candidate
	trackNames map[string]string
}

// New builds a Library from a document, enforcing load-time invariants:
// at least one candidate and unique candidate ids.
func New(doc Document) (*Library, error) {
	if len(doc.Candidates) == 0 {
		return nil, ErrEmptyLibrary
	}

	lib := &Library{
		candidates: doc.Candidates,
		byID:       make(map[string]*types.Candidate, len(doc.Candidates)),
		trackNames: make(map[string]string, len(doc.Tracks)),
	}

	for i := range lib.candidates {
		c := &lib.candidates[i]
		if _, exists := lib.byID[c.ID]; exists {
			return nil, &DuplicateIDError{ID: c.ID}
		}
		lib.byID[c.ID] = c
	}

	for _, t := range doc.Tracks {
		lib.trackNames[t.ID] = t.Name
	}

	return lib, nil
}

// Load reads a library document from disk, validates it against the JSON
// schema, and constructs a Library.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file %s: %w", path, err)
	}

	if err := schemas.ValidateLibraryDocument(data); err != nil {
		return nil, fmt.Errorf("invalid library document %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse library JSON %s: %w", path, err)
	}

	return New(doc)
}

// Candidates returns the candidate set in library order. Callers must not
// mutate the returned slice.
func (l *Library) Candidates() []types.Candidate {
	return l.candidates
}

// Len returns the number of candidates.
func (l *Library) Len() int {
	return len(l.candidates)
}

// ByID returns the candidate with the given id, or nil when unknown.
func (l *Library) ByID(id string) *types.Candidate {
	return l.byID[id]
}

// TrackName resolves a track id to its display name. Track ids are loose
// string keys, not foreign keys, so unknown ids resolve to themselves.
func (l *Library) TrackName(trackID string) string {
	if name, ok := l.trackNames[trackID]; ok {
		return name
	}
	return trackID
}
