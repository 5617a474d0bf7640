// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the documents loaded for one interaction. A
// Session is created when the interaction starts, passed explicitly to
// every operation, and cleared with Reset when the interaction ends.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pdiddy/pdf-workbench/internal/codec"
)

// File is one loaded input document, as raw (possibly encrypted) bytes.
type File struct {
	Name string
	Data []byte
}

// Session is the per-interaction context.
type Session struct {
	// ID identifies the session in logs and history records.
	ID string

	// Started is when the session was created.
	Started time.Time

	// Password opens encrypted inputs for operations other than decrypt.
	Password string

	files []File
}

// New starts an empty session.
func New() *Session {
	return &Session{ID: newID(), Started: time.Now()}
}

func newID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("s%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// Add appends a document. Input order is kept; merge relies on it.
func (s *Session) Add(name string, data []byte) {
	s.files = append(s.files, File{Name: name, Data: data})
}

// Files returns the loaded documents in the order they were added.
func (s *Session) Files() []File {
	return s.files
}

// Names returns the document names in order.
func (s *Session) Names() []string {
	names := make([]string, len(s.files))
	for i, f := range s.files {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of loaded documents.
func (s *Session) Len() int {
	return len(s.files)
}

// Reset drops every loaded document and the session password.
func (s *Session) Reset() {
	s.files = nil
	s.Password = ""
}

// Open parses the i-th document with the session password.
func (s *Session) Open(i int) (*codec.Document, error) {
	if i < 0 || i >= len(s.files) {
		return nil, fmt.Errorf("no document at position %d (session has %d)", i+1, len(s.files))
	}
	f := s.files[i]
	return codec.Open(f.Name, f.Data, s.Password)
}

// OpenAll parses every document with the session password, in order.
func (s *Session) OpenAll() ([]*codec.Document, error) {
	docs := make([]*codec.Document, 0, len(s.files))
	for i := range s.files {
		d, err := s.Open(i)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}
