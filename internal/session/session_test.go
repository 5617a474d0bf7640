// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-workbench/internal/codec/codectest"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Started.IsZero())
	assert.Equal(t, 0, s.Len())

	s.Add("b.pdf", codectest.Pages(2))
	s.Add("a.pdf", codectest.Pages(3))
	s.Password = "pw"

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b.pdf", "a.pdf"}, s.Names(), "insertion order kept")

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Password)
	assert.Empty(t, s.Files())
}

func TestSession_Open(t *testing.T) {
	s := New()
	s.Add("one.pdf", codectest.Pages(1))
	s.Add("three.pdf", codectest.Pages(3))

	doc, err := s.Open(1)
	require.NoError(t, err)
	assert.Equal(t, "three.pdf", doc.Name)
	assert.Equal(t, 3, doc.PageCount())

	_, err = s.Open(2)
	assert.Error(t, err)

	docs, err := s.OpenAll()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 1, docs[0].PageCount())

	s.Add("bad.pdf", []byte("nope"))
	_, err = s.OpenAll()
	assert.Error(t, err)
}

func TestSession_IDsDiffer(t *testing.T) {
	assert.NotEqual(t, New().ID, New().ID)
}
