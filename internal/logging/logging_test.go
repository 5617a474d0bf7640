// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-workbench/pkg/types"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	log.WithField("op", "split").Debug("extracting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "split", entry["op"])
	assert.Equal(t, "extracting", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "error", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Warn("ignored")
	assert.Empty(t, buf.String())
	log.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Defaults(t *testing.T) {
	log, err := New(types.LogConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(types.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(types.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
