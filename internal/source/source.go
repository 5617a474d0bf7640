// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads input documents from local paths or http(s) URLs
// and checks that what was loaded is a PDF.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-workbench/internal/httputil"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// maxDownload bounds the size of a remote document.
const maxDownload = 256 << 20

// Loader resolves input references into document bytes.
type Loader struct {
	Client *http.Client
	Config types.HTTPConfig
	Log    logrus.FieldLogger
}

// NewLoader returns a Loader using an HTTP client with cfg.Timeout.
func NewLoader(cfg types.HTTPConfig, log logrus.FieldLogger) *Loader {
	return &Loader{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Log:    log,
	}
}

// IsURL reports whether ref is an http(s) URL rather than a path.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load reads ref and returns a display name and the document bytes.
func (l *Loader) Load(ctx context.Context, ref string) (string, []byte, error) {
	var (
		name string
		data []byte
		err  error
	)
	if IsURL(ref) {
		name, data, err = l.fetch(ctx, ref)
	} else {
		name = filepath.Base(ref)
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return "", nil, fmt.Errorf("loading %s: %w", ref, err)
	}

	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return "", nil, fmt.Errorf("loading %s: not a PDF (detected %s)", ref, mt.String())
	}
	return name, data, nil
}

// LoadInto loads every ref into sess in order. It stops at the first
// failure since an operation cannot run on a partial input set.
func (l *Loader) LoadInto(ctx context.Context, sess *session.Session, refs []string) error {
	for _, ref := range refs {
		name, data, err := l.Load(ctx, ref)
		if err != nil {
			return err
		}
		sess.Add(name, data)
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (string, []byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("parsing URL: %w", err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "download.pdf"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("creating request: %w", err)
	}
	if l.Config.UserAgent != "" {
		req.Header.Set("User-Agent", l.Config.UserAgent)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, l.Config.MaxRetries, l.Log)
	if err != nil {
		return "", nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload+1))
	if err != nil {
		return "", nil, fmt.Errorf("reading response: %w", err)
	}
	if len(data) > maxDownload {
		return "", nil, fmt.Errorf("document exceeds %d MiB", maxDownload>>20)
	}
	return name, data, nil
}
