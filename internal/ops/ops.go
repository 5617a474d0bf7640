// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ops implements the document operations: merge, split, rotate,
// delete, reorder, watermark, encrypt and decrypt. Each operation reads
// its inputs from a session, applies one transformation through the
// codec, and returns named artifacts. Nothing is written to disk here;
// see WriteDir and WriteArchive.
package ops

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-workbench/internal/codec"
	"github.com/pdiddy/pdf-workbench/internal/logging"
	"github.com/pdiddy/pdf-workbench/internal/selector"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

var (
	// ErrTooFewDocuments is returned by Merge for fewer than two inputs.
	ErrTooFewDocuments = errors.New("merge needs at least two documents")

	// ErrNoPagesLeft is returned by Delete when every page is removed.
	ErrNoPagesLeft = errors.New("cannot delete every page of a document")

	// ErrSingleDocument is returned by single-document operations given
	// zero or several inputs.
	ErrSingleDocument = errors.New("this operation takes exactly one document")
)

// Runner executes operations with a fixed configuration. Progress lines
// go to out; diagnostics go to log.
type Runner struct {
	cfg types.Config
	log logrus.FieldLogger
	out io.Writer
	now func() time.Time
}

// New returns a Runner. log and out may be nil.
func New(cfg types.Config, log logrus.FieldLogger, out io.Writer) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{cfg: cfg, log: log, out: out, now: time.Now}
}

// dateStamp returns today's date as used in output names.
func (r *Runner) dateStamp() string {
	return r.now().Format("20060102")
}

// derivedName turns "report.pdf" into "report_<suffix>.pdf".
func derivedName(name, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "document"
	}
	return base + "_" + suffix + ".pdf"
}

// Kind classifies an operation error for exit codes and history.
type Kind string

const (
	KindFormat Kind = "format"
	KindRange  Kind = "range"
	KindCodec  Kind = "codec"
	KindOther  Kind = "other"
)

// Classify returns the Kind of err.
func Classify(err error) Kind {
	var (
		fe *selector.FormatError
		re *selector.RangeError
		ce *codec.Error
	)
	switch {
	case errors.As(err, &fe):
		return KindFormat
	case errors.As(err, &re):
		return KindRange
	case errors.As(err, &ce):
		return KindCodec
	default:
		return KindOther
	}
}

// Describe renders err as a single line for the user.
func Describe(err error) string {
	var (
		fe *selector.FormatError
		re *selector.RangeError
		ce *codec.Error
	)
	switch {
	case errors.As(err, &fe):
		return "Input error: " + fe.Error()
	case errors.As(err, &re):
		return "Page range error: " + re.Error()
	case errors.As(err, &ce):
		return "PDF error: " + ce.Error()
	default:
		return "Operation failed: " + err.Error()
	}
}

// single opens the only document of a single-document operation.
func single(sess *session.Session) (*codec.Document, error) {
	if sess.Len() != 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrSingleDocument, sess.Len())
	}
	return sess.Open(0)
}
