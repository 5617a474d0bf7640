// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-workbench/internal/codec"
	"github.com/pdiddy/pdf-workbench/internal/selector"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// Merge concatenates every session document, in session order.
func (r *Runner) Merge(sess *session.Session) (types.Artifact, error) {
	if sess.Len() < 2 {
		return types.Artifact{}, fmt.Errorf("%w (got %d)", ErrTooFewDocuments, sess.Len())
	}
	docs, err := sess.OpenAll()
	if err != nil {
		return types.Artifact{}, err
	}

	pages := 0
	for _, d := range docs {
		pages += d.PageCount()
	}
	r.log.WithFields(logrus.Fields{"op": "merge", "documents": len(docs), "pages": pages}).Debug("merging")

	data, err := codec.Merge(docs)
	if err != nil {
		return types.Artifact{}, err
	}
	fmt.Fprintf(r.out, "merged: %d documents, %d pages\n", len(docs), pages)
	return types.Artifact{Name: "merged_" + r.dateStamp() + ".pdf", Pages: pages, Data: data}, nil
}

// Split produces one document per range of sel, in selector order.
// Artifact N holds pages start..end of range N and is named
// split_<N>_<start>-<end>.pdf. Any failure discards every output.
func (r *Runner) Split(sess *session.Session, sel string) ([]types.Artifact, error) {
	ranges, err := selector.ParseRanges(sel)
	if err != nil {
		return nil, err
	}
	doc, err := single(sess)
	if err != nil {
		return nil, err
	}
	if err := selector.ValidateRanges(ranges, doc.PageCount()); err != nil {
		return nil, fmt.Errorf("split %s: %w", doc.Name, err)
	}

	arts := make([]types.Artifact, 0, len(ranges))
	for i, rg := range ranges {
		r.log.WithFields(logrus.Fields{"op": "split", "file": doc.Name, "range": rg.String()}).Debug("extracting")
		data, err := doc.Extract(rg.Pages())
		if err != nil {
			return nil, fmt.Errorf("split %s range %s: %w", doc.Name, rg, err)
		}
		arts = append(arts, types.Artifact{
			Name:  fmt.Sprintf("split_%d_%d-%d.pdf", i+1, rg.Start, rg.End),
			Pages: rg.Len(),
			Data:  data,
		})
	}
	fmt.Fprintf(r.out, "split: %s into %d documents\n", doc.Name, len(arts))
	return arts, nil
}

// Rotate turns the pages named in sel ("page:angle,...") and leaves the
// rest untouched. Pages that do not exist are ignored.
func (r *Runner) Rotate(sess *session.Session, sel string) (types.Artifact, error) {
	rot, err := selector.ParseRotations(sel)
	if err != nil {
		return types.Artifact{}, err
	}
	doc, err := single(sess)
	if err != nil {
		return types.Artifact{}, err
	}

	applied := rot.Apply(doc.PageCount())
	if ignored := len(rot) - len(applied); ignored > 0 {
		r.log.WithFields(logrus.Fields{"op": "rotate", "file": doc.Name, "ignored": ignored}).
			Warn("rotation targets outside the document were ignored")
	}

	data, err := doc.Rotate(applied)
	if err != nil {
		return types.Artifact{}, err
	}
	fmt.Fprintf(r.out, "rotated: %d of %d pages in %s\n", len(applied), doc.PageCount(), doc.Name)
	return types.Artifact{Name: derivedName(doc.Name, "rotated"), Pages: doc.PageCount(), Data: data}, nil
}

// Delete removes the pages listed in sel and keeps the rest in order.
// Listed pages that do not exist are ignored.
func (r *Runner) Delete(sess *session.Session, sel string) (types.Artifact, error) {
	remove, err := selector.ParsePageList(sel)
	if err != nil {
		return types.Artifact{}, err
	}
	doc, err := single(sess)
	if err != nil {
		return types.Artifact{}, err
	}

	kept := selector.Delete(remove, doc.PageCount())
	if len(kept) == 0 {
		return types.Artifact{}, fmt.Errorf("delete %s: %w", doc.Name, ErrNoPagesLeft)
	}

	data, err := doc.Extract(kept)
	if err != nil {
		return types.Artifact{}, err
	}
	fmt.Fprintf(r.out, "deleted: %d pages from %s, %d remain\n", doc.PageCount()-len(kept), doc.Name, len(kept))
	return types.Artifact{Name: derivedName(doc.Name, "deleted"), Pages: len(kept), Data: data}, nil
}

// Reorder emits exactly the pages listed in sel, in that order. Pages
// may repeat or be left out; every index must exist.
func (r *Runner) Reorder(sess *session.Session, sel string) (types.Artifact, error) {
	seq, err := selector.ParsePageList(sel)
	if err != nil {
		return types.Artifact{}, err
	}
	doc, err := single(sess)
	if err != nil {
		return types.Artifact{}, err
	}

	order, err := selector.Reorder(seq, doc.PageCount())
	if err != nil {
		return types.Artifact{}, fmt.Errorf("reorder %s: %w", doc.Name, err)
	}

	data, err := doc.Extract(order)
	if err != nil {
		return types.Artifact{}, err
	}
	fmt.Fprintf(r.out, "reordered: %s into %d pages\n", doc.Name, len(order))
	return types.Artifact{Name: derivedName(doc.Name, "reordered"), Pages: len(order), Data: data}, nil
}
