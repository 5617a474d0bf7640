// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codec wraps pdfcpu behind the small capability set the
// operations need: parse, page count, page extraction in arbitrary order,
// rotation, merge, watermark, encryption, and page inspection.
//
// A Document always holds unencrypted bytes. Opening an encrypted file
// with its password decrypts it in memory.
package codec

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu would otherwise create ~/.config/pdfcpu on first use.
	api.DisableConfigDir()
}

// Document is a parsed PDF held in memory.
type Document struct {
	// Name identifies the document in messages and results.
	Name string

	data []byte
	ctx  *model.Context
}

// PageInfo describes one page of a document.
type PageInfo struct {
	Number   int     `json:"number" yaml:"number"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Rotation int     `json:"rotation" yaml:"rotation"`
}

// newConfig returns a pdfcpu configuration carrying password as both the
// user and the owner password.
func newConfig(password string) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return conf
}

// Open parses data as a PDF. For encrypted documents password must be the
// user or owner password; it is ignored for unencrypted ones.
func Open(name string, data []byte, password string) (*Document, error) {
	ctx, err := readContext(data, password)
	if err != nil {
		return nil, wrap("open "+name, err)
	}

	if ctx.Encrypt != nil {
		var buf bytes.Buffer
		if err := api.Decrypt(bytes.NewReader(data), &buf, newConfig(password)); err != nil {
			return nil, wrap("open "+name, err)
		}
		data = buf.Bytes()
		if ctx, err = readContext(data, ""); err != nil {
			return nil, wrap("open "+name, err)
		}
	}

	if ctx.PageCount == 0 {
		return nil, &Error{Op: "open " + name, Msg: "document has no pages"}
	}
	return &Document{Name: name, data: data, ctx: ctx}, nil
}

func readContext(data []byte, password string) (*model.Context, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), newConfig(password))
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Bytes returns the unencrypted serialized document.
func (d *Document) Bytes() []byte {
	return d.data
}

// Extract builds a new document from the given 1-based pages, in the
// order given. Pages may repeat.
func (d *Document) Extract(pages []int) ([]byte, error) {
	if len(pages) == 0 {
		return nil, &Error{Op: "extract", Msg: "no pages selected"}
	}
	for _, p := range pages {
		if p < 1 || p > d.ctx.PageCount {
			return nil, &Error{Op: "extract", Msg: fmt.Sprintf("page %d does not exist", p)}
		}
	}

	out, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return nil, wrap("extract", err)
	}
	var buf bytes.Buffer
	if err := api.WriteContext(out, &buf); err != nil {
		return nil, wrap("extract", err)
	}
	return buf.Bytes(), nil
}

// Pages describes every page: MediaBox size and effective rotation.
func (d *Document) Pages() ([]PageInfo, error) {
	infos := make([]PageInfo, 0, d.ctx.PageCount)
	for i := 1; i <= d.ctx.PageCount; i++ {
		_, _, inh, err := d.ctx.PageDict(i, false)
		if err != nil {
			return nil, wrap("inspect", err)
		}
		info := PageInfo{Number: i, Rotation: inh.Rotate}
		if box := inh.MediaBox; box != nil {
			info.Width = box.Width()
			info.Height = box.Height()
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Inspect opens data and describes its pages.
func Inspect(name string, data []byte, password string) ([]PageInfo, error) {
	doc, err := Open(name, data, password)
	if err != nil {
		return nil, err
	}
	return doc.Pages()
}
