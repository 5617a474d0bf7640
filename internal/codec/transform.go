// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Merge concatenates docs in order into one document.
func Merge(docs []*Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, &Error{Op: "merge", Msg: "no documents"}
	}
	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d.data)
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, newConfig("")); err != nil {
		return nil, wrap("merge", err)
	}
	return buf.Bytes(), nil
}

// Rotate adds angles[page] degrees of clockwise rotation to each listed
// page. Pages not in angles keep their rotation; page order and count
// are unchanged. Every key must be a page of the document.
func (d *Document) Rotate(angles map[int]int) ([]byte, error) {
	byAngle := make(map[int][]string)
	for page, angle := range angles {
		if page < 1 || page > d.ctx.PageCount {
			return nil, &Error{Op: "rotate", Msg: fmt.Sprintf("page %d does not exist", page)}
		}
		byAngle[angle] = append(byAngle[angle], strconv.Itoa(page))
	}

	keys := make([]int, 0, len(byAngle))
	for angle := range byAngle {
		keys = append(keys, angle)
	}
	sort.Ints(keys)

	out := d.data
	for _, angle := range keys {
		pages := byAngle[angle]
		sort.Strings(pages)
		var buf bytes.Buffer
		if err := api.Rotate(bytes.NewReader(out), &buf, angle, pages, newConfig("")); err != nil {
			return nil, wrap("rotate", err)
		}
		out = buf.Bytes()
	}
	return out, nil
}

// Stamp describes a watermark overlay. Exactly one of Text or Image is set.
type Stamp struct {
	// Text is stamped with the codec's core font.
	Text string

	// Image is a PNG overlay, already colored and rotated.
	Image []byte

	// Color is the text fill color as #RRGGBB; unused for images.
	Color string

	// FontSize is the text size in points; unused for images.
	FontSize float64

	// Rotation is the text angle in degrees; images are placed unrotated.
	Rotation float64

	// Opacity is the fill opacity in (0, 1].
	Opacity float64

	// Scale is the overlay size relative to the page.
	Scale float64
}

// description renders s in pdfcpu's watermark description syntax. The
// overlay is always centered.
func (s Stamp) description() string {
	if s.Image != nil {
		return fmt.Sprintf("position:c, rotation:0, opacity:%.2f, scalefactor:%.2f rel", s.Opacity, s.Scale)
	}
	return fmt.Sprintf("fontname:Helvetica, points:%d, position:c, rotation:%.0f, fillcolor:%s, opacity:%.2f, scalefactor:%.2f rel",
		int(s.FontSize), s.Rotation, s.Color, s.Opacity, s.Scale)
}

// Watermark overlays s onto every page.
func (d *Document) Watermark(s Stamp) ([]byte, error) {
	var (
		wm  *model.Watermark
		err error
	)
	switch {
	case s.Image != nil:
		wm, err = api.ImageWatermarkForReader(bytes.NewReader(s.Image), s.description(), true, false, types.POINTS)
	case s.Text != "":
		wm, err = api.TextWatermark(s.Text, s.description(), true, false, types.POINTS)
	default:
		return nil, &Error{Op: "watermark", Msg: "watermark text is empty"}
	}
	if err != nil {
		return nil, wrap("watermark", err)
	}

	var buf bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(d.data), &buf, nil, wm, newConfig("")); err != nil {
		return nil, wrap("watermark", err)
	}
	return buf.Bytes(), nil
}

// EncryptOptions selects the password and cipher for Encrypt.
type EncryptOptions struct {
	// UserPassword is required to open the document.
	UserPassword string

	// OwnerPassword grants full permissions; defaults to UserPassword.
	OwnerPassword string

	// KeyLength is 40, 128 or 256.
	KeyLength int

	// AES selects AES; otherwise RC4.
	AES bool
}

// Encrypt returns the document protected with opts.UserPassword.
func (d *Document) Encrypt(opts EncryptOptions) ([]byte, error) {
	if opts.UserPassword == "" {
		return nil, &Error{Op: "encrypt", Msg: "password is empty"}
	}
	conf := newConfig("")
	conf.UserPW = opts.UserPassword
	conf.OwnerPW = opts.OwnerPassword
	if conf.OwnerPW == "" {
		conf.OwnerPW = opts.UserPassword
	}
	conf.EncryptUsingAES = opts.AES
	if opts.KeyLength != 0 {
		conf.EncryptKeyLength = opts.KeyLength
	}

	var buf bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(d.data), &buf, conf); err != nil {
		return nil, wrap("encrypt", err)
	}
	return buf.Bytes(), nil
}
