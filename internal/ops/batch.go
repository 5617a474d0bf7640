// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-workbench/internal/codec"
	"github.com/pdiddy/pdf-workbench/internal/overlay"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// perFile transforms one session file into an artifact.
type perFile func(f session.File) (types.Artifact, error)

// batch applies fn to every session file in order. A failing file is
// recorded and the rest still run. Cancellation marks the remaining
// files failed without processing them.
func (r *Runner) batch(ctx context.Context, sess *session.Session, op string, fn perFile) types.BatchResult {
	var result types.BatchResult
	for _, f := range sess.Files() {
		if err := ctx.Err(); err != nil {
			result.Record(types.FileResult{Name: f.Name, Message: Describe(err)})
			continue
		}

		art, err := fn(f)
		if err != nil {
			r.log.WithFields(logrus.Fields{"op": op, "file": f.Name}).WithError(err).Info("file failed")
			fmt.Fprintf(r.out, "failed:  %s (%s)\n", f.Name, Describe(err))
			result.Record(types.FileResult{Name: f.Name, Message: Describe(err)})
			continue
		}
		fmt.Fprintf(r.out, "%s: %s -> %s\n", op, f.Name, art.Name)
		result.Record(types.FileResult{Name: f.Name, OK: true, Output: &art})
	}
	fmt.Fprintf(r.out, "\n%s summary: %d succeeded, %d failed (total: %d)\n",
		op, result.Succeeded, result.Failed, result.Total())
	return result
}

// WatermarkOptions carries the per-invocation watermark settings. Empty
// fields fall back to the configured watermark policy.
type WatermarkOptions struct {
	Text  string
	Color string
}

// Watermark stamps opts.Text centered on every page of every session
// document, using the configured angle, opacity and mode.
func (r *Runner) Watermark(ctx context.Context, sess *session.Session, opts WatermarkOptions) (types.BatchResult, error) {
	stamp, err := r.watermarkStamp(opts)
	if err != nil {
		return types.BatchResult{}, err
	}
	return r.batch(ctx, sess, "watermark", func(f session.File) (types.Artifact, error) {
		doc, err := codec.Open(f.Name, f.Data, sess.Password)
		if err != nil {
			return types.Artifact{}, err
		}
		data, err := doc.Watermark(stamp)
		if err != nil {
			return types.Artifact{}, err
		}
		return types.Artifact{Name: derivedName(f.Name, "watermarked"), Pages: doc.PageCount(), Data: data}, nil
	}), nil
}

// watermarkStamp builds the codec stamp for opts under the configured policy.
// Image mode rasterizes the text here so the codec only places it.
func (r *Runner) watermarkStamp(opts WatermarkOptions) (codec.Stamp, error) {
	wc := r.cfg.Watermark
	if opts.Color != "" {
		wc.Color = opts.Color
	}
	if opts.Text == "" {
		return codec.Stamp{}, fmt.Errorf("watermark text is empty")
	}
	col, err := overlay.ParseColor(wc.Color)
	if err != nil {
		return codec.Stamp{}, err
	}
	hex := fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)

	if wc.Mode != types.WatermarkImage {
		return codec.Stamp{
			Text:     opts.Text,
			Color:    hex,
			FontSize: wc.FontSize,
			Rotation: wc.Rotation,
			Opacity:  wc.Opacity,
			Scale:    wc.Scale,
		}, nil
	}

	png, err := overlay.Render(overlay.Spec{
		Text:     opts.Text,
		Color:    col,
		Angle:    wc.Rotation,
		Opacity:  wc.Opacity,
		FontSize: wc.FontSize,
	})
	if err != nil {
		return codec.Stamp{}, err
	}
	return codec.Stamp{Image: png, Opacity: 1, Scale: wc.Scale}, nil
}

// Encrypt protects every session document with the user password. An
// empty owner password defaults to the user password.
func (r *Runner) Encrypt(ctx context.Context, sess *session.Session, password, owner string) (types.BatchResult, error) {
	if password == "" {
		return types.BatchResult{}, fmt.Errorf("encrypt: password is empty")
	}
	opts := codec.EncryptOptions{
		UserPassword:  password,
		OwnerPassword: owner,
		KeyLength:     r.cfg.Encryption.KeyLength,
		AES:           r.cfg.Encryption.UseAES,
	}
	return r.batch(ctx, sess, "encrypt", func(f session.File) (types.Artifact, error) {
		doc, err := codec.Open(f.Name, f.Data, sess.Password)
		if err != nil {
			return types.Artifact{}, err
		}
		data, err := doc.Encrypt(opts)
		if err != nil {
			return types.Artifact{}, err
		}
		return types.Artifact{Name: derivedName(f.Name, "encrypted"), Pages: doc.PageCount(), Data: data}, nil
	}), nil
}

// Decrypt removes encryption from every session document using
// password. A wrong password fails only that file.
func (r *Runner) Decrypt(ctx context.Context, sess *session.Session, password string) types.BatchResult {
	return r.batch(ctx, sess, "decrypt", func(f session.File) (types.Artifact, error) {
		doc, err := codec.Open(f.Name, f.Data, password)
		if err != nil {
			return types.Artifact{}, err
		}
		return types.Artifact{Name: derivedName(f.Name, "decrypted"), Pages: doc.PageCount(), Data: doc.Bytes()}, nil
	})
}
