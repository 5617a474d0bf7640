// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-workbench/internal/codec/codectest"
)

func openPages(t *testing.T, n int) *Document {
	t.Helper()
	doc, err := Open("fixture.pdf", codectest.Pages(n), "")
	require.NoError(t, err)
	return doc
}

// originalPages maps each page of data back to the fixture page it came from.
func originalPages(t *testing.T, data []byte) []int {
	t.Helper()
	infos, err := Inspect("out.pdf", data, "")
	require.NoError(t, err)
	pages := make([]int, len(infos))
	for i, info := range infos {
		pages[i] = codectest.PageOf(info.Width)
	}
	return pages
}

func TestOpen(t *testing.T) {
	doc := openPages(t, 4)
	assert.Equal(t, 4, doc.PageCount())
	assert.Equal(t, "fixture.pdf", doc.Name)
}

func TestOpen_Corrupt(t *testing.T) {
	_, err := Open("junk.pdf", []byte("this is not a pdf"), "")
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Op, "junk.pdf")
}

func TestPages(t *testing.T) {
	infos, err := openPages(t, 3).Pages()
	require.NoError(t, err)
	require.Len(t, infos, 3)
	for i, info := range infos {
		assert.Equal(t, i+1, info.Number)
		assert.InDelta(t, codectest.WidthOf(i+1), info.Width, 0.01)
		assert.InDelta(t, codectest.PageHeight, info.Height, 0.01)
		assert.Equal(t, 0, info.Rotation)
	}
}

func TestExtract(t *testing.T) {
	doc := openPages(t, 5)

	out, err := doc.Extract([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, originalPages(t, out))

	out, err = doc.Extract([]int{2, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 5}, originalPages(t, out))

	_, err = doc.Extract([]int{6})
	assert.Error(t, err)
	_, err = doc.Extract(nil)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	a := openPages(t, 2)
	b := openPages(t, 3)

	out, err := Merge([]*Document{a, b})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 3}, originalPages(t, out))
}

func TestRotate(t *testing.T) {
	doc := openPages(t, 5)

	out, err := doc.Rotate(map[int]int{1: 90, 3: 180})
	require.NoError(t, err)

	infos, err := Inspect("rotated.pdf", out, "")
	require.NoError(t, err)
	require.Len(t, infos, 5)
	got := make([]int, len(infos))
	for i, info := range infos {
		got[i] = info.Rotation
		assert.Equal(t, i+1, codectest.PageOf(info.Width), "order unchanged")
	}
	assert.Equal(t, []int{90, 0, 180, 0, 0}, got)

	_, err = doc.Rotate(map[int]int{9: 90})
	assert.Error(t, err)
}

func TestWatermark_Text(t *testing.T) {
	doc := openPages(t, 2)
	out, err := doc.Watermark(Stamp{
		Text: "CONFIDENTIAL", Color: "#FF0000", FontSize: 48,
		Rotation: 45, Opacity: 0.3, Scale: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, originalPages(t, out))

	_, err = doc.Watermark(Stamp{})
	assert.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	doc := openPages(t, 3)

	enc, err := doc.Encrypt(EncryptOptions{UserPassword: "secret", KeyLength: 256, AES: true})
	require.NoError(t, err)

	_, err = Open("enc.pdf", enc, "")
	assert.True(t, errors.Is(err, ErrWrongPassword), "no password: %v", err)

	_, err = Open("enc.pdf", enc, "nope")
	assert.True(t, errors.Is(err, ErrWrongPassword), "wrong password: %v", err)

	plain, err := Open("enc.pdf", enc, "secret")
	require.NoError(t, err)
	assert.Equal(t, 3, plain.PageCount())

	// The decrypted bytes open without a password.
	again, err := Open("plain.pdf", plain.Bytes(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, again.PageCount())

	_, err = doc.Encrypt(EncryptOptions{})
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	err := wrap("merge", errors.New("boom"))
	assert.Equal(t, "merge failed: boom", err.Error())

	err = wrap("open a.pdf", ErrWrongPassword)
	assert.Equal(t, "open a.pdf failed: the password is not correct", err.Error())
	assert.ErrorIs(t, err, ErrWrongPassword)

	assert.NoError(t, wrap("x", nil))
}
