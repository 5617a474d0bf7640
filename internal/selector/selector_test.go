// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []PageRange
	}{
		{"mixed", "1-3,5,7-8", []PageRange{{1, 3}, {5, 5}, {7, 8}}},
		{"single", "4", []PageRange{{4, 4}}},
		{"whitespace trimmed", "  1 - 2 ,  6 ", []PageRange{{1, 2}, {6, 6}}},
		{"order preserved", "9,1-2", []PageRange{{9, 9}, {1, 2}}},
		{"overlap allowed", "1-3,2-4", []PageRange{{1, 3}, {2, 4}}},
		{"degenerate range", "3-3", []PageRange{{3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRanges_FormatErrors(t *testing.T) {
	for _, input := range []string{
		"0-2", "3-1", "abc", "", "   ", "0", "-1", "1,,2", "1-", "-3", "1-2-3", "1-x", "2.5",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRanges(input)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, input, fe.Input)
			assert.Contains(t, err.Error(), rangesExample)
		})
	}
}

func TestPageRange_Pages(t *testing.T) {
	assert.Equal(t, []int{5, 6, 7}, PageRange{5, 7}.Pages())
	assert.Equal(t, []int{2}, PageRange{2, 2}.Pages())
	assert.Equal(t, "5-7", PageRange{5, 7}.String())
}

func TestValidateRanges(t *testing.T) {
	require.NoError(t, ValidateRanges([]PageRange{{1, 3}, {5, 5}}, 10))
	require.NoError(t, ValidateRanges([]PageRange{{1, 10}, {10, 10}}, 10))

	err := ValidateRanges([]PageRange{{1, 3}, {8, 11}, {20, 30}}, 10)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, RangeError{Start: 8, End: 11, Total: 10}, *re)
	assert.Equal(t, "range 8-11 is outside the document (pages 1-10)", err.Error())

	err = ValidateRanges([]PageRange{{0, 1}}, 10)
	assert.ErrorAs(t, err, &re)
}

func TestParseRotations(t *testing.T) {
	rot, err := ParseRotations("1:90, 3:180")
	require.NoError(t, err)
	assert.Equal(t, Rotation{1: 90, 3: 180}, rot)

	rot, err = ParseRotations("2:90,2:180")
	require.NoError(t, err)
	assert.Equal(t, Rotation{2: 180}, rot, "last angle for a page wins")

	rot, err = ParseRotations("0:270,99:90")
	require.NoError(t, err, "indices are not bounds-checked at parse time")
	assert.Len(t, rot, 2)
}

func TestParseRotations_FormatErrors(t *testing.T) {
	for _, input := range []string{"1:45", "1:0", "1:360", "1", "a:90", "1:90:1", "1:ninety", "", "1:90,"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRotations(input)
			var fe *FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestRotation_Apply(t *testing.T) {
	rot := Rotation{1: 90, 3: 180, 0: 90, 7: 270}

	assert.Equal(t, Rotation{1: 90, 3: 180}, rot.Apply(5))
	assert.Equal(t, []int{90, 0, 180, 0, 0}, rot.Angles(5))
}

func TestParsePageList(t *testing.T) {
	pages, err := ParsePageList("3, 1 ,2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 3}, pages)

	pages, err = ParsePageList("0,-2")
	require.NoError(t, err, "bounds are checked by the applier")
	assert.Equal(t, []int{0, -2}, pages)

	_, err = ParsePageList("1,two")
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "two", fe.Token)
}

func TestDelete(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, Delete([]int{2, 4}, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Delete([]int{0, 9, -1}, 5), "out-of-range indices are no-ops")
	assert.Equal(t, []int{2}, Delete([]int{1, 1, 3}, 3))
	assert.Empty(t, Delete([]int{1, 2}, 2))
}

func TestReorder(t *testing.T) {
	got, err := Reorder([]int{3, 1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)

	got, err = Reorder([]int{2, 2}, 5)
	require.NoError(t, err, "duplicates and omissions are allowed")
	assert.Equal(t, []int{2, 2}, got)

	_, err = Reorder([]int{1, 4}, 3)
	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 4, re.Start)
	assert.Equal(t, "page 4 is outside the document (pages 1-3)", err.Error())

	_, err = Reorder([]int{0}, 3)
	assert.ErrorAs(t, err, &re)
}
