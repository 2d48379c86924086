// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndCharset(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"defaults", DefaultOptions()},
		{"digits only", Options{Length: 6, Digits: true}},
		{"no symbols", Options{Length: 32, Lower: true, Upper: true, Digits: true}},
		{"look-alikes excluded", Options{Length: MaxLength, Lower: true, Upper: true, Digits: true, ExcludeLookAlikes: true}},
		{"minimum", Options{Length: MinLength, Symbols: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pwd, err := Generate(tt.opts)
			require.NoError(t, err)
			assert.Len(t, pwd, tt.opts.Length)

			charset := Charset(tt.opts)
			for _, c := range pwd {
				assert.True(t, strings.ContainsRune(charset, c), "unexpected %q", c)
			}
		})
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	_, err := Generate(Options{Length: MinLength - 1, Lower: true})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Generate(Options{Length: MaxLength + 1, Lower: true})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Generate(Options{Length: 10})
	assert.ErrorIs(t, err, ErrEmptyCharset)
}

func TestCharset_ExcludesLookAlikes(t *testing.T) {
	charset := Charset(Options{Lower: true, Upper: true, Digits: true, ExcludeLookAlikes: true})
	for _, c := range lookAlikes {
		assert.NotContains(t, charset, string(c))
	}
	assert.Len(t, charset, 26+26+10-len(lookAlikes))
}

// Байты за пределом limit отбрасываются, а не сворачиваются по модулю.
func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	opts := Options{Length: 4, Digits: true}
	// 10 символов: limit = 250, байты 250..255 отбрасываются
	random := bytes.NewReader([]byte{255, 250, 0, 1, 252, 2, 3, 9, 9, 9})

	pwd, err := generate(opts, random)
	require.NoError(t, err)
	assert.Equal(t, "0123", pwd)
}

func TestGenerate_RandomFailure(t *testing.T) {
	_, err := generate(Options{Length: 8, Lower: true}, bytes.NewReader(nil))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidLength))
}

func TestGenerate_Distinct(t *testing.T) {
	a, err := Generate(DefaultOptions())
	require.NoError(t, err)
	b, err := Generate(DefaultOptions())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
