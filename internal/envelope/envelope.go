// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope implements the colon-delimited base64 wire format used
// for every ciphertext-bearing value of the vault.
//
// Two shapes exist:
//
//	password envelope: base64(salt:16B) ":" base64(iv:12B) ":" base64(ciphertext||tag:16B)
//	item envelope:     base64(iv:12B) ":" base64(ciphertext||tag:16B)
//
// Every previously exported bundle depends on this format. Changing it is a
// breaking change.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Segment sizes in bytes.
const (
	SaltSize = 16
	IVSize   = 12
	TagSize  = 16
)

const separator = ":"

// strictEncoding also rejects non-zero padding bits, so every accepted
// segment re-encodes to the same text.
var strictEncoding = base64.StdEncoding.Strict()

// ErrMalformedEnvelope is returned when envelope text does not have the
// expected structure: wrong number of segments, invalid base64 or a segment
// of the wrong decoded length.
var ErrMalformedEnvelope = errors.New("malformed envelope")

// Encode base64-encodes every part and joins them with ":".
func Encode(parts ...[]byte) string {
	encoded := make([]string, len(parts))
	for i, p := range parts {
		encoded[i] = base64.StdEncoding.EncodeToString(p)
	}
	return strings.Join(encoded, separator)
}

// Decode splits text on ":" and base64-decodes each segment. It fails with
// [ErrMalformedEnvelope] unless exactly n segments are present and all of
// them are canonical standard base64 without whitespace.
func Decode(text string, n int) ([][]byte, error) {
	segments := strings.Split(text, separator)
	if len(segments) != n {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedEnvelope, n, len(segments))
	}

	parts := make([][]byte, n)
	for i, s := range segments {
		// the decoder skips CR and LF, which would let two texts decode alike
		if strings.ContainsAny(s, "\r\n\t ") {
			return nil, fmt.Errorf("%w: segment %d contains whitespace", ErrMalformedEnvelope, i)
		}
		b, err := strictEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrMalformedEnvelope, i, err)
		}
		parts[i] = b
	}
	return parts, nil
}

// Password is a decoded password envelope.
type Password struct {
	Salt []byte
	IV   []byte
	// Ciphertext includes the trailing authentication tag.
	Ciphertext []byte
}

// String encodes the envelope to its text form.
func (p Password) String() string {
	return Encode(p.Salt, p.IV, p.Ciphertext)
}

// Item is a decoded item envelope.
type Item struct {
	IV []byte
	// Ciphertext includes the trailing authentication tag.
	Ciphertext []byte
}

// String encodes the envelope to its text form.
func (i Item) String() string {
	return Encode(i.IV, i.Ciphertext)
}

// ParsePassword decodes a 3-segment password envelope and checks segment
// lengths. There is no partial parse: on any error nothing is returned.
func ParsePassword(text string) (Password, error) {
	parts, err := Decode(text, 3)
	if err != nil {
		return Password{}, err
	}
	if err := checkLen("salt", parts[0], SaltSize); err != nil {
		return Password{}, err
	}
	if err := checkLen("iv", parts[1], IVSize); err != nil {
		return Password{}, err
	}
	if err := checkCiphertext(parts[2]); err != nil {
		return Password{}, err
	}
	return Password{Salt: parts[0], IV: parts[1], Ciphertext: parts[2]}, nil
}

// ParseItem decodes a 2-segment item envelope and checks segment lengths.
func ParseItem(text string) (Item, error) {
	parts, err := Decode(text, 2)
	if err != nil {
		return Item{}, err
	}
	if err := checkLen("iv", parts[0], IVSize); err != nil {
		return Item{}, err
	}
	if err := checkCiphertext(parts[1]); err != nil {
		return Item{}, err
	}
	return Item{IV: parts[0], Ciphertext: parts[1]}, nil
}

func checkLen(name string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrMalformedEnvelope, name, want, len(b))
	}
	return nil
}

// checkCiphertext requires room for at least the tag.
func checkCiphertext(b []byte) error {
	if len(b) < TagSize {
		return fmt.Errorf("%w: ciphertext shorter than %d-byte tag", ErrMalformedEnvelope, TagSize)
	}
	return nil
}
