// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords from configurable character
// sets. Characters are drawn uniformly from the OS CSPRNG.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 20
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()-_=+[]{};:,.<>/?"

	lookAlikes = "0Oo1lI"
)

var (
	ErrInvalidLength = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrEmptyCharset  = errors.New("no character classes selected")
)

// Options selects the character classes and the length of a password.
type Options struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool

	// ExcludeLookAlikes drops 0 O o 1 l I from the charset.
	ExcludeLookAlikes bool
}

// DefaultOptions enables every class at [DefaultLength].
func DefaultOptions() Options {
	return Options{
		Length:  DefaultLength,
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Symbols: true,
	}
}

// Charset returns the characters a password built with opts may contain.
func Charset(opts Options) string {
	var sb strings.Builder
	for _, class := range []struct {
		on    bool
		chars string
	}{
		{opts.Lower, lower},
		{opts.Upper, upper},
		{opts.Digits, digits},
		{opts.Symbols, symbols},
	} {
		if !class.on {
			continue
		}
		for _, c := range class.chars {
			if opts.ExcludeLookAlikes && strings.ContainsRune(lookAlikes, c) {
				continue
			}
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Generate returns a password built with opts.
func Generate(opts Options) (string, error) {
	return generate(opts, rand.Reader)
}

func generate(opts Options, random io.Reader) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrInvalidLength
	}
	charset := Charset(opts)
	if charset == "" {
		return "", ErrEmptyCharset
	}

	// bytes at or above limit would favour the head of charset
	n := len(charset)
	limit := 256 - 256%n

	out := make([]byte, 0, opts.Length)
	buf := make([]byte, opts.Length)
	for len(out) < opts.Length {
		if _, err := io.ReadFull(random, buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, charset[int(b)%n])
			if len(out) == opts.Length {
				break
			}
		}
	}
	return string(out), nil
}
