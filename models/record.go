// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// VaultRecord is the plaintext a user edits. It only ever exists in memory
// after decryption; its persisted form is always an item envelope.
//
// The JSON form of this struct is the plaintext contract of the item cipher.
// Unknown keys are ignored on decode so that records written by newer
// clients still open.
type VaultRecord struct {
	Title    string   `json:"title" validate:"required,max=256"`
	Username string   `json:"username,omitempty" validate:"max=512"`
	Password string   `json:"password,omitempty" validate:"max=4096"`
	URL      string   `json:"url,omitempty" validate:"omitempty,url,max=2048"`
	Notes    string   `json:"notes,omitempty" validate:"max=65536"`
	Tags     []string `json:"tags,omitempty" validate:"max=64,dive,required,max=64"`
	Folder   string   `json:"folder,omitempty" validate:"max=256"`
}

// Normalize trims surrounding whitespace, drops empty or repeated tags and
// defaults a scheme-less URL to https.
func (r VaultRecord) Normalize() VaultRecord {
	r.Title = strings.TrimSpace(r.Title)
	r.Username = strings.TrimSpace(r.Username)
	r.URL = strings.TrimSpace(r.URL)
	if r.URL != "" && !strings.Contains(r.URL, "://") {
		r.URL = "https://" + r.URL
	}
	r.Folder = strings.TrimSpace(r.Folder)

	if len(r.Tags) > 0 {
		seen := make(map[string]struct{}, len(r.Tags))
		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
		if len(tags) == 0 {
			tags = nil
		}
		r.Tags = tags
	}

	return r
}

// HasTag reports whether the record carries the given tag.
func (r VaultRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RecordFilter narrows a decrypted listing. Zero value matches everything.
type RecordFilter struct {
	// Folder keeps only records in this folder when non-empty.
	Folder string

	// Tags keeps only records carrying every listed tag.
	Tags []string

	// OnlyTagged keeps only records with at least one tag.
	OnlyTagged bool

	// Query is a case-insensitive substring matched against title,
	// username, url and notes.
	Query string
}

// IsEmpty reports whether the filter matches everything.
func (f RecordFilter) IsEmpty() bool {
	return f.Folder == "" && len(f.Tags) == 0 && !f.OnlyTagged && strings.TrimSpace(f.Query) == ""
}

// Match reports whether r passes the filter.
func (f RecordFilter) Match(r VaultRecord) bool {
	if f.Folder != "" && strings.TrimSpace(r.Folder) != f.Folder {
		return false
	}
	if f.OnlyTagged && len(r.Tags) == 0 {
		return false
	}
	for _, t := range f.Tags {
		if !r.HasTag(t) {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{r.Title, r.Username, r.URL, r.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// DecryptedItem pairs a server item with its decrypted record.
// When the envelope could not be opened Record is nil and Err holds the
// reason; the listing as a whole still succeeds.
type DecryptedItem struct {
	ID        string
	Record    *VaultRecord
	CreatedAt *time.Time
	UpdatedAt *time.Time
	Err       error
}
