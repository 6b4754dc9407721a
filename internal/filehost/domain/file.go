package domain

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("invalid file name")

// SortOrder selects how a listing is ordered.
type SortOrder string

const (
	// SortByTime orders newest first.
	SortByTime SortOrder = "time"
	// SortByExt orders by lower-cased extension, then name.
	SortByExt SortOrder = "ext"
)

// ParseSortOrder maps a query value to a SortOrder, defaulting to SortByTime.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(s)) == SortByExt {
		return SortByExt
	}
	return SortByTime
}

// FileInfo describes a stored file without its content.
type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Extension returns the lower-cased extension including the leading dot.
func (f FileInfo) Extension() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Hidden reports whether the entry is dot-prefixed and must stay out of listings.
func (f FileInfo) Hidden() bool {
	return strings.HasPrefix(f.Name, ".")
}

// StoredFile is a file together with its full content.
type StoredFile struct {
	FileInfo
	Data []byte
}

// SanitizeName percent-decodes raw and reduces it to its final path segment.
// Both '/' and '\' count as separators. The segment is kept byte for byte;
// only "", "." and ".." and names containing NUL are rejected.
func SanitizeName(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", ErrInvalidName
	}
	return baseName(decoded)
}

func baseName(name string) (string, error) {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	switch {
	case name == "", name == ".", name == "..":
		return "", ErrInvalidName
	case strings.ContainsRune(name, 0):
		return "", ErrInvalidName
	}

	return name, nil
}
