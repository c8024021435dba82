package utils

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ImageExtension is the fixed extension every stored product image gets.
const ImageExtension = ".jpg"

const maxFileNameLength = 200

var ErrInvalidFileName = errors.New("product name does not yield a usable file name")

// ProductImageName derives "<name>.jpg" from a product name. Path separators,
// control characters and leading dots are dropped so the result always stays a
// single path element inside the upload directory.
func ProductImageName(productName string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(productName) {
		switch {
		case r == '/' || r == '\\' || r == ':':
			b.WriteRune('_')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}

	base := strings.TrimLeft(b.String(), ". ")
	for len(base) > maxFileNameLength {
		_, size := utf8.DecodeLastRuneInString(base)
		base = base[:len(base)-size]
	}
	if base == "" {
		return "", ErrInvalidFileName
	}

	name := base + ImageExtension
	if filepath.Base(name) != name {
		return "", ErrInvalidFileName
	}
	return name, nil
}

func UniqueImageName() string {
	return uuid.NewString() + ImageExtension
}
