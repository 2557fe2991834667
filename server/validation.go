package server

import (
	"strings"
	"unicode/utf8"

	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
)

// MaxStatusLength is the upstream limit on a status update, counted in
// Unicode code points.
const MaxStatusLength = 280

// ValidateStatus applies the server-side status rules: trimmed, non-empty,
// at most MaxStatusLength runes. Returns the trimmed text. The client-side
// counter is cosmetic; this check is authoritative and runs before any
// network call.
func ValidateStatus(status string) (string, error) {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return "", errors.ErrEmptyStatus
	}
	if utf8.RuneCountInString(trimmed) > MaxStatusLength {
		return "", errors.ErrStatusTooLong
	}
	return trimmed, nil
}
