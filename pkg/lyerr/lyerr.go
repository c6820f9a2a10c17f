// Package lyerr holds the error kinds that transformations and the tokenizer
// report to callers.
package lyerr

import (
	"gitlab.com/tozd/go/errors"
)

var (
	ErrQuarterToneAlterationNotAvailable = errors.Base("QuarterToneAlterationNotAvailable")
	ErrNoMusicExpressionFound            = errors.Base("NoMusicExpressionFound")
	ErrUnterminatedString                = errors.Base("UnterminatedString")
	ErrUnterminatedBlockComment          = errors.Base("UnterminatedBlockComment")
	ErrUnbalancedBrackets                = errors.Base("UnbalancedBrackets")
)

var kinds = []error{
	ErrQuarterToneAlterationNotAvailable,
	ErrNoMusicExpressionFound,
	ErrUnterminatedString,
	ErrUnterminatedBlockComment,
	ErrUnbalancedBrackets,
}

// Name returns the kind name of err, or "" when err is not one of the known kinds.
func Name(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ""
}

// Kinds returns every known error kind.
func Kinds() []error {
	out := make([]error, len(kinds))
	copy(out, kinds)
	return out
}
