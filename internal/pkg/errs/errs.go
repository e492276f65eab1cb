// Package errs is the single seam over cockroachdb/errors: stack capture,
// message wrapping, and sentinel marking for the rest of the codebase.
package errs

import (
	"fmt"
	"strings"

	crerrors "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a stack trace. Nil in, nil out, so call
// sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crerrors.Wrap(err, msg)
}

// New builds an error carrying a stack trace from the call site.
func New(msg string) error {
	return crerrors.New(msg)
}

// Mark ties err to a sentinel so errors.Is(err, markErr) holds while the
// underlying cause stays intact. A nil err collapses to the sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return crerrors.Mark(err, markErr)
}

// ExtractStackLines renders the verbose form of err for log fields,
// truncated to maxLines. A non-positive maxLines means no cap.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
