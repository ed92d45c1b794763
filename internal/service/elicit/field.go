package elicit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/sandevgo/aurorashell/pkg/log"
)

// ValidationError reports a required field whose answer could not be accepted.
// It aborts the current elicitation only.
type ValidationError struct {
	Field  string
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// reader wraps a Prompter with the per-field parsing rules.
type reader struct {
	p core.Prompter
}

// text reads a required, non-empty answer.
func (r reader) text(ctx context.Context, field, label string) (string, error) {
	raw, err := r.p.Input(ctx, label, "")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", &ValidationError{Field: field, Input: raw, Reason: "value is required"}
	}
	return raw, nil
}

// optionalText returns nil for an empty answer and the answer unchanged otherwise.
func (r reader) optionalText(ctx context.Context, label string) (*string, error) {
	raw, err := r.p.Input(ctx, label, "")
	if err != nil {
		return nil, err
	}
	return optional(raw), nil
}

func (r reader) unsigned64(ctx context.Context, field, label string) (uint64, error) {
	return r.unsigned(ctx, field, label, 64)
}

func (r reader) unsigned32(ctx context.Context, field, label string) (uint32, error) {
	v, err := r.unsigned(ctx, field, label, 32)
	return uint32(v), err
}

func (r reader) unsigned(ctx context.Context, field, label string, bits int) (uint64, error) {
	raw, err := r.p.Input(ctx, label, "")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, &ValidationError{Field: field, Input: raw, Reason: numError(err, bits)}
	}
	return v, nil
}

// optionalUint64 returns nil when the answer does not parse. The downgrade is
// logged but never fails the elicitation.
func (r reader) optionalUint64(ctx context.Context, field, label string) (*uint64, error) {
	raw, err := r.p.Input(ctx, label, "")
	if err != nil {
		return nil, err
	}
	v, ok := parseOptionalUint64(raw)
	if !ok && raw != "" {
		log.FromCtx(ctx).Warn().
			Str("field", field).
			Str("input", raw).
			Msg("not an unsigned integer, treating field as absent")
	}
	return v, nil
}

// amount reads a finite, non-negative decimal quantity.
func (r reader) amount(ctx context.Context, field, label string) (float64, error) {
	raw, err := r.p.Input(ctx, label, "")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Input: raw, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Input: raw, Reason: "must be finite"}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Input: raw, Reason: "must not be negative"}
	}
	return v, nil
}

func (r reader) confirm(ctx context.Context, label string) (bool, error) {
	return r.p.Confirm(ctx, label)
}

func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

func parseOptionalUint64(raw string) (*uint64, bool) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func numError(err error, bits int) string {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Sprintf("out of range for a %d-bit unsigned integer", bits)
	}
	return "not an unsigned integer"
}
