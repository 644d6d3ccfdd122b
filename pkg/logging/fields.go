package logging

import (
	"context"
	"errors"

	"go.llib.dev/rangekit/pkg/errorkit"
)

// Detail enriches a log entry.
type Detail interface {
	addTo(e entry)
}

type entry map[string]any

// Field creates a single key value pair detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) { e[f.Key] = f.Value }

// Fields is a collection of key value pairs.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		e[k] = v
	}
}

// ErrField adds the error under the "error" key.
// Errors with an errorkit.Error kind report it separately.
func ErrField(err error) Detail {
	if err == nil {
		return Fields{}
	}
	details := Fields{"message": err.Error()}
	var kind errorkit.Error
	if errors.As(err, &kind) {
		details["kind"] = kind.Error()
	}
	return Field("error", details)
}

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []Detail
}

// ContextWith attaches details to the context.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	v := &ctxValue{Details: ds}
	if prev, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		v.Super = prev
	}
	return context.WithValue(ctx, ctxKeyDetails{}, v)
}

func getLoggingDetailsFromContext(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	v, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue)
	if !ok {
		return nil
	}
	var details []Detail
	for ; v != nil; v = v.Super {
		details = append(append([]Detail{}, v.Details...), details...)
	}
	return details
}
