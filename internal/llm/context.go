package llm

import "context"

type ctxKey int

const purposeKey ctxKey = iota

// WithPurpose tags the context with a label describing what the request
// is for. The logging decorator records it per event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" for an untagged
// context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return "unknown"
}
