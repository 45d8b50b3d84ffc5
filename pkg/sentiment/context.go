package sentiment

import "context"

type analysisIDKey struct{}

// WithAnalysisID returns a context carrying the id of the analysis in flight.
// Model integrations read it to correlate their logs with the interpreter's.
func WithAnalysisID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, analysisIDKey{}, id)
}

// AnalysisIDFromContext returns the analysis id, or "" when none is set.
func AnalysisIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(analysisIDKey{}).(string)
	return id
}
