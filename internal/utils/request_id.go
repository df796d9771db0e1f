package utils

import "context"

type contextKey string

const ContextRequestID contextKey = "request_id"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextRequestID, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ContextRequestID).(string)
	return id
}
