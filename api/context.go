package api

import (
	"context"
)

type keyType string

const (
	requestIDKey    keyType = "requestID"
	assetVersionKey keyType = "assetVersion"
)

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxWithAssetVersion adds the static asset version to the context
func ctxWithAssetVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, assetVersionKey, version)
}

// ctxGetRequestID returns the request ID, or "" outside the requestID middleware
func ctxGetRequestID(ctx context.Context) string {
	return ctxGetStringValue(ctx, requestIDKey)
}

// ctxGetAssetVersion returns the asset version, or "" outside the assetVersion middleware
func ctxGetAssetVersion(ctx context.Context) string {
	return ctxGetStringValue(ctx, assetVersionKey)
}

func ctxGetStringValue(ctx context.Context, key keyType) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
