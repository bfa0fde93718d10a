package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const (
	tenantIDKey contextKey = iota
	sourceKey
)

// getTenantID extracts tenant ID from context.
func getTenantID(ctx context.Context) string {
	v, _ := ctx.Value(tenantIDKey).(string)
	return v
}

// getSource extracts the ingest source from context.
func getSource(ctx context.Context) string {
	v, _ := ctx.Value(sourceKey).(string)
	return v
}

// TenantResolver resolves a tenant ID from a bearer token.
type TenantResolver interface {
	ResolveTenant(ctx context.Context, token string) (string, error)
}

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(resolver TenantResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			auth := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			tenantID, err := resolver.ResolveTenant(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}
			if tenantID == "" {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			ctx = context.WithValue(ctx, tenantIDKey, tenantID)
			return next(ctx, method, req)
		}
	}
}

// noAuthMiddleware injects a default tenant when auth is disabled.
func noAuthMiddleware(defaultTenant string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, tenantIDKey, defaultTenant)
			return next(ctx, method, req)
		}
	}
}

// sourceMiddleware extracts the ingest source from the X-Ingest-Source header
// (HTTP) or request metadata (stdio). Tools use it as the default provenance
// tag when the arguments don't carry one.
func sourceMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			var source string

			extra := req.GetExtra()
			if extra != nil && extra.Header != nil {
				source = extra.Header.Get("X-Ingest-Source")
			}

			// Note: some notifications (like "initialized") have nil params,
			// so we must check carefully to avoid nil pointer dereference.
			if source == "" {
				if params := req.GetParams(); params != nil {
					// Use defer/recover to safely handle cases where GetMeta
					// is called on a nil underlying value (SDK quirk)
					func() {
						defer func() { recover() }()
						if meta := params.GetMeta(); meta != nil {
							if src, ok := meta["source"].(string); ok {
								source = src
							}
						}
					}()
				}
			}

			if source != "" {
				ctx = context.WithValue(ctx, sourceKey, source)
			}

			return next(ctx, method, req)
		}
	}
}
