package httpx

import "context"

type ctxKey string

const (
	// CtxKeyAccountID is the authenticated account's id.
	CtxKeyAccountID ctxKey = "account_id"
	// CtxKeyRole is the authenticated account's role name.
	CtxKeyRole ctxKey = "role"
)

// AccountIDFromCtx returns the authenticated account id, or "" when the
// request is unauthenticated.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated account's role name, or "".
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
