package service

import "errors"

// 领域错误，handler 据此区分客户端错误与服务端错误。
var (
	ErrHubNotConfigured     = errors.New("no central hub store is configured")
	ErrInsufficientHubStock = errors.New("hub stock would go negative")
	ErrEmptyAssignment      = errors.New("assignment has no committable rows")
	ErrRequestNotPending    = errors.New("request is no longer pending")
	ErrRequestEmpty         = errors.New("request needs at least one item or a receipt image")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidRefreshToken  = errors.New("invalid or revoked refresh token")
	ErrHubProtected         = errors.New("the central hub store cannot be deleted")
	ErrStoreReferenced      = errors.New("store is referenced by stock or transfers")
	ErrInvalidUnit          = errors.New("unknown unit of measure")
)
