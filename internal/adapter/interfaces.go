// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Lähellä
// portal API.
//
// The primary abstraction is [PlatformAPI], which decouples the service layer
// from HTTP specifics. The package ships a resty-based implementation
// ([NewHTTPPlatform]) that attaches the captured session cookies and the
// browser-like headers the portal expects to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401 before a token refresh).
package adapter

import (
	"context"

	"lahella/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_api_mock.go -package=mock

// PlatformAPI defines the operations the CLI performs against the portal.
// Implementations are responsible for serialisation, session cookie
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type PlatformAPI interface {
	// SetSession installs the session cookie set attached to all
	// subsequent requests. It is called after login, after loading the
	// auth file, and after every successful refresh.
	SetSession(tokens models.TokenSet)

	// Session returns the cookie set currently held by the adapter.
	Session() models.TokenSet

	// RefreshSession exchanges the refresh token for a new token set via
	// the portal's token endpoint. It returns only the cookies the portal
	// reissued; callers merge them over the previous set. The adapter's
	// own session is not modified.
	RefreshSession(ctx context.Context) (models.TokenSet, error)

	// CreateActivity submits a new listing and returns the stored copy,
	// including the server-assigned key.
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)

	// UpdateActivity replaces the listing addressed by key. The key goes
	// in the URL, never in the body.
	UpdateActivity(ctx context.Context, key string, activity models.Activity) (models.Activity, error)

	// Activity fetches a single listing with its file links resolved.
	Activity(ctx context.Context, key string) (models.Activity, error)

	// ListActivities fetches one page of the group's listings.
	ListActivities(ctx context.Context, query ActivityQuery) (models.ActivityList, error)

	// UploadImage uploads a listing photo for the group and returns the
	// server-side file key.
	UploadImage(ctx context.Context, group, path string) (string, error)
}

// ActivityQuery selects one page of listings.
type ActivityQuery struct {
	// Group is the owning organization key. Required.
	Group string
	// Text is a free-text filter; the portal expects the parameter even
	// when empty.
	Text string
	// Limit caps the page size.
	Limit int
	// Skip is the pagination offset.
	Skip int
}
