// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service wires the course document flows end to end: validate,
// build, diff, and submit against the platform adapter, all under the
// refresh-once session policy.
package service

import (
	"context"

	"lahella/internal/activity"
	"lahella/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// CourseService is the surface the CLI commands drive.
type CourseService interface {
	// Create validates doc, binds its image, and submits a new listing.
	// In dry-run mode it returns the would-be payload without touching
	// the network.
	Create(ctx context.Context, doc *models.Document, opts CourseOptions) (models.Activity, error)

	// Update fetches the listing addressed by course.key, diffs it
	// against doc, and replaces it when they differ. The returned
	// activity is the stored copy (live) or the would-be payload
	// (dry-run), alongside the change list that justified the write.
	Update(ctx context.Context, doc *models.Document, opts CourseOptions) (models.Activity, []activity.Change, error)

	// Changes fetches the listing addressed by course.key and reports
	// the differences doc would introduce, without writing anything.
	Changes(ctx context.Context, doc *models.Document) (models.Activity, []activity.Change, error)

	// All pages through every listing of the configured group.
	All(ctx context.Context) ([]models.Activity, error)

	// Fetch retrieves a single listing by key.
	Fetch(ctx context.Context, key string) (models.Activity, error)

	// ViewURL returns the public portal page for a listing key.
	ViewURL(key string) string
}

// SessionKeeper is the slice of the session manager the flows lean on:
// proactive validity before a call, one refresh after a rejection.
type SessionKeeper interface {
	EnsureValid(ctx context.Context) error
	Refresh(ctx context.Context) error
}
