// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lahella/internal/activity"
	"lahella/internal/adapter"
	"lahella/internal/logger"
	"lahella/internal/session"
	"lahella/models"
)

// dryRunPhotoID is bound in place of an upload when the flow must not
// touch the network.
const dryRunPhotoID = "DRY_RUN_PHOTO_ID"

// listPageSize is the catalog page size; pagination walks skip offsets
// until the portal reports no further pages.
const listPageSize = 100

// CourseOptions tune a single submission.
type CourseOptions struct {
	// DryRun stops the flow before any write and, for Create, before
	// any network call at all.
	DryRun bool
}

type courseService struct {
	platform adapter.PlatformAPI
	sessions SessionKeeper
	baseURL  string
	group    string
	now      func() time.Time
	logger   *logger.Logger
}

// NewCourseService builds the course flows around the given platform
// client. group is the organization whose catalog All pages through;
// baseURL renders public view links.
func NewCourseService(platform adapter.PlatformAPI, sessions SessionKeeper, baseURL, group string, log *logger.Logger) CourseService {
	return &courseService{
		platform: platform,
		sessions: sessions,
		baseURL:  strings.TrimRight(baseURL, "/"),
		group:    group,
		now:      time.Now,
		logger:   log,
	}
}

func (s *courseService) Create(ctx context.Context, doc *models.Document, opts CourseOptions) (models.Activity, error) {
	if err := activity.ValidateForCreate(doc); err != nil {
		return models.Activity{}, err
	}

	doc, err := s.bindImage(ctx, doc, opts.DryRun)
	if err != nil {
		return models.Activity{}, err
	}

	payload, err := activity.BuildCreate(doc, s.now())
	if err != nil {
		return models.Activity{}, fmt.Errorf("build payload: %w", err)
	}
	if opts.DryRun {
		return payload, nil
	}

	var created models.Activity
	err = s.withSession(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.platform.CreateActivity(ctx, payload)
		return err
	})
	if err != nil {
		return models.Activity{}, fmt.Errorf("create listing: %w", err)
	}
	if created.Key == "" {
		return models.Activity{}, ErrNoCreatedKey
	}

	s.logger.Info().Str("key", created.Key).Msg("listing created")

	return created, nil
}

func (s *courseService) Update(ctx context.Context, doc *models.Document, opts CourseOptions) (models.Activity, []activity.Change, error) {
	if err := activity.ValidateForCreate(doc); err != nil {
		return models.Activity{}, nil, err
	}

	doc, err := s.bindImage(ctx, doc, opts.DryRun)
	if err != nil {
		return models.Activity{}, nil, err
	}

	current, changes, err := s.changesAgainst(ctx, doc)
	if err != nil {
		return models.Activity{}, nil, err
	}
	if len(changes) == 0 {
		return models.Activity{}, nil, ErrUpToDate
	}

	payload, err := activity.BuildUpdate(doc, current, s.now())
	if err != nil {
		return models.Activity{}, nil, fmt.Errorf("build payload: %w", err)
	}
	if opts.DryRun {
		return payload, changes, nil
	}

	var updated models.Activity
	err = s.withSession(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.platform.UpdateActivity(ctx, doc.Course.Key, payload)
		return err
	})
	if err != nil {
		return models.Activity{}, nil, fmt.Errorf("update listing %s: %w", doc.Course.Key, err)
	}

	s.logger.Info().Str("key", doc.Course.Key).Int("changes", len(changes)).Msg("listing updated")

	return updated, changes, nil
}

func (s *courseService) Changes(ctx context.Context, doc *models.Document) (models.Activity, []activity.Change, error) {
	return s.changesAgainst(ctx, doc)
}

// changesAgainst fetches the server copy addressed by course.key and
// diffs the document against it.
func (s *courseService) changesAgainst(ctx context.Context, doc *models.Document) (models.Activity, []activity.Change, error) {
	if doc.Course.Key == "" {
		return models.Activity{}, nil, ErrNoKey
	}

	current, err := s.Fetch(ctx, doc.Course.Key)
	if err != nil {
		return models.Activity{}, nil, err
	}

	changes, err := activity.Diff(doc, activity.FromActivity(current))
	if err != nil {
		return models.Activity{}, nil, fmt.Errorf("diff against server copy: %w", err)
	}

	return current, changes, nil
}

func (s *courseService) All(ctx context.Context) ([]models.Activity, error) {
	if s.group == "" {
		return nil, fmt.Errorf("%w: auth.group", activity.ErrMissingField)
	}

	var items []models.Activity
	for skip := 0; ; skip += listPageSize {
		query := adapter.ActivityQuery{Group: s.group, Limit: listPageSize, Skip: skip}

		var page models.ActivityList
		err := s.withSession(ctx, func(ctx context.Context) error {
			var err error
			page, err = s.platform.ListActivities(ctx, query)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}

		items = append(items, page.Items...)
		if !page.HasMore {
			break
		}
	}

	s.logger.Debug().Int("count", len(items)).Msg("catalog fetched")

	return items, nil
}

func (s *courseService) Fetch(ctx context.Context, key string) (models.Activity, error) {
	var act models.Activity
	err := s.withSession(ctx, func(ctx context.Context) error {
		var err error
		act, err = s.platform.Activity(ctx, key)
		return err
	})
	if err != nil {
		return models.Activity{}, fmt.Errorf("fetch listing %s: %w", key, err)
	}
	return act, nil
}

func (s *courseService) ViewURL(key string) string {
	return fmt.Sprintf("%s/activities?_key=%s", s.baseURL, key)
}

// bindImage resolves image.path into a bound upload. A document that
// already carries an image id keeps it: re-running update against an
// unchanged image must not upload the file again, and the diff treats
// a matching id as the same picture regardless of the local path.
func (s *courseService) bindImage(ctx context.Context, doc *models.Document, dryRun bool) (*models.Document, error) {
	if doc.Image.Path == "" || doc.Image.ID != "" {
		return doc, nil
	}

	bound := *doc
	if dryRun {
		bound.Image.ID = dryRunPhotoID
		return &bound, nil
	}

	var key string
	err := s.withSession(ctx, func(ctx context.Context) error {
		var err error
		key, err = s.platform.UploadImage(ctx, doc.Auth.Group, doc.Image.Path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upload image %s: %w", doc.Image.Path, err)
	}

	s.logger.Debug().Str("key", key).Str("path", doc.Image.Path).Msg("image uploaded")

	bound.Image.ID = key
	return &bound, nil
}

// withSession runs one platform call under the refresh-once policy:
// ensure the stored session is still valid, make the call, and when the
// portal rejects it anyway refresh a single time and retry. A rejection
// after the retry means the session is beyond repair.
func (s *courseService) withSession(ctx context.Context, call func(ctx context.Context) error) error {
	if err := s.sessions.EnsureValid(ctx); err != nil {
		return err
	}

	err := call(ctx)
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	s.logger.Debug().Msg("portal rejected the session, refreshing once")
	if err := s.sessions.Refresh(ctx); err != nil {
		return err
	}

	if err := call(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %v", session.ErrReauthRequired, err)
		}
		return err
	}
	return nil
}
