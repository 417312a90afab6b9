// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"lahella/internal/adapter"
	"lahella/internal/logger"
)

// Services bundles the flows the CLI commands drive.
type Services struct {
	Courses CourseService
}

// NewServices wires the course flows around a shared platform client.
func NewServices(platform adapter.PlatformAPI, sessions SessionKeeper, baseURL, group string, log *logger.Logger) *Services {
	return &Services{
		Courses: NewCourseService(platform, sessions, baseURL, group, log),
	}
}
