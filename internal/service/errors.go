// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUpToDate reports an update whose diff against the server copy
	// came back empty.
	ErrUpToDate = errors.New("listing matches the server copy, nothing to update")

	// ErrNoKey reports an update or diff against a document that has no
	// course.key to address the server copy with.
	ErrNoKey = errors.New("document has no course.key")

	// ErrNoCreatedKey reports a create response that carried no _key.
	ErrNoCreatedKey = errors.New("platform accepted the listing but returned no key")
)
