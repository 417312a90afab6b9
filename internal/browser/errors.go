// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browser

import "errors"

var (
	// ErrLoginFailed indicates the portal never redirected away from the
	// login page: wrong credentials, or a captcha/MFA prompt that needs a
	// visible browser window.
	ErrLoginFailed = errors.New("login failed: the portal did not accept the credentials (retry with --show-browser if a captcha appeared)")

	// ErrNoTokens indicates the sign-in went through but no session
	// cookies matched the expected names; the portal layout may have
	// changed.
	ErrNoTokens = errors.New("signed in but no session tokens were captured")
)
