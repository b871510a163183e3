// Package service provides the business logic for Tempus Tracker.
package service

import (
	"fmt"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// Service errors. Each wraps a taxonomy sentinel from the domain package so
// the HTTP boundary can translate it to its declared status.
var (
	// ErrActivityAlreadyRunning rejects starting a second activity while
	// one is running, regardless of name.
	ErrActivityAlreadyRunning = fmt.Errorf("%w: User already has an activity running", domain.ErrForbidden)

	// ErrBadCredentials is the single, non-distinguishing login failure:
	// unknown username and wrong password report identically on purpose.
	ErrBadCredentials = fmt.Errorf("%w: Combination of username and password is incorrect", domain.ErrUnauthorized)

	// ErrExpiryOverrideNotAllowed rejects a caller-supplied token expiry
	// outside of test or administrative mode.
	ErrExpiryOverrideNotAllowed = fmt.Errorf("%w: Expire time can be set only in test environment", domain.ErrForbidden)

	// ErrNoActivities is returned by Results when nothing has been
	// tracked yet.
	ErrNoActivities = fmt.Errorf("%w: No activities found", domain.ErrNotFound)
)
