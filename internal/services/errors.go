package services

import "errors"

// ErrNotFound marks a missing Test, Athlete or Performance. It is surfaced
// to the caller as-is; store failures propagate unchanged and are never
// retried here.
var ErrNotFound = errors.New("record not found")
