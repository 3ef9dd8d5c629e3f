// Package repository persists user accounts.  Sentinel errors let
// handlers map failures onto specific HTTP responses without
// inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when a sign-up collides with an existing
// account.  Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no account matches the lookup.
// Handlers translate it into an invalid-credentials response rather
// than leaking which emails are registered.
var ErrUserNotFound = errors.New("user not found")
