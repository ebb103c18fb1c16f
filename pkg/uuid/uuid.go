// Copyright (c) 2026 ArtScope. All rights reserved.

// Package uuid mints the time-ordered (version 7) identifiers used for
// browsing sessions and request IDs, so both sort by creation time in logs.
package uuid

import "github.com/google/uuid"

// New returns a new UUIDv7 string. It panics only if the system's random
// source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}
