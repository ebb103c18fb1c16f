// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import "time"

// SetClock replaces the registry's time source.
func (registry *Registry) SetClock(now func() time.Time) {
	registry.now = now
}
