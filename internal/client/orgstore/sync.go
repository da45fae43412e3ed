package orgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// snapshotLocked bumps the revision and captures a full copy of the
// mirrored collections. Callers must hold s.mu.
func (s *Store) snapshotLocked() (uint64, models.UserData) {
	s.revision++
	data := models.UserData{
		Platforms: make([]models.Platform, len(s.platforms)),
		Games:     make([]models.Game, len(s.games)),
	}
	copy(data.Platforms, s.platforms)
	copy(data.Games, s.games)
	return s.revision, data
}

// push mirrors a snapshot to the backend. A result arriving for a stale
// revision is discarded: a newer snapshot is already on its way and
// last-write-wins on the server. Failures are reported to the activity
// bus and never retried; an unauthenticated session is local-only mode,
// not a failure.
func (s *Store) push(ctx context.Context, rev uint64, data models.UserData) {
	if s.saver == nil {
		return
	}
	err := s.saver.SaveUserData(ctx, data)

	s.mu.Lock()
	stale := rev < s.revision
	s.mu.Unlock()
	if stale || err == nil {
		return
	}
	if errors.Is(err, common.ErrUnauthenticated) {
		return
	}
	if s.bus != nil {
		s.bus.Publish(fmt.Sprintf("failed to sync collections: %v", err), activity.SeverityError)
	}
}
