// Package orgstore is the local organization store: ordered collections
// of platforms, games and folders plus the file-to-folder mapping,
// persisted in the key-value store and mirrored to the backend as full
// snapshots.
package orgstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// Saver pushes collection snapshots to the backend. The gateway
// implements it.
type Saver interface {
	SaveUserData(ctx context.Context, data models.UserData) error
}

// Store owns the organization data. Collections are ordered slices and
// slice order is the persisted order. Every mutation serializes the
// whole affected collection immediately. Safe for concurrent use.
type Store struct {
	kv    kvstore.Store
	saver Saver
	bus   *activity.Bus

	mu          sync.Mutex
	platforms   []models.Platform
	games       []models.Game
	folders     []models.FolderDescriptor
	fileFolders map[int64]string
	revision    uint64
	lastID      int64

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSaver mirrors platform/game mutations to the backend.
func WithSaver(s Saver) Option {
	return func(st *Store) { st.saver = s }
}

// WithActivityBus reports sync failures to the bus.
func WithActivityBus(b *activity.Bus) Option {
	return func(st *Store) { st.bus = b }
}

// Open loads the collections from the key-value store. Missing keys mean
// empty collections.
func Open(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:          kv,
		fileFolders: make(map[int64]string),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := loadValue(ctx, kv, common.KeyPlatforms, &s.platforms); err != nil {
		return nil, err
	}
	if err := loadValue(ctx, kv, common.KeyGames, &s.games); err != nil {
		return nil, err
	}
	if err := loadValue(ctx, kv, common.KeyFolders, &s.folders); err != nil {
		return nil, err
	}
	if err := loadValue(ctx, kv, common.KeyFileFolders, &s.fileFolders); err != nil {
		return nil, err
	}
	return s, nil
}

func loadValue(ctx context.Context, kv kvstore.Store, key string, out any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}

// newID issues a timestamp-based id, bumped when two mutations land in
// the same millisecond.
func (s *Store) newID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Platforms returns the platforms in display order.
func (s *Store) Platforms() []models.Platform {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Platform, len(s.platforms))
	copy(out, s.platforms)
	return out
}

// Games returns the games in display order.
func (s *Store) Games() []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Game, len(s.games))
	copy(out, s.games)
	return out
}

// Folders returns every folder, optionally scoped to one category
// ("" means all).
func (s *Store) Folders(category models.FolderCategory) []models.FolderDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FolderDescriptor, 0, len(s.folders))
	for _, f := range s.folders {
		if category == "" || f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// AddPlatform appends a platform and assigns its id.
func (s *Store) AddPlatform(ctx context.Context, p models.Platform) (models.Platform, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.Platform{}, common.ErrNameRequired
	}
	s.mu.Lock()
	p.ID = s.newID()
	s.platforms = append(s.platforms, p)
	err := s.persist(ctx, common.KeyPlatforms, s.platforms)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return models.Platform{}, err
	}
	s.push(ctx, rev, data)
	return p, nil
}

// AddGame appends a game and assigns its id.
func (s *Store) AddGame(ctx context.Context, g models.Game) (models.Game, error) {
	if strings.TrimSpace(g.Name) == "" {
		return models.Game{}, common.ErrNameRequired
	}
	s.mu.Lock()
	g.ID = s.newID()
	s.games = append(s.games, g)
	err := s.persist(ctx, common.KeyGames, s.games)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return models.Game{}, err
	}
	s.push(ctx, rev, data)
	return g, nil
}

// AddFolder creates a folder in one of the two categories.
func (s *Store) AddFolder(ctx context.Context, f models.FolderDescriptor) (models.FolderDescriptor, error) {
	if strings.TrimSpace(f.Name) == "" {
		return models.FolderDescriptor{}, common.ErrNameRequired
	}
	if f.Category != models.FolderCategoryGames && f.Category != models.FolderCategoryFiles {
		return models.FolderDescriptor{}, fmt.Errorf("unknown folder category %q", f.Category)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.newID()
	s.folders = append(s.folders, f)
	if err := s.persist(ctx, common.KeyFolders, s.folders); err != nil {
		return models.FolderDescriptor{}, err
	}
	return f, nil
}

// DeletePlatform removes a platform by id.
func (s *Store) DeletePlatform(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, p := range s.platforms {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	s.platforms = append(s.platforms[:idx], s.platforms[idx+1:]...)
	err := s.persist(ctx, common.KeyPlatforms, s.platforms)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

// DeleteGame removes a game by id.
func (s *Store) DeleteGame(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, g := range s.games {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	s.games = append(s.games[:idx], s.games[idx+1:]...)
	err := s.persist(ctx, common.KeyGames, s.games)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

// DeleteFolder removes the folder only. Members keep their folderId;
// a dangling reference resolves to unassigned.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, f := range s.folders {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return common.ErrNotFound
	}
	s.folders = append(s.folders[:idx], s.folders[idx+1:]...)
	return s.persist(ctx, common.KeyFolders, s.folders)
}

// ReorderPlatforms splices the dragged platform to the target index.
func (s *Store) ReorderPlatforms(ctx context.Context, id string, to int) error {
	s.mu.Lock()
	if err := spliceP(&s.platforms, id, to); err != nil {
		s.mu.Unlock()
		return err
	}
	err := s.persist(ctx, common.KeyPlatforms, s.platforms)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

// ReorderGames splices the dragged game to the target index.
func (s *Store) ReorderGames(ctx context.Context, id string, to int) error {
	s.mu.Lock()
	if err := spliceG(&s.games, id, to); err != nil {
		s.mu.Unlock()
		return err
	}
	err := s.persist(ctx, common.KeyGames, s.games)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

func spliceP(items *[]models.Platform, id string, to int) error {
	from := -1
	for i, it := range *items {
		if it.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return common.ErrNotFound
	}
	if to < 0 {
		to = 0
	}
	if to >= len(*items) {
		to = len(*items) - 1
	}
	item := (*items)[from]
	*items = append((*items)[:from], (*items)[from+1:]...)
	*items = append((*items)[:to], append([]models.Platform{item}, (*items)[to:]...)...)
	return nil
}

func spliceG(items *[]models.Game, id string, to int) error {
	from := -1
	for i, it := range *items {
		if it.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return common.ErrNotFound
	}
	if to < 0 {
		to = 0
	}
	if to >= len(*items) {
		to = len(*items) - 1
	}
	item := (*items)[from]
	*items = append((*items)[:from], (*items)[from+1:]...)
	*items = append((*items)[:to], append([]models.Game{item}, (*items)[to:]...)...)
	return nil
}

// folderSentinel values clear a folder assignment.
func folderSentinel(folderID string) bool {
	return folderID == "" || folderID == "all"
}

// AssignPlatformFolder moves a platform into a folder; the ""/"all"
// sentinel clears the assignment.
func (s *Store) AssignPlatformFolder(ctx context.Context, platformID, folderID string) error {
	if folderSentinel(folderID) {
		folderID = ""
	}
	s.mu.Lock()
	idx := -1
	for i, p := range s.platforms {
		if p.ID == platformID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	s.platforms[idx].FolderID = folderID
	err := s.persist(ctx, common.KeyPlatforms, s.platforms)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

// AssignGameFolder moves a game into a folder; the ""/"all" sentinel
// clears the assignment.
func (s *Store) AssignGameFolder(ctx context.Context, gameID, folderID string) error {
	if folderSentinel(folderID) {
		folderID = ""
	}
	s.mu.Lock()
	idx := -1
	for i, g := range s.games {
		if g.ID == gameID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	s.games[idx].FolderID = folderID
	err := s.persist(ctx, common.KeyGames, s.games)
	rev, data := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.push(ctx, rev, data)
	return nil
}

// AssignFileFolder maps a file record to a folder, at most one folder per
// file. The ""/"all" sentinel removes the mapping.
func (s *Store) AssignFileFolder(ctx context.Context, fileID int64, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if folderSentinel(folderID) {
		delete(s.fileFolders, fileID)
	} else {
		s.fileFolders[fileID] = folderID
	}
	return s.persist(ctx, common.KeyFileFolders, s.fileFolders)
}

// FileFolder returns the folder a file is assigned to, "" when
// unassigned.
func (s *Store) FileFolder(fileID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileFolders[fileID]
}

// SearchPlatforms returns platforms whose name contains q,
// case-insensitive, in display order.
func (s *Store) SearchPlatforms(q string) []models.Platform {
	q = strings.ToLower(q)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Platform
	for _, p := range s.platforms {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// SearchGames returns games whose name contains q, case-insensitive, in
// display order.
func (s *Store) SearchGames(q string) []models.Game {
	q = strings.ToLower(q)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Game
	for _, g := range s.games {
		if strings.Contains(strings.ToLower(g.Name), q) {
			out = append(out, g)
		}
	}
	return out
}
