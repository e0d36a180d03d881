package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/repository/contract"
	"entity-notes-be/internal/repository/specification"
	"entity-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is the shared in-memory backing for the fake repositories.
// fakeUow layers transactional semantics on top: writes made inside
// Begin/Commit are buffered and only become visible on Commit.
type fakeStore struct {
	notes      map[int64]*entity.Note
	nextId     int64
	configs    map[string]*entity.EntityNotesConfig
	grants     []*entity.PermissionGrant
	users      map[uuid.UUID]*entity.User
	failCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		notes:   make(map[int64]*entity.Note),
		configs: make(map[string]*entity.EntityNotesConfig),
		users:   make(map[uuid.UUID]*entity.User),
	}
}

func (s *fakeStore) enableNotes(entityType string) {
	s.configs[entityType] = &entity.EntityNotesConfig{EntityType: entityType, Enabled: true, UpdatedAt: time.Now()}
}

func (s *fakeStore) disableNotes(entityType string) {
	s.configs[entityType] = &entity.EntityNotesConfig{EntityType: entityType, Enabled: false, UpdatedAt: time.Now()}
}

func (s *fakeStore) grant(role, resourceKey string, action entity.NoteAction) {
	s.grants = append(s.grants, &entity.PermissionGrant{
		Id: int64(len(s.grants) + 1), Role: role, ResourceKey: resourceKey, Action: action,
	})
}

func (s *fakeStore) addUser(id uuid.UUID, name string) {
	s.users[id] = &entity.User{Id: id, FullName: name}
}

type fakeUow struct {
	store      *fakeStore
	inTx       bool
	pending    []*entity.Note
	committed  bool
	rolledBack bool
}

func newFakeUow(store *fakeStore) *fakeUow {
	return &fakeUow{store: store}
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	for _, n := range u.pending {
		u.store.notes[n.Id] = n
	}
	u.pending = nil
	u.inTx = false
	u.committed = true
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.pending = nil
	u.inTx = false
	u.rolledBack = true
	return nil
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{uow: u}
}

func (u *fakeUow) NotesConfigRepository() contract.NotesConfigRepository {
	return &fakeConfigRepo{store: u.store}
}

func (u *fakeUow) PermissionGrantRepository() contract.PermissionGrantRepository {
	return &fakeGrantRepo{store: u.store}
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return newFakeUow(f.store)
}

// fakeNoteRepo interprets the same specification values the GORM
// implementation would apply as SQL.
type fakeNoteRepo struct {
	uow *fakeUow
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	if r.uow.store.failCreate {
		return fmt.Errorf("connection reset")
	}
	r.uow.store.nextId++
	note.Id = r.uow.store.nextId
	clone := *note
	if r.uow.inTx {
		r.uow.pending = append(r.uow.pending, &clone)
		return nil
	}
	r.uow.store.notes[clone.Id] = &clone
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	clone := *note
	r.uow.store.notes[clone.Id] = &clone
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id int64, hard bool) error {
	if hard {
		delete(r.uow.store.notes, id)
		return nil
	}
	if n, ok := r.uow.store.notes[id]; ok {
		now := time.Now()
		n.IsDeleted = true
		n.DeletedAt = &now
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	for _, n := range r.uow.store.notes {
		if n.IsDeleted {
			continue
		}
		if matchesAll(n, specs) {
			clone := *n
			result = append(result, &clone)
		}
	}

	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.NewestFirst:
			sort.Slice(result, func(i, j int) bool {
				if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].Id > result[j].Id
			})
		case specification.Limit:
			limit = s.N
		}
	}
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func matchesAll(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ForEntity:
			if n.EntityType != s.EntityType || n.EntityId != s.EntityId {
				return false
			}
		case specification.ForEntities:
			if n.EntityType != s.EntityType {
				return false
			}
			found := false
			for _, id := range s.EntityIds {
				if n.EntityId == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.Before:
			if !(n.CreatedAt.Before(s.CreatedAt) || (n.CreatedAt.Equal(s.CreatedAt) && n.Id < s.Id)) {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

type fakeConfigRepo struct {
	store *fakeStore
}

func (r *fakeConfigRepo) FindByEntityType(ctx context.Context, entityType string) (*entity.EntityNotesConfig, error) {
	cfg, ok := r.store.configs[entityType]
	if !ok {
		return nil, nil
	}
	clone := *cfg
	return &clone, nil
}

func (r *fakeConfigRepo) FindEnabled(ctx context.Context) ([]*entity.EntityNotesConfig, error) {
	var result []*entity.EntityNotesConfig
	for _, cfg := range r.store.configs {
		if cfg.Enabled {
			clone := *cfg
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EntityType < result[j].EntityType })
	return result, nil
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, config *entity.EntityNotesConfig) error {
	clone := *config
	r.store.configs[clone.EntityType] = &clone
	return nil
}

type fakeGrantRepo struct {
	store *fakeStore
}

func (r *fakeGrantRepo) FindByResourceAction(ctx context.Context, resourceKey string, action entity.NoteAction) ([]*entity.PermissionGrant, error) {
	var result []*entity.PermissionGrant
	for _, g := range r.store.grants {
		if g.ResourceKey == resourceKey && g.Action == action {
			result = append(result, g)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	var result []*entity.User
	for _, id := range ids {
		if u, ok := r.store.users[id]; ok {
			clone := *u
			result = append(result, &clone)
		}
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
