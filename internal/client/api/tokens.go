package api

import (
	"context"

	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// KVTokenStore keeps the token in the local key-value store under a fixed
// key.
type KVTokenStore struct {
	store kvstore.Store
}

func NewKVTokenStore(store kvstore.Store) *KVTokenStore {
	return &KVTokenStore{store: store}
}

func (s *KVTokenStore) Load(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, common.KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *KVTokenStore) Save(ctx context.Context, token string) error {
	return s.store.Set(ctx, common.KeyAuthToken, []byte(token))
}

func (s *KVTokenStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, common.KeyAuthToken)
}
