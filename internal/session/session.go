package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
)

// PassInfoKey is the slot holding the pass record between flow steps.
const PassInfoKey = "passInfo"

const (
	msgNoPassInfo     = "No pass information found. Please start over."
	msgUnreadablePass = "Could not retrieve pass information. Please start over."
)

// Session binds a Store to one visitor.
type Session struct {
	ID    string
	store Store
}

func New(store Store, id string) *Session {
	return &Session{ID: id, store: store}
}

// SavePassInfo overwrites the stash.
func (s *Session) SavePassInfo(ctx context.Context, info models.ClientPassInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode pass info: %w", err)
	}
	return s.store.Set(ctx, s.ID, PassInfoKey, b)
}

// LoadPassInfo returns domain.StateMissingError when the stash is absent or cannot be
// decoded. Other store failures are returned as is.
func (s *Session) LoadPassInfo(ctx context.Context) (models.ClientPassInfo, error) {
	var info models.ClientPassInfo

	b, err := s.store.Get(ctx, s.ID, PassInfoKey)
	if errors.Is(err, ErrNotFound) {
		return info, domain.StateMissingError{Key: PassInfoKey, Msg: msgNoPassInfo, Err: err}
	}
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(b, &info); err != nil {
		return info, domain.StateMissingError{Key: PassInfoKey, Msg: msgUnreadablePass, Err: err}
	}
	if !info.PassType.Valid() {
		return info, domain.StateMissingError{Key: PassInfoKey, Msg: msgUnreadablePass}
	}
	return info, nil
}

// Clear drops the stash; called whenever the flow restarts at pass selection.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.ID, PassInfoKey)
}
