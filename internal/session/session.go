// Package session owns the per-shopper state: the cart and the custom
// bouquet builder. State is keyed by an opaque session id minted by the API
// layer; there is no shared or global cart.
package session

import (
	"context"
	"encoding/json"

	"github.com/bloomstitch/storefront-backend/internal/bouquet"
	"github.com/bloomstitch/storefront-backend/internal/cart"
)

// State bundles everything a shopping session accumulates.
type State struct {
	Cart    *cart.Cart
	Builder *bouquet.Builder
}

// NewState returns an empty session.
func NewState() *State {
	return &State{
		Cart:    cart.New(),
		Builder: bouquet.NewBuilder(),
	}
}

// Store loads and persists session state. Get returns a fresh empty state
// for unknown ids; sessions are created lazily on first touch.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

type stateDTO struct {
	Cart    []cart.Line      `json:"cart"`
	Builder *bouquet.Builder `json:"builder"`
}

func encodeState(state *State) ([]byte, error) {
	return json.Marshal(stateDTO{
		Cart:    state.Cart.Lines(),
		Builder: state.Builder,
	})
}

func decodeState(data []byte) (*State, error) {
	dto := stateDTO{Builder: bouquet.NewBuilder()}
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	state := NewState()
	state.Cart.Restore(dto.Cart)
	if dto.Builder != nil {
		state.Builder = dto.Builder
	}
	return state, nil
}
