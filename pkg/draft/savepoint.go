package draft

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNotPersisted reports an operation that requires a server-assigned id
// on an entity that has never been persisted.
var ErrNotPersisted = errors.New("entity has not been persisted")

// Savepoint is an immutable snapshot of a document at a point in time.
// Savepoints are always constructed from server data; they can only be
// fetched and deleted, never mutated locally.
type Savepoint struct {
	entity

	// ID is the server-assigned id of the savepoint.
	ID int64 `mapstructure:"id"`

	// DocumentID is the id of the document the savepoint belongs to.
	DocumentID int64 `mapstructure:"document_id"`

	// CreatedAt and UpdatedAt are the raw server timestamps; Created and
	// Updated parse them.
	CreatedAt string `mapstructure:"created_at"`
	UpdatedAt string `mapstructure:"updated_at"`

	// Extra captures response fields the typed schema does not declare.
	Extra map[string]any `mapstructure:",remain"`
}

func newSavepoint(c *Client) *Savepoint {
	return &Savepoint{entity: entity{client: c}}
}

// Savepoint fetches the savepoint with the given id. A missing id surfaces
// as an *APIError with status 404.
func (c *Client) Savepoint(ctx context.Context, id string) (*Savepoint, error) {
	path := fmt.Sprintf("savepoints/%s.json", url.PathEscape(id))
	obj, err := c.requestObject(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get savepoint: %w", err)
	}

	sp := newSavepoint(c)
	if err := sp.applyData(obj); err != nil {
		return nil, fmt.Errorf("failed to decode savepoint: %w", err)
	}
	return sp, nil
}

// applyData replaces the backing data and re-decodes the typed fields.
// The typed view is reset first so fields absent from the new response do
// not survive the wholesale replacement.
func (s *Savepoint) applyData(data map[string]any) error {
	*s = Savepoint{entity: s.entity}
	if err := decodeEntity(data, s); err != nil {
		return err
	}
	s.setData(data)
	return nil
}

// Delete removes the savepoint from the service. Savepoints always come
// from server data, so a missing id indicates a programmer error; it is
// guarded rather than sent as a malformed request.
func (s *Savepoint) Delete(ctx context.Context) error {
	if s.ObjectID() == "" {
		return ErrNotPersisted
	}

	path := fmt.Sprintf("savepoints/%s.json", url.PathEscape(s.ObjectID()))
	if _, err := s.client.request(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete savepoint: %w", err)
	}
	return nil
}
