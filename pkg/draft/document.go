package draft

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// Document is a plain-text document stored in Draft.
//
// The typed fields cover the documented response schema; anything else the
// service returns lands in Extra and is also reachable through Field. A
// Document constructed by NewDocument is a draft until its first successful
// Update, which creates the remote resource and assigns its id.
type Document struct {
	entity

	// ID is the server-assigned id; zero for a draft.
	ID int64 `mapstructure:"id"`

	// Name is the document's optional display name.
	Name string `mapstructure:"name"`

	// Content is the document's text body.
	Content string `mapstructure:"content"`

	// CreatedAt and UpdatedAt are the raw server timestamps (ISO-8601
	// strings); Created and Updated parse them.
	CreatedAt string `mapstructure:"created_at"`
	UpdatedAt string `mapstructure:"updated_at"`

	// Extra captures response fields the typed schema does not declare,
	// for forward compatibility with service-added fields.
	Extra map[string]any `mapstructure:",remain"`
}

// documentPayload is the request body for document create and update.
type documentPayload struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// NewDocument returns an empty draft Document. It issues no request; the
// document is created remotely on its first Update.
func (c *Client) NewDocument() *Document {
	return &Document{entity: entity{client: c}}
}

// Documents lists all documents in the account. Each element of the
// returned JSON array becomes a Document with that element as backing data
// directly; no per-item fetch is issued.
func (c *Client) Documents(ctx context.Context) ([]*Document, error) {
	objs, err := c.requestArray(ctx, http.MethodGet, "documents.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*Document, 0, len(objs))
	for _, obj := range objs {
		doc := c.NewDocument()
		if err := doc.applyData(obj); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Document fetches the document with the given id. A missing id surfaces
// as an *APIError with status 404.
func (c *Client) Document(ctx context.Context, id string) (*Document, error) {
	doc := c.NewDocument()
	if err := doc.fetch(ctx, id); err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateDocument creates a new document with the given content and
// optional name, and returns it populated from the service response.
func (c *Client) CreateDocument(ctx context.Context, content, name string) (*Document, error) {
	doc := c.NewDocument()
	if err := doc.Update(ctx, content, name); err != nil {
		return nil, err
	}
	return doc, nil
}

// applyData replaces the backing data and re-decodes the typed fields.
// The typed view is reset first so fields absent from the new response do
// not survive the wholesale replacement.
func (d *Document) applyData(data map[string]any) error {
	*d = Document{entity: d.entity}
	if err := decodeEntity(data, d); err != nil {
		return err
	}
	d.setData(data)
	return nil
}

func (d *Document) fetch(ctx context.Context, id string) error {
	path := fmt.Sprintf("documents/%s.json", url.PathEscape(id))
	obj, err := d.client.requestObject(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if err := d.applyData(obj); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// Refresh re-fetches the document from the service, replacing the backing
// data with canonical server state. It is a no-op for a draft.
func (d *Document) Refresh(ctx context.Context) error {
	if d.ObjectID() == "" {
		return nil
	}
	return d.fetch(ctx, d.ObjectID())
}

// Update sets the document's content and optional name. A draft is created
// with a single POST whose response becomes the backing data; a persisted
// document is updated with a PUT and then refreshed, since the update
// response is not assumed to carry the full document.
func (d *Document) Update(ctx context.Context, content, name string) error {
	if d.ObjectID() == "" {
		return d.create(ctx, content, name)
	}

	path := fmt.Sprintf("documents/%s.json", url.PathEscape(d.ObjectID()))
	payload := documentPayload{Content: content, Name: name}
	if _, err := d.client.request(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return d.Refresh(ctx)
}

func (d *Document) create(ctx context.Context, content, name string) error {
	payload := documentPayload{Content: content, Name: name}
	obj, err := d.client.requestObject(ctx, http.MethodPost, "documents.json", payload)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	if err := d.applyData(obj); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// Delete removes the document from the service. It is a no-op for a draft.
// The local object is left in place but is semantically stale afterwards;
// callers must not reuse it.
func (d *Document) Delete(ctx context.Context) error {
	if d.ObjectID() == "" {
		return nil
	}

	path := fmt.Sprintf("documents/%s.json", url.PathEscape(d.ObjectID()))
	if _, err := d.client.request(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// Savepoints lists the document's savepoints. A draft has none; no request
// is issued for it.
func (d *Document) Savepoints(ctx context.Context) ([]*Savepoint, error) {
	if d.ObjectID() == "" {
		return []*Savepoint{}, nil
	}

	path := fmt.Sprintf("documents/%s/savepoints.json", url.PathEscape(d.ObjectID()))
	objs, err := d.client.requestArray(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list savepoints: %w", err)
	}

	savepoints := make([]*Savepoint, 0, len(objs))
	for _, obj := range objs {
		sp := newSavepoint(d.client)
		if err := sp.applyData(obj); err != nil {
			return nil, fmt.Errorf("failed to decode savepoint: %w", err)
		}
		savepoints = append(savepoints, sp)
	}
	return savepoints, nil
}

// CreateSavepoint snapshots the document's current state and returns the
// new Savepoint. It returns nil without issuing a request for a draft.
func (d *Document) CreateSavepoint(ctx context.Context) (*Savepoint, error) {
	if d.ObjectID() == "" {
		return nil, nil
	}

	path := fmt.Sprintf("documents/%s/savepoints.json", url.PathEscape(d.ObjectID()))
	obj, err := d.client.requestObject(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create savepoint: %w", err)
	}
	if obj == nil {
		return nil, nil
	}

	sp := newSavepoint(d.client)
	if err := sp.applyData(obj); err != nil {
		return nil, fmt.Errorf("failed to decode savepoint: %w", err)
	}
	return sp, nil
}

// decodeEntity maps backing data onto an entity's typed fields. Weak
// typing tolerates the service encoding ids as JSON numbers or strings.
func decodeEntity(data map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
