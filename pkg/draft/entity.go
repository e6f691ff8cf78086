package draft

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// entity is the shared base of all server-backed objects. It holds a
// reference to the client and the backing data: the verbatim decoded map
// from the most recent successful response for the entity, nil until the
// entity has been created or fetched. Replacing the map wholesale is the
// only mutation primitive.
type entity struct {
	client    *Client
	data      map[string]any
	persisted bool
}

// Field looks up a named field in the entity's backing data. This gives
// access to any field the service returned, including ones the typed
// structs do not declare. It returns a *FieldError when the entity has no
// backing data or the key is absent.
func (e *entity) Field(name string) (any, error) {
	if e.data == nil {
		return nil, &FieldError{Field: name}
	}
	value, ok := e.data[name]
	if !ok {
		return nil, &FieldError{Field: name}
	}
	return value, nil
}

// ObjectID returns the entity's server-assigned id, or "" when the entity
// has never been persisted. An entity without an id is a draft: any
// mutating operation on it must create instead of update.
func (e *entity) ObjectID() string {
	id, err := e.Field("id")
	if err != nil {
		return ""
	}
	switch v := id.(type) {
	case json.Number:
		return v.String()
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Persisted reports whether the entity has been created on or fetched from
// the server. It stays consistent with ObjectID returning a non-empty id.
func (e *entity) Persisted() bool {
	return e.persisted
}

// Created returns the entity's creation timestamp, parsed from the
// created_at field. It returns a *FieldError when the field is absent.
func (e *entity) Created() (time.Time, error) {
	return e.timestamp("created_at")
}

// Updated returns the entity's last update timestamp, parsed from the
// updated_at field. It returns a *FieldError when the field is absent.
func (e *entity) Updated() (time.Time, error) {
	return e.timestamp("updated_at")
}

func (e *entity) timestamp(field string) (time.Time, error) {
	value, err := e.Field(field)
	if err != nil {
		return time.Time{}, err
	}
	str, ok := value.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("field %q is not a timestamp string, got %T", field, value)
	}
	t, err := dateparse.ParseAny(str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return t, nil
}

// setData replaces the backing data and marks the entity persisted.
func (e *entity) setData(data map[string]any) {
	e.data = data
	e.persisted = true
}
