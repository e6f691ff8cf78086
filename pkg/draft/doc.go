// Package draft provides a Go client for the Draft (draftin.com) document
// management REST API.
//
// # Overview
//
// Draft is a hosted, markdown-based document manager. This package maps its
// versioned HTTP+JSON API onto local entities: a Document with full CRUD
// operations, and a Savepoint representing an immutable snapshot of a
// document at a point in time. All durable state, versioning logic, and
// consistency guarantees live in the remote service; the client is a
// request/response mapper.
//
// # Usage
//
//	client, err := draft.NewClient(&draft.Config{
//		Email:    os.Getenv("DRAFT_EMAIL"),
//		Password: os.Getenv("DRAFT_PASSWORD"),
//	})
//	if err != nil {
//		return err
//	}
//
//	doc, err := client.Document(ctx, "144732")
//	if err != nil {
//		return err
//	}
//	fmt.Println(doc.Content)
//
// # Entity lifecycle
//
// Entities are either drafts (never persisted, no server-assigned id) or
// persisted. A draft Document transitions to persisted on its first
// successful Update, which issues a create instead of an update. Deleting a
// persisted entity removes the remote resource but leaves the local object
// in place; callers must not reuse it afterwards.
//
// # Errors
//
// Remote failures (any response outside 2xx) are surfaced as *APIError
// carrying the HTTP status code and a message extracted from the response
// body. Reading a field an entity's backing data does not carry is a
// *FieldError, a disjoint local error kind. The client never retries and
// never swallows a remote failure.
package draft
