// Package storage is the persistence collaborator: a key-value interface
// over durable local storage, holding whole JSON documents under fixed keys.
package storage

import "context"

// Document keys. The suffix is the only schema versioning there is.
const (
	KeyAppState = "wms.app.state.v1"
	KeyUsers    = "wms.auth.users.v1"
)

// Store reads and writes one JSON document per key.
type Store interface {
	// Get unmarshals the document for key into out. It reports false with
	// a nil error when no document exists, leaving out untouched.
	Get(ctx context.Context, key string, out interface{}) (bool, error)

	// Set marshals value and stores it under key, replacing any previous
	// document.
	Set(ctx context.Context, key string, value interface{}) error
}
