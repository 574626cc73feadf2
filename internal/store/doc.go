// Package store implements a minimal document store over SQLite.
//
// A [Store] exposes named [Collection] handles. Each collection is a table of
// flat JSON documents keyed by a store-assigned object id (24 hex characters,
// see [NewObjectID]). Documents are returned in insertion order.
//
// The store is the sole owner of persisted state: callers hold no replicas,
// and concurrent operations on the same id race at the store with last write
// wins. Identifier format validation is the caller's job via [IsValidObjectID]
// so malformed tokens never reach a query.
package store
