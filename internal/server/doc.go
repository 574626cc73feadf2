// Package server provides HTTP routing, middleware, and the request handlers
// for the realtime CRUD service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
// Middleware must be registered before handlers; routes registered earlier are not re-wrapped.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with
// method-qualified patterns, so GET and POST on one path are distinct routes.
//
// # Handlers
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds Routes, allowing a handler to encapsulate all of
// its route patterns.
//
//   - [UserHandler] : /users CRUD, each mutation broadcast over the realtime channel
//   - [PlaylistHandler] : read-only song listing
//   - [IndexHandler] : embedded demo page
//
// The WebSocket upgrade endpoint lives in the realtime package and registers
// through the same interface.
//
// # Error Shape
//
// Every failure response is {"message": ...}. Gateway errors map to statuses
// in respondError: malformed ids and missing fields are 400, unmatched
// records are 404, store failures are 500. Broadcast delivery failures never
// affect a response.
package server
