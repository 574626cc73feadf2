// Package realtime implements the WebSocket broadcast channel.
//
// The [Hub] owns the registry of connected clients and fans events out to
// them. Delivery is fire-and-forget: each client has a bounded outbound
// queue and events are dropped, never blocking the publisher, when a client
// cannot keep up. No acknowledgment is collected and no delivery failure is
// surfaced to the operation that triggered the event.
//
// Each [Client] runs a read pump and a write pump in the gorilla/websocket
// style. The read pump accepts inbound envelopes; the only understood event
// is add_song, which creates a song through the repository layer and thereby
// broadcasts new_song back to every client, including the sender.
//
// Wire format in both directions:
//
//	{"event": "<name>", "data": {...}}
package realtime
