// The [surrealhttp] package is a thin client for the SurrealDB HTTP REST
// interface.
//
// # Connections
//
// [New] creates a [Client] bound to a server URL, namespace, database and
// credentials. Every request carries those as NS/DB headers plus HTTP Basic
// Auth; no token or session state is kept between calls.
//
// The client owns its underlying *http.Client unless one is supplied with
// [Client.SetHTTPClient], which lets several logical connections share one
// transport. [Client.Close] releases the transport only when it is owned, so
// the usual pattern is
//
//	db := surrealhttp.New("http://localhost:8000", "test", "test", "root", "root")
//	defer db.Close()
//
// # Operations
//
// [Client.Query] runs raw SurrealQL and returns every per-statement response
// envelope. The record operations ([Client.Select], [Client.Create],
// [Client.Update], [Client.Patch], [Client.Delete]) address either a whole
// table ("person") or one record ("person:tobie") and map directly onto the
// /key endpoints. Results are generic JSON values; use [Unmarshal],
// [UnmarshalRaw] or [SmartUnmarshal] to decode them into your own types.
//
// A record-addressed [Client.Select] or [Client.Create] that comes back empty
// fails with an error matching [ErrKeyNotFound]. Everything else - transport
// failures, malformed JSON, server-side statement errors - is surfaced to the
// caller unmodified.
package surrealhttp
