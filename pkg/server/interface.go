/*
Package server implements msgpack IPC for the completion engine.

The protocol is a request/response stream over stdin/stdout using binary
msgpack encoding. Each request carries an ID the response echoes back, so a
client may pipeline requests. Messages are processed synchronously.

A completion request looks like:

	{"id": "req_001", "q": "vsc", "ctx": "install", "l": 10}

and is answered with the ordered package names plus timing info:

	{"id": "req_001", "names": ["visual-studio-code", "vscodium"], "c": 2, "t": 145}

A record request feeds a confirmed install/remove back into the usage store:

	{"id": "rec_001", "action": "record", "n": "firefox"}

Errors are reported per-request with a code and message; the stream itself
stays up until stdin closes.
*/
package server

// Request is an incoming IPC message. An empty action means "complete".
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action,omitempty"` // "", "complete", "record", "health"
	Query   string `msgpack:"q,omitempty"`
	Context string `msgpack:"ctx,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
	Name    string `msgpack:"n,omitempty"` // package name for "record"
}

// CompletionResponse carries the ordered names for one completion request.
type CompletionResponse struct {
	ID        string   `msgpack:"id"`
	Names     []string `msgpack:"names"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"` // microseconds
}

// StatusResponse acknowledges record/health requests and the ready banner.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a per-request failure.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}
