// Package connector provides concrete source and sink adapters for the
// flownet block contracts: files, CSV, JSON lines, HTTP polling, webhooks,
// and websocket feeds. Connectors are ordinary call/return functions; all
// concurrency and termination handling stays in the runtime.
package connector
