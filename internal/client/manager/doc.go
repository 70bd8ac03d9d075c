// Package manager holds the client-side state of the credential and note
// managers: the Viewing / Adding / Editing form state, the draft being
// edited, the records on screen and per-row password visibility. Every
// mutation goes through a store (the gRPC client in production) and ends
// with a notification.
package manager
