// Package cli provides the interactive GEVP console.
//
// It wires the API client, the session and preferences stores and a
// read–eval–print loop. Visitors can browse countries, products and
// exporters and use the unit converter; country representatives manage their
// own products and exporters; the super-administrator manages users and reads
// the audit log.
//
// Protected commands are checked with guard.Check before they run. When the
// backend answers 401 the session is cleared and the next command starts the
// login prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
