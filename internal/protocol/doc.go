// Package protocol defines the error taxonomy surfaced to clients and the
// accessors handlers use to read invocation arguments.
//
// Every failure a client sees is a *Error carrying one of three JSON-RPC
// codes: method-not-found for names absent from a registry, invalid-params
// for input rejected before any side effect, and internal-error for anything
// that went wrong once work had started.
package protocol
