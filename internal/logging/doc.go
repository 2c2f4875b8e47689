// Package logging builds the process logger. Logs always go to stderr:
// in server mode stdout carries the protocol.
package logging
