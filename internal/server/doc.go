// Package server speaks line-delimited JSON-RPC 2.0 over a pair of streams,
// normally stdin and stdout. It answers the handshake itself and hands every
// capability method to the router. Requests are handled concurrently and
// responses are written one line at a time in completion order.
package server
