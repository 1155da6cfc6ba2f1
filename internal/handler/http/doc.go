// Package http implements the HTTP transport layer of the forum.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the websocket live feed. Cross-cutting concerns such as
// authentication, request tracing, access logging, response compression, and
// CORS are handled in this package before requests are delegated to the
// service layer.
package http
