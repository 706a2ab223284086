// Package clientip resolves the originating client IP of an HTTP request
// behind proxies and CDNs.
//
// Middleware stores the IP in the request context so that handlers, rate
// limiters (Key) and the logger (LoggerExtractor) agree on one value.
// Headers are trusted as sent; run the service behind a proxy that
// overwrites them.
package clientip
