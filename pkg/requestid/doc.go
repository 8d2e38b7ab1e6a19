// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response header. LoggerExtractor plugs the id into logger.New so every
// record logged with the request context carries "request_id".
package requestid
