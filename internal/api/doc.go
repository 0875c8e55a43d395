// Package api contains the HTTP handlers, request/response models, and the
// error translation layer mapping service errors to response statuses and
// stable error-kind tags.
package api
