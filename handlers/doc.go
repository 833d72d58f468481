// Package handlers holds the HTTP endpoints of the site backend and the
// JSON error rendering shared by them.
//
// Routes:
//
//	POST /api/contact        validate and relay a contact form submission
//	GET  /api/health         liveness, always {"ok":true} (registered by folio.WithHealthChecks)
//	GET  /api/health/ready   readiness with per-check results
//
// Every answer uses the [Response] envelope. [ErrorHandler] maps handler
// errors to it and logs server-side causes with the request id; clients
// only ever see the fixed messages declared in this package or the
// validation messages of pkg/contact.
package handlers
