// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] always answers 200 {"ok":true} while the process is up.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// timeout and answers 200 or 503 with per-check results:
//
//	{
//	  "ok": false,
//	  "checks": {
//	    "smtp":  {"ok": false, "error": "health: check failed"},
//	    "redis": {"ok": true}
//	  }
//	}
//
// Failure causes are logged, not returned, so relay hosts and credentials
// never reach the response body.
//
// # Quick Start
//
//	r.Get("/api/health", health.LivenessHandler())
//	r.Get("/api/health/ready", health.ReadinessHandler(health.Checks{
//	    "smtp":  smtpSender.Healthcheck(),
//	    "redis": redis.Healthcheck(client),
//	}, health.WithLogger(log), health.WithTimeout(3*time.Second)))
//
// # Errors
//
//   - [ErrCheckFailed] - a check returned an error
//   - [ErrCheckTimeout] - a check exceeded the shared timeout
package health
