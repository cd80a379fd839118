/*
Package observability turns search lifecycle events into metrics and logs.

Metrics owns its own Prometheus registry so several instances (one per Solver or
test) never collide on registration. Hooks and LogHooks return domain.SearchHooks
that can be merged and handed to the engine.
*/
package observability
