// Package timeouts defines shared timeout constants used across the
// notification pipeline so upstream calls and shutdown agree on budgets.
package timeouts

import "time"

// EnrichLookup caps one optional enrichment lookup (profile, event id,
// product details, player count). A lookup that exceeds it is unresolved.
const EnrichLookup = 5 * time.Second

// HTTPRequest caps a single outbound HTTP request to a storefront API.
const HTTPRequest = 10 * time.Second

// Shutdown limits how long a command waits for telemetry flushes on exit.
const Shutdown = 5 * time.Second
