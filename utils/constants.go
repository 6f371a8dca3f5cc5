// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 1 * time.Hour

// DraftCachePrefix is the prefix used for wizard draft session keys.
const DraftCachePrefix = "wizard:"

// DraftTTL is how long an idle wizard draft survives before expiring.
const DraftTTL = 30 * time.Minute
