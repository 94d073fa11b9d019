// File: utils/constants.go
package utils

import "time"

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "booking:session:"

// SessionTTL is the sliding time-to-live for in-progress booking sessions.
// Every save and every explicit extend resets the window to this value.
const SessionTTL = 30 * time.Minute
