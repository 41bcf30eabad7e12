package testroutes

import "time"

// HTTP status code constants.
const (
	StatusOK              = 200
	StatusTooManyRequests = 429
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	ProgressInterval     = 1 * time.Second
	PercentageMultiplier = 100
)
