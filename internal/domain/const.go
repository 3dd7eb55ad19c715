package domain

import "time"

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	MULTICALL3_ADDRESS    = "0xcA11bde05977b3631167028862bE2a173976CA11"

	// Ownership discovery defaults
	DEFAULT_TOTAL_SUPPLY = 1000
	DEFAULT_BATCH_SIZE   = 100
	DEFAULT_BATCH_DELAY  = 250 * time.Millisecond

	// Points emitted across all stakers per week
	DEFAULT_WEEKLY_POINTS = 500_000
	SECONDS_PER_WEEK      = 7 * 24 * 60 * 60
)
