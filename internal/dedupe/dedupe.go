// Package dedupe holds shared singleflight groups so concurrent identical
// reads collapse into one query.
package dedupe

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard queries keyed by
// "top:<limit>".
var LeaderboardGroup singleflight.Group

// StatsGroup deduplicates per-player stats lookups keyed by
// "stats:<lowercased name>".
var StatsGroup singleflight.Group
