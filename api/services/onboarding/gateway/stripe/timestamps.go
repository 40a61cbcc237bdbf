package stripegw

import "time"

// cancelAtUnix returns now advanced by the given number of calendar months,
// truncated to whole seconds. Month-end overflow follows Go's AddDate
// normalization (Jan 31 + 1 month = Mar 2/3).
func cancelAtUnix(now time.Time, months int64) int64 {
	return now.AddDate(0, int(months), 0).Unix()
}

// trialEndUnix returns now advanced by the given number of calendar days,
// truncated to whole seconds.
func trialEndUnix(now time.Time, days int64) int64 {
	return now.AddDate(0, 0, int(days)).Unix()
}
