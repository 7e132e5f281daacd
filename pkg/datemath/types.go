package datemath

// Bucket is a named deadline time-window predicate.
type Bucket string

const (
	BucketOverdue Bucket = "overdue"
	BucketToday   Bucket = "today"
	BucketWeek    Bucket = "week"
	BucketMonth   Bucket = "month"
)

// Valid reports whether b is a known bucket.
func (b Bucket) Valid() bool {
	switch b {
	case BucketOverdue, BucketToday, BucketWeek, BucketMonth:
		return true
	}
	return false
}
