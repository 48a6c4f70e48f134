package accounts

// DayLoad counts how many transactions reference each account within a
// single day, as origin or destination. The scheduler owns one DayLoad
// per day and consults it to honor the per-account daily cap.
type DayLoad struct {
	counts map[string]int
}

// NewDayLoad creates an empty per-day load tracker.
func NewDayLoad() *DayLoad {
	return &DayLoad{counts: make(map[string]int)}
}

// Count returns the number of transactions referencing the account today.
func (d *DayLoad) Count(id string) int {
	return d.counts[id]
}

// Increment records one more transaction referencing the account today.
func (d *DayLoad) Increment(id string) {
	d.counts[id]++
}

// AtCap reports whether the account has reached the given cap.
func (d *DayLoad) AtCap(id string, limit int) bool {
	return d.counts[id] >= limit
}
