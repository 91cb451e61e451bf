package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Days returns the number of calendar days between From and To.
func (r Range) Days() int { return r.To.Sub(r.From) }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Validate returns an error unless To is strictly after From.
func (r Range) Validate() error {
	if !r.To.After(r.From) {
		return fmt.Errorf("range end %s is not after start %s", r.To, r.From)
	}
	return nil
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
