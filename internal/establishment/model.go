package establishment

import "time"

const (
	StatusActive    = "active"
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
	StatusRejected  = "rejected"
)

// Price tiers are ordinal: "$" < "$$" < "$$$" < "$$$$".
var PriceTiers = []string{"$", "$$", "$$$", "$$$$"}

// DayHours holds a single day's schedule as "HH:MM" strings.
// Close earlier than Open means the establishment closes past midnight.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeekSchedule maps lowercase weekday names ("monday".."sunday") to hours.
// A missing day means closed that day.
type WeekSchedule map[string]DayHours

type Establishment struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	City          string       `json:"city"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	Categories    []string     `json:"categories"`
	Cuisines      []string     `json:"cuisines"`
	PriceTier     string       `json:"price_tier"`
	AverageRating *float64     `json:"average_rating,omitempty"`
	ReviewCount   int          `json:"review_count"`
	BoostScore    float64      `json:"boost_score"`
	Is24Hours     bool         `json:"is_24_hours"`
	WorkingHours  WeekSchedule `json:"working_hours,omitempty"`
	Features      []string     `json:"features"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// HasLocation reports whether the record carries a usable coordinate pair.
// Records without one are excluded from radius and bounds searches.
func (e *Establishment) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// PriceTierIndex returns the ordinal position of a tier, or -1 for unknown.
func PriceTierIndex(tier string) int {
	for i, t := range PriceTiers {
		if t == tier {
			return i
		}
	}
	return -1
}
