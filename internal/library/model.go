package library

import "time"

// Bookmark is a "my list" entry for a unit.
type Bookmark struct {
	UserID    int       `db:"user_id" json:"user_id"`
	UnitID    int       `db:"unit_id" json:"unit_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Rating is a one-tap like on a unit; toggling removes it.
type Rating struct {
	UserID    int       `db:"user_id" json:"user_id"`
	UnitID    int       `db:"unit_id" json:"unit_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Flags carries a user's bookmark and rating state for one unit, resolved at
// response time.
type Flags struct {
	Bookmarked bool `json:"is_bookmarked"`
	Rated      bool `json:"is_rated"`
}
