package history

import "time"

// Entry records the most recent unit a user viewed in a work. One row per
// (user, work), refreshed on every view.
type Entry struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	WorkID     int       `db:"work_id" json:"work_id"`
	UnitID     int       `db:"unit_id" json:"unit_id"`
	CategoryID int       `db:"category_id" json:"category_id"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	WorkTitle string `db:"work_title" json:"work_title,omitempty"`
}
