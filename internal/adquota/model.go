package adquota

import "time"

// Record counts ad-granted unlocks for one (user, work) pair. All records are
// purged by the daily sweep, so created_at doubles as the quota window marker.
type Record struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	WorkID    int       `db:"work_id" json:"work_id"`
	ViewCount int       `db:"view_count" json:"view_count"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
