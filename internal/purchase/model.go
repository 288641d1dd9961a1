package purchase

import "time"

// Record is one permanently unlocked content unit. The ledger is append-only;
// rows are never deleted.
type Record struct {
	UserID    int       `db:"user_id" json:"user_id"`
	UnitID    int       `db:"unit_id" json:"unit_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
