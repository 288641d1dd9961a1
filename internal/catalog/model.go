package catalog

import "time"

type WorkKind string
type Access string

const (
	KindSeries WorkKind = "series"
	KindNovel  WorkKind = "novel"

	AccessFree Access = "free"
	AccessPaid Access = "paid"
)

// Work is a series of episodes or a novel of chapters. Its units are ordered
// by created_at ascending; there is no explicit sequence index.
type Work struct {
	ID            int       `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Kind          WorkKind  `db:"kind" json:"kind"`
	CategoryID    int       `db:"category_id" json:"category_id"`
	CategoryTitle string    `db:"category_title" json:"category_title,omitempty"`
	Status        string    `db:"status" json:"status"`
	Visibility    string    `db:"visibility" json:"visibility"`
	Description   string    `db:"description" json:"description"`
	ThumbnailURL  string    `db:"thumbnail_url" json:"thumbnail_url"`
	TotalViews    int64     `db:"total_views" json:"total_views"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Unit is the atomic consumable item: an episode or a chapter.
type Unit struct {
	ID          int       `db:"id" json:"id"`
	WorkID      int       `db:"work_id" json:"work_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Access      Access    `db:"access" json:"access"`
	PriceCoins  int64     `db:"price_coins" json:"price_coins"`
	MediaURL    string    `db:"media_url" json:"media_url"`
	Format      string    `db:"format" json:"format"`
	TotalViews  int64     `db:"total_views" json:"total_views"`
	Rating      int       `db:"rating" json:"rating"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// UnitListing is a unit annotated for the per-user series listbox: paid units
// the user already owns (or can see via subscription) surface as free, and
// can_unlock marks the first still-locked paid unit in the sequence.
type UnitListing struct {
	Unit
	EffectiveAccess Access `json:"effective_access"`
	CanUnlock       bool   `json:"can_unlock"`
}
