package credits

import "time"

// DefaultBalance is granted when a user's credit row is first created.
const DefaultBalance = 1000

// Balance is the per-user credit record. Exactly one row exists per user;
// this slice only reads or initializes it, spending happens elsewhere.
type Balance struct {
	UserID    string    `db:"user_id" json:"user_id"`
	Balance   int64     `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
