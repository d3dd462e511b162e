package domain

import "time"

// Whiteboard is the shared prep board. The kitchen keeps a single logical
// board; writes replace the most recently updated document (latest wins).
type Whiteboard struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	TodayPrep    string    `json:"todayPrep" bson:"today_prep"`
	TomorrowPrep string    `json:"tomorrowPrep" bson:"tomorrow_prep"`
	CreatedAt    time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
