package domain

import "time"

// AccessRequest is an unauthenticated "let me in" note left for the chef.
// Requests are reviewed by an admin, who hands out the registration key
// off-band; nothing in the system acts on them automatically.
type AccessRequest struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
