package domain

import "time"

// Subscriber is a newsletter subscription.
type Subscriber struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
