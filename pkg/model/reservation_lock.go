package model

import "time"

// SlotLock is an advisory lock preventing concurrent reservation creation for
// a single grid slot. The availability check plus insert for a request runs
// while holding the locks for every slot the reservation would cover.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
