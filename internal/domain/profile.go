package domain

import "time"

type Profile struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilePage is the public shape of a profile: display metadata plus
// every link the owner has published. Links is never nil.
type ProfilePage struct {
	Profile *Profile `json:"profile"`
	Links   []Link   `json:"links"`
}
