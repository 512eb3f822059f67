package models

import "time"

// Experience is a single post on the community wall: a short message a user
// shares about their investing journey. The author's display name is
// denormalized onto the post so the wall can be rendered without joining
// against the users table.
type Experience struct {
	// ExperienceID is the internal unique identifier of the post.
	ExperienceID int64 `json:"id"`

	// UserID is the identifier of the authoring user.
	UserID int64 `json:"userId"`

	// Name is the author's display name at posting time.
	Name string `json:"name"`

	// Role is a free-form label shown next to the author,
	// e.g. "Beginner Investor". Defaults to "Member".
	Role string `json:"role"`

	// Message is the body of the post.
	Message string `json:"message"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Experience model.
func (e Experience) TableName() string {
	return "experiences"
}
