package model

import "time"

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Profile 與 User 一對一，註冊帳號時建立
type Profile struct {
	ID             int        `json:"id" db:"id"`
	UserID         int        `json:"user_id" db:"user_id"`
	ProfilePicture *string    `json:"profile_picture,omitempty" db:"profile_picture"`
	FullName       string     `json:"full_name" db:"full_name"`
	Phone          string     `json:"phone" db:"phone"`
	Education      string     `json:"education" db:"education"`
	Location       string     `json:"location" db:"location"`
	Gender         Gender     `json:"gender" db:"gender"`
	BirthDate      *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Bio            string     `json:"bio" db:"bio"`
	LinkedIn       string     `json:"linkedin" db:"linkedin"`
	GitHub         string     `json:"github" db:"github"`
	Instagram      string     `json:"instagram" db:"instagram"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type UpdateProfileParams struct {
	FullName  *string
	Phone     *string
	Education *string
	Location  *string
	Gender    *Gender
	BirthDate *time.Time
	Bio       *string
	LinkedIn  *string
	GitHub    *string
	Instagram *string
}

func (p UpdateProfileParams) IsEmpty() bool {
	return p.FullName == nil && p.Phone == nil && p.Education == nil && p.Location == nil &&
		p.Gender == nil && p.BirthDate == nil && p.Bio == nil &&
		p.LinkedIn == nil && p.GitHub == nil && p.Instagram == nil
}
