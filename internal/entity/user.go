package entity

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User identities come from the auth frontend, so the ID is supplied by the
// client rather than generated by the store.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	Gender    string    `json:"gender"`
	DOB       time.Time `json:"dob"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Age is derived from the date of birth at query time.
func (u *User) Age() int {
	return AgeAt(u.DOB, time.Now())
}

// AgeAt returns whole years between dob and now.
func AgeAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
