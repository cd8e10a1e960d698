package models

// Profile is the user's profile record. The API reports the owning
// user's id under the "user__id" key, distinct from the profile id.
type Profile struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user__id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob,omitempty"`
	Bio       string `json:"bio,omitempty"`
	State     string `json:"state,omitempty"`
	Image     string `json:"image,omitempty"`
}

func (p *Profile) FullName() string {
	if p.FirstName == "" && p.LastName == "" {
		return p.Username
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
