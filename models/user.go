package models

import "time"

// User is the identity record returned by the backend on a successful
// login or registration. The client treats it as an opaque value object:
// fields are displayed and submitted, never computed or validated beyond
// presence checks in the forms that collect them.
type User struct {
	// UserID is the backend-assigned identifier of the account.
	UserID int64 `json:"id"`

	// FirstName and LastName form the display name of the user.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// MobileNumber is the phone number the account is registered under.
	// It doubles as the login identifier for the OTP flow.
	MobileNumber string `json:"mobileNumber"`

	Email string `json:"email"`

	// Address fields as collected on the registration form.
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`

	// GovernmentID is the government-issued identity number supplied at
	// registration. Stored verbatim, never validated client-side.
	GovernmentID string `json:"governmentId"`

	// RoleID and OrganizationID are account metadata assigned by the
	// backend; the client only carries them through.
	RoleID         int64 `json:"roleId"`
	OrganizationID int64 `json:"organizationId"`

	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins the name fields for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Identity is the combined payload returned by a successful OTP
// verification: the user record plus the token pair that represents the
// authenticated session.
type Identity struct {
	User         User   `json:"user"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
