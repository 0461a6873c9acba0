package models

// CheckMobileRequest is the body of POST /User/check-mobile.
type CheckMobileRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

// SendOTPRequest is the body of POST /User/send-otp.
type SendOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

// LoginOTPRequest is the body of POST /User/login-otp. DeviceType,
// DeviceToken and LoginType describe the client installation; the backend
// uses them for push routing and audit, the client just fills them in.
type LoginOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
	OTP          string `json:"otp"`
	DeviceType   string `json:"deviceType"`
	DeviceToken  string `json:"deviceToken"`
	LoginType    string `json:"loginType"`
}

// RegistrationForm is the full payload of POST /User/register: the
// identity fields collected on the registration screen plus the device and
// role metadata the client fills in itself.
type RegistrationForm struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	GovernmentID string `json:"governmentId"`

	RoleID      int64  `json:"roleId"`
	DeviceType  string `json:"deviceType"`
	DeviceToken string `json:"deviceToken"`
}

// SearchQuery holds the query parameters of the marketplace search
// endpoint.
type SearchQuery struct {
	// Keyword is matched by the backend against origin, destination and
	// material fields.
	Keyword string

	// FilterType narrows the search to one listing kind ("load", "truck",
	// "trip") or returns everything when empty.
	FilterType string
}
