package models

// CheckMobileResponse is the body returned by POST /User/check-mobile.
type CheckMobileResponse struct {
	Exists bool `json:"exists"`
}

// SendOTPResponse is the provider-defined body returned by
// POST /User/send-otp. Delivered is the confirmation field; a 2xx response
// with Delivered=false is still a failed send.
type SendOTPResponse struct {
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`

	// Code is echoed by non-production providers so automated tests can
	// complete the flow without a phone. Absent in production.
	Code string `json:"code,omitempty"`
}

// LoginOTPResponse is the body returned by POST /User/login-otp.
type LoginOTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
