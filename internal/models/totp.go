package models

// TOTPSetupResponse is returned when an admin initiates 2FA setup
type TOTPSetupResponse struct {
	Secret      string `json:"secret"`
	QRCode      string `json:"qr_code"` // data:image/png;base64,...
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
}

// TOTPVerifyRequest carries a 6-digit code plus, during login, the temp token
type TOTPVerifyRequest struct {
	Code      string `json:"code"`
	TempToken string `json:"temp_token,omitempty"`
}

// TOTPEnableRequest confirms setup with a code from the authenticator app
type TOTPEnableRequest struct {
	Code string `json:"code"`
}

// TOTPDisableRequest turns 2FA off; the current code is required
type TOTPDisableRequest struct {
	Code string `json:"code"`
}
