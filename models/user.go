package models

// Messaging providers supported by the backend for outbound SMS.
const (
	ProviderTwilio    = "twilio"
	ProviderHTTPSSMS  = "httpssms"
	defaultMinPassLen = 6
)

// User represents the authenticated account as returned by the backend.
// The provider credential fields are only populated for the account owner.
type User struct {
	// ID is the backend-assigned user identifier.
	ID int64 `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PhoneNumber is the sender number used for outbound SMS.
	PhoneNumber string `json:"phone_number,omitempty"`

	// MessagingProvider selects the SMS gateway: "twilio" or "httpssms".
	MessagingProvider string `json:"messaging_provider,omitempty"`

	// TwilioAccountSID is the user's Twilio account SID.
	TwilioAccountSID string `json:"twilio_account_sid,omitempty"`

	// TwilioAuthToken is the user's Twilio auth token.
	TwilioAuthToken string `json:"twilio_auth_token,omitempty"`

	// HTTPSSMSAPIKey is the API key used when MessagingProvider is "httpssms".
	HTTPSSMSAPIKey string `json:"httpssms_api_key,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload sent to POST /auth/register. It deliberately
// has no password confirmation field.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// RegistrationForm is what the user fills in. ConfirmPassword is checked
// locally by Validate and dropped by Registration.
type RegistrationForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
}

// Registration returns the wire payload for the form.
func (f RegistrationForm) Registration() Registration {
	return Registration{Email: f.Email, Password: f.Password, PhoneNumber: f.PhoneNumber}
}

// Validate reports the first client-side problem with the form, or an
// empty string when the form can be submitted.
func (f RegistrationForm) Validate() string {
	switch {
	case f.Email == "" || f.Password == "":
		return "Email and password are required"
	case len(f.Password) < defaultMinPassLen:
		return "Password must be at least 6 characters"
	case f.Password != f.ConfirmPassword:
		return "Passwords do not match"
	}
	return ""
}

// Settings is the partial update accepted by PUT /auth/user. Empty fields
// are omitted and left unchanged by the backend.
type Settings struct {
	PhoneNumber       string `json:"phone_number,omitempty"`
	MessagingProvider string `json:"messaging_provider,omitempty"`
	TwilioAccountSID  string `json:"twilio_account_sid,omitempty"`
	TwilioAuthToken   string `json:"twilio_auth_token,omitempty"`
	HTTPSSMSAPIKey    string `json:"httpssms_api_key,omitempty"`
}
