package models

// Credentials holds the Salesforce login inputs for a single
// authentication attempt. Values are opaque and passed through
// untransformed; the security token is appended to the password
// on the wire as the Partner API requires.
type Credentials struct {
	Username      string
	Password      string
	SecurityToken string
	Sandbox       bool
}

func NewCredentials(
	username string,
	password string,
	securityToken string,
	sandbox bool,
) Credentials {
	return Credentials{
		Username:      username,
		Password:      password,
		SecurityToken: securityToken,
		Sandbox:       sandbox,
	}
}

// PasswordWithToken returns the concatenation sent in the SOAP login
// body. No separator and no trimming, matching the Partner API contract.
func (c Credentials) PasswordWithToken() string {
	return c.Password + c.SecurityToken
}
