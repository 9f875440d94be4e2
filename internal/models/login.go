package models

// LoginResult is the successful outcome of a SOAP login: the bearer-style
// session id and the instance server URL returned by Salesforce. Both are
// carried verbatim from the response body.
type LoginResult struct {
	SessionID string
	ServerURL string
}

func NewLoginResult(sessionID string, serverURL string) *LoginResult {
	return &LoginResult{
		SessionID: sessionID,
		ServerURL: serverURL,
	}
}

// APIVersion is one entry of the JSON array returned by the REST
// `/services/data/` listing.
type APIVersion struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Version string `json:"version"`
}
