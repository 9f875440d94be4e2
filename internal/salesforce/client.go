package salesforce

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/veltio/sfauth/internal/models"
)

const (
	// ProductionLoginURL is the Partner WSDL login endpoint for
	// production orgs.
	ProductionLoginURL = "https://login.salesforce.com/services/Soap/u/60.0"

	// SandboxLoginURL is the Partner WSDL login endpoint for sandbox
	// orgs. Sandboxes live on the org's own my.salesforce.com domain,
	// so most deployments override this via config.
	SandboxLoginURL = "https://mysandbox.my.salesforce.com/services/Soap/u/60.0"

	loginTimeout = 30 * time.Second
)

// Errors returned by Authenticate. Callers distinguish the two failure
// kinds with errors.Is; neither is fatal to the process.
var (
	// ErrTransport covers network errors, timeouts and non-200 statuses
	// on the login call.
	ErrTransport = fmt.Errorf("salesforce: transport failure")

	// ErrParse covers malformed response XML and responses missing the
	// expected sessionId/serverUrl elements.
	ErrParse = fmt.Errorf("salesforce: response parse failure")
)

// Authenticator performs the SOAP login exchange against the Salesforce
// Partner API and exposes a REST probe for the resulting session. It is
// safe to reuse across calls; each call is independent.
type Authenticator struct {
	client   *resty.Client
	loginURL string
}

func NewAuthenticator() *Authenticator {
	return &Authenticator{
		client: resty.New().SetTimeout(loginTimeout),
	}
}

// NewAuthenticatorWithEndpoint overrides the login endpoint regardless of
// the sandbox flag. Used for custom my-domain endpoints and for tests.
func NewAuthenticatorWithEndpoint(loginURL string) *Authenticator {
	a := NewAuthenticator()
	a.loginURL = loginURL
	return a
}

func (a *Authenticator) loginEndpoint(sandbox bool) string {
	if len(a.loginURL) > 0 {
		return a.loginURL
	}
	if sandbox {
		return SandboxLoginURL
	}
	return ProductionLoginURL
}

// Authenticate runs one SOAP login exchange. On success the returned
// LoginResult carries the session id and server URL verbatim from the
// response. Failures come back as ErrTransport or ErrParse with a nil
// result; there is no retry.
func (a *Authenticator) Authenticate(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {

	endpoint := a.loginEndpoint(creds.Sandbox)

	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"endpoint":   endpoint,
		"username":   creds.Username,
	})

	envelope, err := buildLoginEnvelope(creds)
	if err != nil {
		log.WithError(err).Errorln("Failed to build SOAP login envelope")
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/xml; charset=UTF-8").
		SetHeader("SOAPAction", "login").
		SetBody(envelope).
		Post(endpoint)

	if err != nil {
		log.WithError(err).Errorln("SOAP login request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	log.WithFields(logrus.Fields{
		"status": resp.StatusCode(),
		"body":   truncate(string(resp.Body()), 500),
	}).Debugln("SOAP login response received")

	if resp.StatusCode() != http.StatusOK {
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
		}).Errorln("SOAP login failed with non-200 status")
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode())
	}

	result, err := ParseLoginResponse(resp.Body())
	if err != nil {
		log.WithError(err).Errorln("Failed to parse SOAP login response")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"session_id": truncate(result.SessionID, 20),
		"server_url": result.ServerURL,
	}).Infoln("SOAP login succeeded")

	return result, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
