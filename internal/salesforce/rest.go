package salesforce

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/veltio/sfauth/internal/models"
)

const restAPIVersion = "v60.0"

// RestBaseURL derives the REST API base from a SOAP server URL by taking
// everything before "/services/" and appending the versioned data path.
//
//	https://acme.my.salesforce.com/services/Soap/u/60.0/00Dxx
//	  -> https://acme.my.salesforce.com/services/data/v60.0
func RestBaseURL(serverURL string) string {
	base, _, _ := strings.Cut(serverURL, "/services/")
	return base + "/services/data/" + restAPIVersion
}

// ProbeRest issues one diagnostic GET against the REST version listing
// using the session as a bearer token. It is a no-op without a session
// and never fails the caller; outcomes are logged only.
func (a *Authenticator) ProbeRest(ctx context.Context, sessionID string, serverURL string) {

	if len(sessionID) == 0 || len(serverURL) == 0 {
		logrus.Warnln("No valid session to probe REST API with")
		return
	}

	restBase := RestBaseURL(serverURL)

	log := logrus.WithFields(logrus.Fields{
		"url": restBase,
	})

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(sessionID).
		SetHeader("Content-Type", "application/json").
		Get(restBase + "/")

	if err != nil {
		log.WithError(err).Warnln("REST probe request failed")
		return
	}

	if resp.StatusCode() != http.StatusOK {
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"body":   truncate(string(resp.Body()), 500),
		}).Warnln("REST probe rejected")
		return
	}

	var versions []models.APIVersion
	if err := json.Unmarshal(resp.Body(), &versions); err != nil {
		log.WithError(err).Warnln("REST probe returned an unparseable body")
		return
	}

	log.WithFields(logrus.Fields{
		"versions": len(versions),
	}).Infoln("REST probe succeeded")
}
