package salesforce

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/veltio/sfauth/internal/models"
)

// PartnerNamespace qualifies the login elements of the Partner WSDL
// schema in both the request and the response.
const PartnerNamespace = "urn:partner.soap.sforce.com"

const loginEnvelopeTemplate = `<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:urn="urn:partner.soap.sforce.com">
    <soapenv:Header/>
    <soapenv:Body>
        <urn:login>
            <urn:username>%s</urn:username>
            <urn:password>%s</urn:password>
        </urn:login>
    </soapenv:Body>
</soapenv:Envelope>`

// buildLoginEnvelope renders the SOAP 1.1 login request. Credential
// fields are XML-escaped so that characters like '<' or '&' cannot
// break the envelope; the password+token concatenation itself is kept
// verbatim.
func buildLoginEnvelope(creds models.Credentials) (string, error) {

	username, err := escapeXMLText(creds.Username)
	if err != nil {
		return "", fmt.Errorf("failed to escape username: %w", err)
	}

	secret, err := escapeXMLText(creds.PasswordWithToken())
	if err != nil {
		return "", fmt.Errorf("failed to escape password: %w", err)
	}

	return fmt.Sprintf(loginEnvelopeTemplate, username, secret), nil
}

func escapeXMLText(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseLoginResponse extracts sessionId and serverUrl from a SOAP login
// response body. Both elements must be qualified by the Partner
// namespace; they may appear anywhere in the document. The text contents
// are returned verbatim, with no trimming or URL validation. Malformed
// XML and missing elements both map to ErrParse.
func ParseLoginResponse(body []byte) (*models.LoginResult, error) {

	decoder := xml.NewDecoder(bytes.NewReader(body))

	var sessionID, serverURL *string

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space != PartnerNamespace {
			continue
		}

		switch start.Name.Local {
		case "sessionId":
			if sessionID != nil {
				continue
			}
			var text string
			if err := decoder.DecodeElement(&text, &start); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			sessionID = &text
		case "serverUrl":
			if serverURL != nil {
				continue
			}
			var text string
			if err := decoder.DecodeElement(&text, &start); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			serverURL = &text
		}
	}

	if sessionID == nil || serverURL == nil {
		return nil, fmt.Errorf("%w: missing sessionId or serverUrl element", ErrParse)
	}

	return models.NewLoginResult(*sessionID, *serverURL), nil
}
