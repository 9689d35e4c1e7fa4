package adapter

import (
	"net/http"

	"github.com/MKhiriev/go-serble-keeper/internal/app"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-resty/resty/v2"
)

// classifier picks the flag for a rejected response. Every endpoint owns
// exactly one classifier; body is the response text with JSON string quoting
// removed.
type classifier func(status int, body string) models.ErrorFlag

// check returns nil for a 2xx response. Otherwise it builds a
// [models.KindVerifierRejected] error carrying the endpoint flag and wrapping
// the status sentinel.
func check(resp *resty.Response, op string, classify classifier) error {
	if resp.IsSuccess() {
		return nil
	}

	return &models.Error{
		Kind:    models.KindVerifierRejected,
		Flag:    classify(resp.StatusCode(), plainText(resp.Body())),
		Status:  resp.StatusCode(),
		Message: op,
		Err:     mapHTTPError(resp),
	}
}

// networkError tags a transport failure. Nothing reached the server, or its
// answer never arrived.
func networkError(op string, err error) error {
	return &models.Error{
		Kind:    models.KindNetwork,
		Flag:    models.FlagNetwork,
		Message: op,
		Err:     err,
	}
}

// payloadError tags a 2xx answer whose body could not be normalized.
func payloadError(op string, err error) error {
	return &models.Error{
		Kind:    models.KindUnknown,
		Flag:    models.FlagUnknown,
		Message: op,
		Err:     err,
	}
}

func classifyDefault(status int, _ string) models.ErrorFlag {
	switch status {
	case http.StatusUnauthorized:
		return models.FlagUnauthorized
	case http.StatusNotFound:
		return models.FlagNotFound
	default:
		return models.FlagUnknown
	}
}

func classifyLogin(status int, body string) models.ErrorFlag {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.FlagInvalidCredentials
	default:
		return classifyDefault(status, body)
	}
}

func classifySubmitTOTP(status int, body string) models.ErrorFlag {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return models.FlagInvalidCredentials
	default:
		return classifyDefault(status, body)
	}
}

func classifyGetAccount(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyEditAccount(status int, body string) models.ErrorFlag {
	if status != http.StatusBadRequest {
		return classifyDefault(status, body)
	}

	switch body {
	case app.MsgUsernameTaken:
		return models.FlagNameTaken
	case app.MsgInvalidEmail:
		return models.FlagEmailInvalid
	case app.MsgFieldDoesNotExist:
		return models.FlagBadField
	default:
		return models.FlagUnknown
	}
}

func classifyAuthorizeApp(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest {
		return models.FlagBadApp
	}
	return classifyDefault(status, body)
}

func classifyDeauthorizeApp(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyPublicApp(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyPaymentPortal(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest && body == app.MsgNotCustomer {
		return models.FlagNotCustomer
	}
	return classifyDefault(status, body)
}

func classifyCheckout(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest {
		return models.FlagBadField
	}
	return classifyDefault(status, body)
}

func classifyListOAuthApps(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

// classifyGetOAuthApp reports an app owned by someone else as bad-app.
func classifyGetOAuthApp(status int, body string) models.ErrorFlag {
	if status == http.StatusForbidden {
		return models.FlagBadApp
	}
	return classifyDefault(status, body)
}

func classifyCreateOAuthApp(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest {
		return models.FlagBadField
	}
	return classifyDefault(status, body)
}

func classifyEditOAuthApp(status int, body string) models.ErrorFlag {
	switch status {
	case http.StatusBadRequest:
		return models.FlagBadField
	case http.StatusForbidden:
		return models.FlagBadApp
	default:
		return classifyDefault(status, body)
	}
}

func classifyDeleteOAuthApp(status int, body string) models.ErrorFlag {
	if status == http.StatusForbidden {
		return models.FlagBadApp
	}
	return classifyDefault(status, body)
}

func classifyTOTPQRCode(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyCheckTOTP(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest {
		return models.FlagInvalidCredentials
	}
	return classifyDefault(status, body)
}

func classifyNotes(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyPasskeyOptions(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}

func classifyRegisterPasskey(status int, body string) models.ErrorFlag {
	if status == http.StatusBadRequest {
		return models.FlagRejected
	}
	return classifyDefault(status, body)
}

func classifyVerifyAssertion(status int, body string) models.ErrorFlag {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return models.FlagRejected
	default:
		return classifyDefault(status, body)
	}
}

func classifyPasskeyManagement(status int, body string) models.ErrorFlag {
	return classifyDefault(status, body)
}
