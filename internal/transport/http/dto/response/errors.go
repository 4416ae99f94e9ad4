package response

const (
	CodeInvalidRequest        = "invalid_request"
	CodeValidationFailed      = "validation_failed"
	CodeNotFound              = "not_found"
	CodeMalformedBackup       = "malformed_backup"
	CodeMissingCredentials    = "missing_credentials"
	CodeAuthorizationRequired = "authorization_required"
	CodeNotSignedIn           = "not_signed_in"
	CodeConnectionFailed      = "connection_failed"
	CodeUploadFailed          = "upload_failed"
	CodeInvalidState          = "invalid_oauth_state"
	CodeInternal              = "internal_error"
)

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   CodeInvalidRequest,
		Details: "Invalid request format",
	}

	ErrInvalidOAuthState = ErrorResponse{
		Status:  "error",
		Error:   CodeInvalidState,
		Details: "OAuth state does not match the session",
	}
)
