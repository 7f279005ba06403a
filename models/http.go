package models

// CredentialsRequest is the body of sign-up and sign-in requests.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordUpdateRequest changes the password of the authenticated user.
type PasswordUpdateRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PasswordResetRequest asks for a password reset token to be mailed.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest sets a new password using a reset token.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// VerifyEmailRequest confirms an email address with a one-time token.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// InsertNotesRequest carries notes that must be stored verbatim, with their
// original IDs and timestamps. It is used by merge restore.
type InsertNotesRequest struct {
	Notes []Note `json:"notes"`
}

// InsertNotesResponse reports how many notes were actually inserted.
type InsertNotesResponse struct {
	Inserted int `json:"inserted"`
}

// CreateBackupRequest is the body of a backup creation request.
type CreateBackupRequest struct {
	BackupName string        `json:"backup_name"`
	BackupType BackupType    `json:"backup_type"`
	Payload    BackupPayload `json:"backup_data"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
