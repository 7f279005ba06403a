package models

import "time"

// UserPreferences holds per-user settings. There is exactly one record per
// user; it is created lazily on the first session if absent.
type UserPreferences struct {
	// ID equals the owner's user ID.
	ID int64 `json:"id"`

	// BackupEnabled turns the daily automatic backup on or off.
	BackupEnabled bool `json:"backup_enabled"`

	// LastBackupDate is the marker advanced after every successful automatic
	// or manual backup. Nil when no backup was made yet.
	LastBackupDate *time.Time `json:"last_backup_date,omitempty"`
}

// DefaultPreferences returns the preferences used for a freshly created record.
func DefaultPreferences(userID int64) UserPreferences {
	return UserPreferences{ID: userID, BackupEnabled: true}
}

// PreferencesUpdate is a partial update of [UserPreferences].
type PreferencesUpdate struct {
	BackupEnabled  *bool      `json:"backup_enabled,omitempty"`
	LastBackupDate *time.Time `json:"last_backup_date,omitempty"`
}
