package records

import (
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// Settings returns a copy of the process-wide settings record
func (s *Store) Settings() types.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// UpdateSettings applies a settings save. Each supplied section
// replaces the stored section wholesale; sections absent from the
// update are untouched. LastUpdated is stamped on every save.
func (s *Store) UpdateSettings(updates *types.SettingsUpdates) types.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if updates.General != nil {
		s.settings.General = *updates.General
	}
	if updates.Profile != nil {
		s.settings.Profile = *updates.Profile
	}
	if updates.Billing != nil {
		s.settings.Billing = *updates.Billing
	}
	if updates.Notifications != nil {
		s.settings.Notifications = *updates.Notifications
	}
	if updates.Security != nil {
		s.settings.Security = *updates.Security
	}
	if updates.Preferences != nil {
		s.settings.Preferences = *updates.Preferences
	}
	s.settings.LastUpdated = s.now()

	monitoring.RecordStoreMutation("settings", "update", "ok")
	return s.settings
}

// SettingsSnapshot returns a serializable snapshot of the settings
// record for export. File formatting is the presentation layer's
// concern; the snapshot is just the data.
func (s *Store) SettingsSnapshot() types.Settings {
	return s.Settings()
}
