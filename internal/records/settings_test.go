package records

import (
	"encoding/json"
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings_SectionReplacedWholesale(t *testing.T) {
	s := newTestStore()

	// The stored billing section starts with defaults
	assert.Equal(t, "GHS", s.Settings().Billing.Currency)

	// A section save replaces the whole section object; fields the
	// caller left zero do not survive from the old section
	updated := s.UpdateSettings(&types.SettingsUpdates{
		Billing: &types.BillingSettings{TaxRate: 12.5},
	})

	assert.Equal(t, 12.5, updated.Billing.TaxRate)
	assert.Empty(t, updated.Billing.Currency)
	assert.False(t, updated.Billing.NHISEnabled)
	assert.Equal(t, testClock, updated.LastUpdated)

	// Untouched sections keep their values
	assert.Equal(t, "Godiya Hospital", updated.General.HospitalName)
}

func TestUpdateSettings_MultipleSections(t *testing.T) {
	s := newTestStore()

	updated := s.UpdateSettings(&types.SettingsUpdates{
		General: &types.GeneralSettings{HospitalName: "Godiya Annex", Language: "en"},
		Preferences: &types.PreferenceSettings{
			Theme:          "dark",
			RecordsPerPage: 50,
		},
	})

	assert.Equal(t, "Godiya Annex", updated.General.HospitalName)
	assert.Equal(t, "dark", updated.Preferences.Theme)
}

func TestSettingsSnapshot_Serializable(t *testing.T) {
	s := newTestStore()
	s.UpdateSettings(&types.SettingsUpdates{
		Profile: &types.ProfileSettings{DisplayName: "Dr. Danquah", Role: "doctor"},
	})

	snapshot := s.SettingsSnapshot()
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var decoded types.Settings
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Dr. Danquah", decoded.Profile.DisplayName)
}

func TestSettings_ReturnsCopy(t *testing.T) {
	s := newTestStore()

	got := s.Settings()
	got.General.HospitalName = "tampered"

	assert.Equal(t, "Godiya Hospital", s.Settings().General.HospitalName)
}
