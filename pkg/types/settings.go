package types

import "time"

// Settings represents the single process-wide settings record. Each
// section is replaced wholesale on save; there is no merge within a
// section (every settings tab submits its whole sub-object).
type Settings struct {
	General       GeneralSettings      `json:"general"`
	Profile       ProfileSettings      `json:"profile"`
	Billing       BillingSettings      `json:"billing"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Preferences   PreferenceSettings   `json:"preferences"`
	LastUpdated   time.Time            `json:"last_updated"`
}

// GeneralSettings holds facility-wide settings
type GeneralSettings struct {
	HospitalName string `json:"hospital_name"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`
}

// ProfileSettings holds the signed-in user's profile
type ProfileSettings struct {
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// BillingSettings holds billing configuration
type BillingSettings struct {
	Currency          string  `json:"currency"`
	TaxRate           float64 `json:"tax_rate"`
	NHISEnabled       bool    `json:"nhis_enabled"`
	DefaultInvoiceDue int     `json:"default_invoice_due_days"`
}

// NotificationSettings holds notification preferences
type NotificationSettings struct {
	EmailEnabled    bool `json:"email_enabled"`
	SMSEnabled      bool `json:"sms_enabled"`
	DesktopEnabled  bool `json:"desktop_enabled"`
	CriticalOnly    bool `json:"critical_only"`
	DailyDigestHour int  `json:"daily_digest_hour"`
}

// SecuritySettings holds security preferences
type SecuritySettings struct {
	SessionTimeoutMinutes int  `json:"session_timeout_minutes"`
	RequirePINForDeletes  bool `json:"require_pin_for_deletes"`
	AuditTrailVisible     bool `json:"audit_trail_visible"`
}

// PreferenceSettings holds per-user display preferences
type PreferenceSettings struct {
	Theme            string `json:"theme"`
	DateFormat       string `json:"date_format"`
	RecordsPerPage   int    `json:"records_per_page"`
	LandingDashboard string `json:"landing_dashboard"`
}

// SettingsUpdates represents a partial settings save. Non-nil sections
// replace the stored section wholesale.
type SettingsUpdates struct {
	General       *GeneralSettings      `json:"general,omitempty"`
	Profile       *ProfileSettings      `json:"profile,omitempty"`
	Billing       *BillingSettings      `json:"billing,omitempty"`
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Security      *SecuritySettings     `json:"security,omitempty"`
	Preferences   *PreferenceSettings   `json:"preferences,omitempty"`
}

// DefaultSettings returns the settings record a fresh store starts with
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			HospitalName: "Godiya Hospital",
			Language:     "en",
			Timezone:     "Africa/Accra",
		},
		Billing: BillingSettings{
			Currency:          "GHS",
			NHISEnabled:       true,
			DefaultInvoiceDue: 30,
		},
		Notifications: NotificationSettings{
			EmailEnabled:   true,
			DesktopEnabled: true,
		},
		Security: SecuritySettings{
			SessionTimeoutMinutes: 30,
			AuditTrailVisible:     true,
		},
		Preferences: PreferenceSettings{
			Theme:          "light",
			DateFormat:     "2006-01-02",
			RecordsPerPage: 25,
		},
	}
}
