package types

import "time"

// NotificationType represents notification severity values
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Dashboard modules notifications are routed to
const (
	ModuleNurseAdmissions = "nurse-admissions"
	ModuleNurseReferrals  = "nurse-referrals"
	ModuleNurseSurgery    = "nurse-surgery"
)

// Notification represents a cross-role notification. Notifications are
// created only as workflow side effects; the sole permitted mutation
// afterwards is the unread flag.
type Notification struct {
	ID             string           `json:"id"`
	Type           NotificationType `json:"type"`
	Category       string           `json:"category"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Message        string           `json:"message"`
	Module         string           `json:"module"`
	Timestamp      time.Time        `json:"timestamp"`
	Unread         bool             `json:"unread"`
	ActionRequired bool             `json:"action_required"`
}

// NotificationInput carries the fields a workflow action supplies when
// raising a notification.
type NotificationInput struct {
	Type           NotificationType `json:"type"`
	Category       string           `json:"category"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Message        string           `json:"message"`
	Module         string           `json:"module"`
	ActionRequired bool             `json:"action_required"`
}

// ActivityLogEntry represents an append-only audit trail entry
type ActivityLogEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Icon      string    `json:"icon,omitempty"`
}
