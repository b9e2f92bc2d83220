package records

import (
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/google/uuid"
)

// AddNotification appends a notification. Notifications originate from
// workflow actions, never from dashboard forms; beyond required-field
// presence there is nothing to validate and nothing is derived.
func (s *Store) AddNotification(input *types.NotificationInput) (*types.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Title == "" || input.Module == "" {
		monitoring.RecordStoreMutation("notification", "add", "error")
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"notification title and module are required", nil)
	}

	n := &types.Notification{
		ID:             uuid.New().String(),
		Type:           input.Type,
		Category:       input.Category,
		Title:          input.Title,
		Description:    input.Description,
		Message:        input.Message,
		Module:         input.Module,
		Timestamp:      s.now(),
		Unread:         true,
		ActionRequired: input.ActionRequired,
	}
	s.notifications = append(s.notifications, n)

	monitoring.RecordStoreMutation("notification", "add", "ok")
	monitoring.SetUnreadNotifications(s.countUnreadLocked())

	c := *n
	return &c, nil
}

// MarkNotificationRead acknowledges a notification. Acknowledging one
// that is already read is harmless.
func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == id {
			n.Unread = false
			monitoring.RecordStoreMutation("notification", "mark_read", "ok")
			monitoring.SetUnreadNotifications(s.countUnreadLocked())
			return nil
		}
	}

	monitoring.RecordStoreMutation("notification", "mark_read", "error")
	return types.NewNotFoundError(types.ErrCodeNotFound, "notification not found: "+id)
}

// AddActivityLog appends an audit trail entry. The log is append-only;
// entries are never updated or deleted.
func (s *Store) AddActivityLog(action, module, user, icon string) (*types.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if action == "" || user == "" {
		monitoring.RecordStoreMutation("activity_log", "add", "error")
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"activity log action and user are required", nil)
	}

	entry := s.appendActivityLocked(action, module, user, icon)
	monitoring.RecordStoreMutation("activity_log", "add", "ok")

	c := *entry
	return &c, nil
}

// appendActivityLocked appends an audit entry. Callers must hold the
// store lock.
func (s *Store) appendActivityLocked(action, module, user, icon string) *types.ActivityLogEntry {
	entry := &types.ActivityLogEntry{
		ID:        uuid.New().String(),
		Action:    action,
		Module:    module,
		User:      user,
		Timestamp: s.now(),
		Icon:      icon,
	}
	s.activityLog = append(s.activityLog, entry)
	return entry
}

func (s *Store) countUnreadLocked() int {
	unread := 0
	for _, n := range s.notifications {
		if n.Unread {
			unread++
		}
	}
	return unread
}
