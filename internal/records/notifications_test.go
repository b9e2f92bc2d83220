package records

import (
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNotification(t *testing.T) {
	s := newTestStore()

	n, err := s.AddNotification(&types.NotificationInput{
		Type:           types.NotificationWarning,
		Category:       "clinical",
		Title:          "Patient Referral",
		Message:        "Referral raised",
		Module:         types.ModuleNurseReferrals,
		ActionRequired: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.True(t, n.Unread)
	assert.Equal(t, testClock, n.Timestamp)
}

func TestAddNotification_RequiredFields(t *testing.T) {
	s := newTestStore()

	_, err := s.AddNotification(&types.NotificationInput{Message: "no title"})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
	assert.Empty(t, s.ListNotifications())
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore()

	n, err := s.AddNotification(&types.NotificationInput{
		Type:   types.NotificationInfo,
		Title:  "Admission Request",
		Module: types.ModuleNurseAdmissions,
	})
	require.NoError(t, err)

	require.NoError(t, s.MarkNotificationRead(n.ID))
	assert.False(t, s.ListNotifications()[0].Unread)

	// Acknowledging again is harmless
	require.NoError(t, s.MarkNotificationRead(n.ID))

	err = s.MarkNotificationRead("missing")
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeNotFound, types.ErrorTypeOf(err))
}

func TestAddActivityLog_AppendOnly(t *testing.T) {
	s := newTestStore()

	first, err := s.AddActivityLog("Registered patient GH-PT-00001", "records", "Front Desk", "user-plus")
	require.NoError(t, err)
	_, err = s.AddActivityLog("Scheduled appointment", "scheduling", "Front Desk", "calendar")
	require.NoError(t, err)

	log := s.ListActivityLog()
	require.Len(t, log, 2)
	assert.Equal(t, first.ID, log[0].ID)
	assert.Equal(t, testClock, log[0].Timestamp)
}

func TestAddActivityLog_RequiredFields(t *testing.T) {
	s := newTestStore()

	_, err := s.AddActivityLog("", "records", "Front Desk", "")
	require.Error(t, err)

	_, err = s.AddActivityLog("did something", "records", "", "")
	require.Error(t, err)
	assert.Empty(t, s.ListActivityLog())
}
