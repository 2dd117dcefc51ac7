package integration_test

import (
	"net/http"
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func seedNotification(t *testing.T, ts *helpers.TestServer, userID, title string) *models.Notification {
	n := &models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeInfo,
		Title:   title,
		Message: "seeded",
	}
	if err := ts.DB.Create(n).Error; err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}
	return n
}

func TestNotifications_ListAndUnreadCount(t *testing.T) {
	ts := GetTestServer(t)
	user, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	seedNotification(t, ts, user.ID, "First notice")
	seedNotification(t, ts, user.ID, "Second notice")

	res, body := ts.SendRequest(t, "GET", "/api/v1/notifications", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "First notice")
	assert.Contains(t, body, "Second notice")

	res2, countBody := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", token, nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, countBody, `"count":2`)
}

func TestNotifications_MarkAsReadIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	user, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	n := seedNotification(t, ts, user.ID, "Readable notice")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+n.ID+"/read", token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var first models.Notification
	assert.NoError(t, ts.DB.First(&first, "id = ?", n.ID).Error)
	assert.True(t, first.IsRead)
	assert.NotNil(t, first.ReadAt)

	// Second read succeeds and read_at stays put.
	res2, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+n.ID+"/read", token, nil)
	assert.Equal(t, http.StatusNoContent, res2.StatusCode)

	var second models.Notification
	assert.NoError(t, ts.DB.First(&second, "id = ?", n.ID).Error)
	assert.Equal(t, first.ReadAt.Unix(), second.ReadAt.Unix())
}

func TestNotifications_CannotTouchForeign(t *testing.T) {
	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)
	n := seedNotification(t, ts, owner.ID, "Private notice")

	_, strangerToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+n.ID+"/read", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res2, _ := ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+n.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}

func TestNotifications_MarkAllAndDeleteAll(t *testing.T) {
	ts := GetTestServer(t)
	user, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	seedNotification(t, ts, user.ID, "Bulk one")
	seedNotification(t, ts, user.ID, "Bulk two")
	seedNotification(t, ts, user.ID, "Bulk three")

	bystander := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)
	kept := seedNotification(t, ts, bystander.ID, "Bystander notice")

	res, body := ts.SendRequest(t, "PUT", "/api/v1/notifications/read-all", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"marked":3`)

	res2, body2 := ts.SendRequest(t, "DELETE", "/api/v1/notifications", token, nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, body2, `"deleted":3`)

	// Only the caller's rows are gone.
	var remaining int64
	ts.DB.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&remaining)
	assert.Equal(t, int64(0), remaining)

	var survivor models.Notification
	assert.NoError(t, ts.DB.First(&survivor, "id = ?", kept.ID).Error)
	assert.False(t, survivor.IsRead)
}

func TestBroadcast_AdminOnlyAndReachesApproved(t *testing.T) {
	ts := GetTestServer(t)
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	approved := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)
	pending := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusPending)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/admin/notifications/broadcast", adminToken, map[string]interface{}{
		"type":    "info",
		"title":   "Maintenance window",
		"message": "The platform will be briefly unavailable on Sunday.",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var approvedCount, pendingCount int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", approved.ID, "Maintenance window").Count(&approvedCount)
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", pending.ID, "Maintenance window").Count(&pendingCount)

	assert.Equal(t, int64(1), approvedCount)
	assert.Equal(t, int64(0), pendingCount)

	// Non-admins cannot broadcast.
	_, userToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/admin/notifications/broadcast", userToken, map[string]interface{}{
		"type":    "info",
		"title":   "Nope",
		"message": "Should fail",
	})
	assert.Equal(t, http.StatusForbidden, res2.StatusCode)
}
