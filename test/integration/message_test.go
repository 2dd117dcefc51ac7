package integration_test

import (
	"net/http"
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestSendMessage_AndThread(t *testing.T) {
	ts := GetTestServer(t)
	sender, senderToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	receiver, receiverToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/messages", senderToken, map[string]interface{}{
		"receiver_id": receiver.ID,
		"content":     "Hello, I am interested in the role.",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Receiver sees the thread; reading marks it as read.
	res2, body := ts.SendRequest(t, "GET", "/api/v1/messages/"+sender.ID, receiverToken, nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, body, "interested in the role")

	res3, countBody := ts.SendRequest(t, "GET", "/api/v1/messages/unread-count", receiverToken, nil)
	assert.Equal(t, http.StatusOK, res3.StatusCode)
	assert.Contains(t, countBody, `"count":0`)
}

func TestSendMessage_ToSelfRejected(t *testing.T) {
	ts := GetTestServer(t)
	user, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/messages", token, map[string]interface{}{
		"receiver_id": user.ID,
		"content":     "Talking to myself",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestConversations_ListsPeersWithUnread(t *testing.T) {
	ts := GetTestServer(t)
	user, userToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	peerA, peerAToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	peerB, peerBToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	ts.SendRequest(t, "POST", "/api/v1/messages", peerAToken, map[string]interface{}{
		"receiver_id": user.ID,
		"content":     "Message from peer A",
	})
	ts.SendRequest(t, "POST", "/api/v1/messages", peerBToken, map[string]interface{}{
		"receiver_id": user.ID,
		"content":     "Message from peer B",
	})

	res, body := ts.SendRequest(t, "GET", "/api/v1/messages/conversations", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, peerA.ID)
	assert.Contains(t, body, peerB.ID)
	assert.Contains(t, body, `"unread_count":1`)
}

func TestSendMessage_NotifiesReceiver(t *testing.T) {
	ts := GetTestServer(t)
	_, senderToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	receiver := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)

	ts.SendRequest(t, "POST", "/api/v1/messages", senderToken, map[string]interface{}{
		"receiver_id": receiver.ID,
		"content":     "Ping",
	})

	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", receiver.ID, "New message").
		Count(&count)
	assert.Equal(t, int64(1), count)
}
