package repositories

import (
	"errors"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// ConversationSummary is one row of the conversation list: the peer, the
// most recent message between the two users and how many of the peer's
// messages are still unread.
type ConversationSummary struct {
	PeerID      string
	Peer        *models.User
	LastMessage *models.Message
	UnreadCount int64
}

type MessageRepository interface {
	Create(message *models.Message) error
	ListConversations(userID string) ([]ConversationSummary, error)
	ListThread(userID, peerID string, page, pageSize int) ([]models.Message, int64, error)
	MarkThreadRead(userID, peerID string) (int64, error)
	GetUnreadCount(userID string) (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListConversations collects the distinct peers the user has exchanged
// messages with, newest conversation first. DISTINCT ON keeps one row per
// peer without a second aggregate pass.
func (r *MessageRepositoryImpl) ListConversations(userID string) ([]ConversationSummary, error) {
	var lastMessages []models.Message
	err := r.db.Raw(`
		SELECT DISTINCT ON (peer_id) *
		FROM (
			SELECT *,
			       CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS peer_id
			FROM messages
			WHERE sender_id = ? OR receiver_id = ?
		) m
		ORDER BY peer_id, created_at DESC`,
		userID, userID, userID,
	).Scan(&lastMessages).Error
	if err != nil {
		return nil, err
	}
	if len(lastMessages) == 0 {
		return []ConversationSummary{}, nil
	}

	peerIDs := make([]string, 0, len(lastMessages))
	for i := range lastMessages {
		msg := lastMessages[i]
		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.ReceiverID
		}
		peerIDs = append(peerIDs, peerID)
	}

	var peers []models.User
	if err := r.db.Where("id IN ?", peerIDs).Find(&peers).Error; err != nil {
		return nil, err
	}
	peersByID := make(map[string]*models.User, len(peers))
	for i := range peers {
		peersByID[peers[i].ID] = &peers[i]
	}

	type unreadRow struct {
		SenderID string
		Count    int64
	}
	var unread []unreadRow
	err = r.db.Model(&models.Message{}).
		Select("sender_id, COUNT(*) as count").
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Group("sender_id").
		Scan(&unread).Error
	if err != nil {
		return nil, err
	}
	unreadByPeer := make(map[string]int64, len(unread))
	for _, row := range unread {
		unreadByPeer[row.SenderID] = row.Count
	}

	summaries := make([]ConversationSummary, 0, len(lastMessages))
	for i := range lastMessages {
		msg := lastMessages[i]
		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.ReceiverID
		}
		summaries = append(summaries, ConversationSummary{
			PeerID:      peerID,
			Peer:        peersByID[peerID],
			LastMessage: &lastMessages[i],
			UnreadCount: unreadByPeer[peerID],
		})
	}

	// Newest conversation first.
	for i := 0; i < len(summaries); i++ {
		for j := i + 1; j < len(summaries); j++ {
			if summaries[j].LastMessage.CreatedAt.After(summaries[i].LastMessage.CreatedAt) {
				summaries[i], summaries[j] = summaries[j], summaries[i]
			}
		}
	}

	return summaries, nil
}

func (r *MessageRepositoryImpl) ListThread(userID, peerID string, page, pageSize int) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Model(&models.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&messages).Error
	return messages, total, err
}

// MarkThreadRead marks every unread message from the peer as read.
func (r *MessageRepositoryImpl) MarkThreadRead(userID, peerID string) (int64, error) {
	result := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, peerID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *MessageRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
