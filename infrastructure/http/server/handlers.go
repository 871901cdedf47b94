package server

import (
	"chat-core/auth"
	"chat-core/domain/account"
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/errors"
	"chat-core/projection"
	"chat-core/services"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Handlers are thin: they resolve the caller and path ids, decode the body
// and hand over to the services.
type Handlers struct {
	log            *slog.Logger
	chat           *services.ChatService
	conversations  *services.ConversationService
	accounts       *services.AccountService
	contentSignals chan<- event.ContentDeleted
	clock          func() time.Time
}

func NewHandlers(
	log *slog.Logger,
	chat *services.ChatService,
	conversations *services.ConversationService,
	accounts *services.AccountService,
	contentSignals chan<- event.ContentDeleted,
) *Handlers {
	return &Handlers{
		log:            log,
		chat:           chat,
		conversations:  conversations,
		accounts:       accounts,
		contentSignals: contentSignals,
		clock:          time.Now,
	}
}

func caller(r *http.Request) (uuid.UUID, error) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return userID, nil
}

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	sender, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body sendMessageRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}

	message, err := h.chat.SendMessage(r.Context(), chat.SendMessageCommand{
		Conversation: conversationID,
		SenderID:     sender,
		Text:         body.Text,
		ContentItems: body.ContentItems,
		ImageURLs:    body.ImageURLs,
		RepliedTo:    body.RepliedTo,
	})
	h.writeMessage(w, http.StatusCreated, message, err)
}

func (h *Handlers) EditText(w http.ResponseWriter, r *http.Request) {
	editor, conversationID, messageID, err := messageTarget(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body editTextRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	message, err := h.chat.EditText(r.Context(), chat.EditTextCommand{
		Conversation: conversationID, MessageID: messageID, EditorID: editor, Text: body.Text,
	})
	h.writeMessage(w, http.StatusOK, message, err)
}

func (h *Handlers) AppendImage(w http.ResponseWriter, r *http.Request) {
	editor, conversationID, messageID, err := messageTarget(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body appendImageRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	message, err := h.chat.AppendImage(r.Context(), chat.AppendImageCommand{
		Conversation: conversationID, MessageID: messageID, EditorID: editor, URL: body.URL,
	})
	h.writeMessage(w, http.StatusOK, message, err)
}

func (h *Handlers) AppendContentItem(w http.ResponseWriter, r *http.Request) {
	editor, conversationID, messageID, err := messageTarget(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body appendContentItemRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	message, err := h.chat.AppendContentItem(r.Context(), chat.AppendContentItemCommand{
		Conversation: conversationID, MessageID: messageID, EditorID: editor, ContentItem: body.ContentItemID,
	})
	h.writeMessage(w, http.StatusOK, message, err)
}

func (h *Handlers) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	reader, conversationID, messageID, err := messageTarget(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	changed, err := h.chat.MarkAsRead(r.Context(), chat.MarkAsReadCommand{
		Conversation: conversationID, MessageID: messageID, ReaderID: reader,
	})
	h.writeChanged(w, changed, err)
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	requester, conversationID, messageID, err := messageTarget(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	if err := h.chat.DeleteMessage(r.Context(), chat.DeleteMessageCommand{
		Conversation: conversationID, MessageID: messageID, RequesterID: requester,
	}); err != nil {
		writeError(h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	viewer, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	views, err := h.conversations.ListForUser(r.Context(), viewer)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) GetConversation(w http.ResponseWriter, r *http.Request) {
	viewer, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conversation, err := h.conversations.Get(r.Context(), viewer, conversationID)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	h.writeConversation(w, http.StatusOK, conversation, nil)
}

func (h *Handlers) CreateConnection(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body createConnectionRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	connection, err := h.conversations.CreateConnection(r.Context(), requester, body.OtherID)
	h.writeConnection(w, http.StatusCreated, connection, err)
}

func (h *Handlers) SetConnectionStatus(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	connectionID, err := pathID(r, "connectionID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body connectionStatusRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	status, err := chat.ParseConnectionStatus(body.Status)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	connection, err := h.conversations.SetConnectionStatus(r.Context(), requester, connectionID, status)
	h.writeConnection(w, http.StatusOK, connection, err)
}

func (h *Handlers) CreateConnectionConversation(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	connectionID, err := pathID(r, "connectionID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conversation, err := h.conversations.CreateConnectionConversation(r.Context(), requester, connectionID)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	h.writeConversation(w, http.StatusCreated, conversation, nil)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	creator, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body createGroupRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	group, err := h.conversations.CreateGroup(r.Context(), creator, body.Name, body.Description, body.Members)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(group))
}

func (h *Handlers) CreateGroupConversation(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	groupID, err := pathID(r, "groupID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conversation, err := h.conversations.CreateGroupConversation(r.Context(), requester, groupID)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	h.writeConversation(w, http.StatusCreated, conversation, nil)
}

func (h *Handlers) AddGroupMember(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	groupID, err := pathID(r, "groupID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	var body addMemberRequest
	if err := decode(r, &body); err != nil {
		writeError(h.log, w, err)
		return
	}
	changed, err := h.conversations.AddGroupMember(r.Context(), requester, groupID, body.AccountID)
	h.writeChanged(w, changed, err)
}

func (h *Handlers) RemoveGroupMember(w http.ResponseWriter, r *http.Request) {
	requester, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	groupID, err := pathID(r, "groupID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	accountID, err := pathID(r, "accountID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	changed, err := h.conversations.RemoveGroupMember(r.Context(), requester, groupID, accountID)
	h.writeChanged(w, changed, err)
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	userAccount, err := h.accounts.Get(r.Context(), userID)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(userAccount))
}

func (h *Handlers) Pin(w http.ResponseWriter, r *http.Request) {
	h.accountChange(w, r, "conversationID", h.accounts.PinConversation)
}

func (h *Handlers) Unpin(w http.ResponseWriter, r *http.Request) {
	h.accountChange(w, r, "conversationID", h.accounts.UnpinConversation)
}

func (h *Handlers) Block(w http.ResponseWriter, r *http.Request) {
	h.accountChange(w, r, "connectionID", h.accounts.BlockConnection)
}

func (h *Handlers) Unblock(w http.ResponseWriter, r *http.Request) {
	h.accountChange(w, r, "connectionID", h.accounts.UnblockConnection)
}

// ContentDeleted queues a reconciliation for the content removal worker.
// A full queue is reported instead of holding the request.
func (h *Handlers) ContentDeleted(w http.ResponseWriter, r *http.Request) {
	contentItemID, err := pathID(r, "contentItemID")
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	select {
	case h.contentSignals <- event.ContentDeleted{ContentItemID: contentItemID, At: h.clock().UTC()}:
		w.WriteHeader(http.StatusAccepted)
	default:
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "reconciliation queue is full"})
	}
}

func (h *Handlers) accountChange(
	w http.ResponseWriter, r *http.Request, param string,
	change func(ctx context.Context, userID, id uuid.UUID) (bool, error),
) {
	userID, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	id, err := pathID(r, param)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	changed, err := change(r.Context(), userID, id)
	h.writeChanged(w, changed, err)
}

func messageTarget(r *http.Request) (requester, conversationID, messageID uuid.UUID, err error) {
	if requester, err = caller(r); err != nil {
		return
	}
	if conversationID, err = pathID(r, "conversationID"); err != nil {
		return
	}
	messageID, err = pathID(r, "messageID")
	return
}

func (h *Handlers) writeMessage(w http.ResponseWriter, status int, message chat.Message, err error) {
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	view, err := projection.ToMessageView(message)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, status, view)
}

func (h *Handlers) writeConversation(w http.ResponseWriter, status int, conversation chat.Conversation, err error) {
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	views, err := projection.ToMessageViews(conversation.Messages())
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, status, conversationResponse{
		ID:           conversation.ID(),
		Type:         string(conversation.Type()),
		Participants: conversation.Participants(),
		Messages:     views,
	})
}

func (h *Handlers) writeConnection(w http.ResponseWriter, status int, connection *chat.Connection, err error) {
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, status, connectionResponse{
		ID:       connection.ID,
		Account1: connection.Account1,
		Account2: connection.Account2,
		Status:   connection.Status.String(),
	})
}

func (h *Handlers) writeChanged(w http.ResponseWriter, changed bool, err error) {
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
}

func toGroupResponse(g *chat.Group) groupResponse {
	return groupResponse{ID: g.ID, Name: g.Name, Description: g.Description, Members: g.Members()}
}

func toAccountResponse(a *account.UserAccount) accountResponse {
	return accountResponse{
		ID:                    a.ID,
		PinnedConversationIDs: nonNil(a.PinnedConversationIDs()),
		BlockedConnectionIDs:  nonNil(a.BlockedConnectionIDs()),
	}
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
