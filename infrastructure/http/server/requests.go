package server

import (
	"chat-core/projection"

	"github.com/google/uuid"
)

type sendMessageRequest struct {
	Text         string      `json:"text" validate:"max=4000"`
	ImageURLs    []string    `json:"image_urls" validate:"omitempty,dive,url"`
	ContentItems []uuid.UUID `json:"content_items" validate:"omitempty,dive,required"`
	RepliedTo    *uuid.UUID  `json:"replied_to"`
}

type editTextRequest struct {
	Text string `json:"text" validate:"max=4000"`
}

type appendImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type appendContentItemRequest struct {
	ContentItemID uuid.UUID `json:"content_item_id" validate:"required"`
}

type createConnectionRequest struct {
	OtherID uuid.UUID `json:"other_id" validate:"required"`
}

type connectionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=blocked muted pending connected favourite"`
}

type createGroupRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description string      `json:"description" validate:"max=500"`
	Members     []uuid.UUID `json:"members" validate:"omitempty,dive,required"`
}

type addMemberRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

type changedResponse struct {
	Changed bool `json:"changed"`
}

type accountResponse struct {
	ID                    uuid.UUID   `json:"id"`
	PinnedConversationIDs []uuid.UUID `json:"pinned_conversation_ids"`
	BlockedConnectionIDs  []uuid.UUID `json:"blocked_connection_ids"`
}

type connectionResponse struct {
	ID       uuid.UUID `json:"id"`
	Account1 uuid.UUID `json:"account1"`
	Account2 uuid.UUID `json:"account2"`
	Status   string    `json:"status"`
}

type groupResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Members     []uuid.UUID `json:"members"`
}

type conversationResponse struct {
	ID           uuid.UUID                `json:"id"`
	Type         string                   `json:"type"`
	Participants []uuid.UUID              `json:"participants"`
	Messages     []projection.MessageView `json:"messages"`
}
