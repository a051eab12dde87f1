package dto

import (
	"atithi/internal/domains/whatsapp/model"
	"atithi/shared"
	"atithi/shared/constant"
	"atithi/shared/timezone"
)

type ContactResponse struct {
	Name        *string `json:"name"`
	Phone       string  `json:"phone"`
	SenderType  string  `json:"sender_type"`
	LastMessage string  `json:"last_message"`
	CreatedAt   string  `json:"created_at"`
}

type GetContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

func (res *GetContactsResponse) FromModels(contacts []model.Contact) {
	res.Contacts = make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		res.Contacts = append(res.Contacts, ContactResponse{
			Name:        contact.Name,
			Phone:       contact.Phone,
			SenderType:  contact.SenderType,
			LastMessage: contact.LastMessage,
			CreatedAt:   timezone.Format(contact.CreatedAt, constant.DateFormat),
		})
	}
}

type MessageResponse struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	SenderType string `json:"sender_type"`
	CreatedAt  string `json:"created_at"`
}

type GetThreadResponse struct {
	Messages []MessageResponse `json:"messages"`
}

func (res *GetThreadResponse) FromModels(messages []model.Message) {
	res.Messages = make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		res.Messages = append(res.Messages, MessageResponse{
			ID:         shared.FormatID(message.ID),
			Message:    message.Message,
			SenderType: message.SenderType,
			CreatedAt:  timezone.Format(message.CreatedAt, constant.DateFormat),
		})
	}
}
