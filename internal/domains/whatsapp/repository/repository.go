package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/whatsapp/model"
	"atithi/shared/constant"
	"atithi/shared/logger"
)

const contactsQuery = `
SELECT DISTINCT ON (fromnumber)
    name,
    fromnumber AS phone,
    sender_type,
    message AS last_message,
    created_at
FROM whatsapp_messages
WHERE sender_type = :sender_type
ORDER BY fromnumber, created_at DESC`

const threadQuery = `
SELECT id, name, fromnumber, tonumber, message, sender_type, created_at
FROM whatsapp_messages
WHERE fromnumber = :phone OR tonumber = :phone
ORDER BY created_at ASC`

type Whatsapp interface {
	GetContacts(ctx context.Context) ([]model.Contact, error)
	GetThread(ctx context.Context, phone string) ([]model.Message, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Whatsapp {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetContacts(ctx context.Context) (contacts []model.Contact, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".whatsapp.GetContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, contactsQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, contactsQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return contacts, fmt.Errorf("failed to prepare whatsapp contacts query: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &contacts, map[string]any{"sender_type": model.SenderTypeUser})
	if err != nil {
		logger.ErrorWithStack(err)

		return contacts, fmt.Errorf("failed to get whatsapp contacts: %w", err)
	}

	return contacts, nil
}

func (repo *repositoryImpl) GetThread(ctx context.Context, phone string) (messages []model.Message, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".whatsapp.GetThread")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, threadQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, threadQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return messages, fmt.Errorf("failed to prepare whatsapp thread query: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &messages, map[string]any{"phone": phone})
	if err != nil {
		logger.ErrorWithStack(err)

		return messages, fmt.Errorf("failed to get whatsapp thread: %w", err)
	}

	return messages, nil
}
