package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, eventType enums.EventType, description string, payload types.JSONMap) error
}

// PostMessageInput is the payload for adding a message to a request's thread.
type PostMessageInput struct {
	RequestID   uuid.UUID
	Content     string
	Attachments types.StringList
}

// Service manages the customer/operator thread attached to a request.
type Service interface {
	Post(ctx context.Context, actor auth.Actor, input PostMessageInput) (*models.Message, error)
	List(ctx context.Context, actor auth.Actor, requestID uuid.UUID) ([]models.Message, error)
}

type service struct {
	repo   Repository
	guard  requests.Authorizer
	tx     txRunner
	events eventRecorder
}

// NewService builds the messaging service.
func NewService(repo Repository, guard requests.Authorizer, tx txRunner, events eventRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("messages repository required")
	}
	if guard == nil {
		return nil, fmt.Errorf("request authorizer required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event recorder required")
	}
	return &service{repo: repo, guard: guard, tx: tx, events: events}, nil
}

func (s *service) Post(ctx context.Context, actor auth.Actor, input PostMessageInput) (*models.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message content required")
	}

	if _, err := s.guard.Authorize(ctx, input.RequestID, actor); err != nil {
		return nil, err
	}

	senderType := enums.SenderTypeCustomer
	if actor.IsOperator() {
		senderType = enums.SenderTypeOperator
	}
	message := &models.Message{
		RequestID:   input.RequestID,
		SenderID:    actor.ID,
		SenderName:  actor.DisplayName,
		SenderType:  senderType,
		Content:     content,
		Attachments: input.Attachments,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, message); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist message")
		}
		return s.events.Record(ctx, tx, input.RequestID, enums.EventMessageSent, "message posted", types.JSONMap{
			"messageId":   message.ID,
			"senderType":  senderType,
			"attachments": len(input.Attachments),
		})
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// List returns the thread oldest-first. Reading marks the other party's
// unread messages read; the caller's own unread messages are left alone.
func (s *service) List(ctx context.Context, actor auth.Actor, requestID uuid.UUID) ([]models.Message, error) {
	if _, err := s.guard.Authorize(ctx, requestID, actor); err != nil {
		return nil, err
	}

	var thread []models.Message
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.MarkReadForOthers(ctx, requestID, actor.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark messages read")
		}
		rows, err := repo.ListByRequest(ctx, requestID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load thread")
		}
		thread = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}
