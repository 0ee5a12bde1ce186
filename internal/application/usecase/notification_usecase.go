package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// NotificationUseCase envío de notificaciones push.
type NotificationUseCase struct {
	sender ports.NotificationSender
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(sender ports.NotificationSender) *NotificationUseCase {
	return &NotificationUseCase{sender: sender}
}

// Send valida título y cuerpo y ejecuta la función de Appwrite.
func (uc *NotificationUseCase) Send(ctx context.Context, in dto.NotificationRequest) (*dto.NotificationResponse, error) {
	n := entity.Notification{Title: strings.TrimSpace(in.Title), Body: strings.TrimSpace(in.Body)}
	if n.Title == "" || n.Body == "" {
		return nil, fmt.Errorf("%w: título y mensaje son obligatorios", domain.ErrInvalidInput)
	}
	id, err := uc.sender.Send(ctx, n)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationResponse{ExecutionID: id}, nil
}
