package upload_document

import (
	"context"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

type WizardService interface {
	AttachRegistrationDocument(ctx context.Context, id string, doc domain.Attachment) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
