package submit_payment

import (
	"context"
	"time"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	storage "github.com/szekelyhub/transit-permit-service/internal/infra/storage/application"
	"github.com/szekelyhub/transit-permit-service/internal/integrations/paymentgateway"
)

// SessionStore persists wizard sessions.
type SessionStore interface {
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// ApplicationRepository stores finalized applications.
type ApplicationRepository interface {
	Create(ctx context.Context, sessionID string, app *domain.Application) (*storage.StoredApplication, error)
	GetBySessionID(ctx context.Context, sessionID string) (*storage.StoredApplication, error)
}

// PaymentGateway charges the operator.
type PaymentGateway interface {
	Charge(ctx context.Context, req *paymentgateway.ChargeRequest) (*paymentgateway.ChargeResult, error)
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
