package generate_permit

import (
	"context"
	"time"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/infra/permitpdf"
)

// SessionStore loads wizard sessions.
type SessionStore interface {
	Load(ctx context.Context, id string) (*domain.Session, error)
}

// Renderer turns a permit document into PDF bytes.
type Renderer interface {
	Render(doc *permitpdf.Document) ([]byte, error)
}

// TimeProvider supplies the issue timestamp (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
