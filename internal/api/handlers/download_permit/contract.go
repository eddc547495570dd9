package download_permit

import (
	"context"

	generatePermit "github.com/szekelyhub/transit-permit-service/internal/usecase/generate_permit"
)

type GeneratePermitUseCase interface {
	Generate(ctx context.Context, req *generatePermit.Request) (*generatePermit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
