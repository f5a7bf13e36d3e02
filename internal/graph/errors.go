package graph

import (
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/pkg/apperr"
)

// resolverError returns an unwrapped *apperr.Error holding only the public
// message; the executor takes extensions from the returned value itself.
func resolverError(err error) error {
	ae, _ := apperr.As(apperr.Wrap(err))
	if ae.Kind == apperr.Internal {
		zap.L().Error("GraphQL resolver failed", zap.Error(err))
	}
	return &apperr.Error{
		Kind:    ae.Kind,
		Code:    ae.Code,
		Message: apperr.PublicMessage(ae),
	}
}
