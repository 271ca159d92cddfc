package api

import (
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

var (
	errAuthContext  = errs.New("authenticated user missing from context")
	errMissingParam = errs.New("required query parameter missing")
)
