package readstore

import (
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/pgconv"
)

func wrapReadErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}

func notFoundErr(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, msg)
}
