package queries

import (
	"context"

	"github.com/google/uuid"
)

type TourQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	List(ctx context.Context) ([]*TourView, error)
}

type TourViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	FindAll(ctx context.Context) ([]*TourView, error)
}

type tourQueriesImpl struct {
	repo TourViewRepo
}

func NewTourQueries(repo TourViewRepo) TourQueries {
	return &tourQueriesImpl{repo: repo}
}

func (q *tourQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TourView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *tourQueriesImpl) List(ctx context.Context) ([]*TourView, error) {
	return q.repo.FindAll(ctx)
}
