//go:build unit

package commands_test

import (
	"context"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/departure"
	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/domain/schedule"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work. Within runs the callback against the shared store
// directly; there is no rollback because command tests only assert on the
// error path's observable outcome.
type fakeStore struct {
	departures  map[uuid.UUID]*departure.Departure
	promotions  map[uuid.UUID]*promotion.Promotion
	bookings    map[uuid.UUID]*booking.Booking
	guides      map[uuid.UUID]*shared.GuideSnapshot
	assignments map[uuid.UUID][]schedule.Conflict

	promotionRefs map[uuid.UUID]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		departures:    make(map[uuid.UUID]*departure.Departure),
		promotions:    make(map[uuid.UUID]*promotion.Promotion),
		bookings:      make(map[uuid.UUID]*booking.Booking),
		guides:        make(map[uuid.UUID]*shared.GuideSnapshot),
		assignments:   make(map[uuid.UUID][]schedule.Conflict),
		promotionRefs: make(map[uuid.UUID]int),
	}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository     { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Departures() shared.DepartureRepository { return &fakeDepartureRepo{store: t.store} }
func (t *fakeTx) Promotions() shared.PromotionRepository { return &fakePromotionRepo{store: t.store} }
func (t *fakeTx) Guides() shared.GuideRepository         { return &fakeGuideRepo{store: t.store} }

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *booking.Booking) error {
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	b, ok := r.store.bookings[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	r.store.bookings[id] = booking.ReconstructBooking(
		b.ID(), b.UserID(), b.DepartureID(), b.PromotionID(), b.Quantity(),
		booking.Quote{
			OriginalPrice:  b.OriginalPrice(),
			DiscountAmount: b.DiscountAmount(),
			TotalPayment:   b.TotalPayment(),
		},
		status, b.Reference(), b.BookedAt(),
	)
	return nil
}

func (r *fakeBookingRepo) SumActiveQuantity(_ context.Context, departureID uuid.UUID) (int, error) {
	sum := 0
	for _, b := range r.store.bookings {
		if b.DepartureID() == departureID && b.Status().IsActive() {
			sum += b.Quantity()
		}
	}
	return sum, nil
}

type fakeDepartureRepo struct {
	store *fakeStore
}

func (r *fakeDepartureRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*departure.Departure, error) {
	dep, ok := r.store.departures[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "departure not found")
	}
	return dep, nil
}

func (r *fakeDepartureRepo) AssignmentsForGuide(_ context.Context, guideID uuid.UUID) ([]schedule.Conflict, error) {
	return r.store.assignments[guideID], nil
}

func (r *fakeDepartureRepo) AssignGuide(_ context.Context, departureID, guideID uuid.UUID) error {
	dep, ok := r.store.departures[departureID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "departure not found")
	}
	id := guideID
	updated, err := departure.ReconstructDeparture(
		dep.ID(), dep.TourID(), dep.DayNum(), dep.UnitPrice(),
		dep.Location(), dep.Window(), dep.MaxQuantity(), &id)
	if err != nil {
		return err
	}
	r.store.departures[departureID] = updated
	return nil
}

type fakePromotionRepo struct {
	store *fakeStore
}

func (r *fakePromotionRepo) FindByID(_ context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	p, ok := r.store.promotions[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return p, nil
}

func (r *fakePromotionRepo) Insert(_ context.Context, p *promotion.Promotion) error {
	r.store.promotions[p.ID()] = p
	return nil
}

func (r *fakePromotionRepo) Update(_ context.Context, p *promotion.Promotion) error {
	if _, ok := r.store.promotions[p.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	r.store.promotions[p.ID()] = p
	return nil
}

func (r *fakePromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.promotions[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	if r.store.promotionRefs[id] > 0 {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "promotion referenced")
	}
	delete(r.store.promotions, id)
	return nil
}

type fakeGuideRepo struct {
	store *fakeStore
}

func (r *fakeGuideRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.GuideSnapshot, error) {
	g, ok := r.store.guides[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "guide not found")
	}
	return g, nil
}
