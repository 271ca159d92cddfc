//go:build unit || e2e

// Package dbtest seeds and resets the database for end-to-end tests.
package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"tour-booking-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind every fixture user.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		passwordHash, err = password.Hash(TestPassword)
		require.NoError(t, err)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		userID, email, testPasswordHash(t), "Test "+role, role)
	require.NoError(t, err)
	return userID
}

// CreateTestGuide creates a guide user plus their tour_guides row, returning
// both ids. Assignment uses the guide id; the dashboard uses the user id.
func CreateTestGuide(t *testing.T, db *pgxpool.Pool, email string) (userID, guideID uuid.UUID) {
	t.Helper()

	userID = CreateTestUser(t, db, email, "guide")
	guideID = uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO tour_guides (id, user_id, languages) VALUES ($1, $2, 'en,vi')`,
		guideID, userID)
	require.NoError(t, err)
	return userID, guideID
}

func CreateTestTour(t *testing.T, db *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	typeID := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO tour_types (id, name) VALUES ($1, $2)`,
		typeID, "Type of "+name)
	require.NoError(t, err)

	tourID := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO tours (id, tour_type_id, name, destination)
		 VALUES ($1, $2, $3, $4)`,
		tourID, typeID, name, "Destination of "+name)
	require.NoError(t, err)
	return tourID
}

type DepartureFixture struct {
	TourID        uuid.UUID
	DayNum        int
	UnitPriceCent int64
	Location      string
	DepartureTime time.Time
	ReturnTime    time.Time
	MaxQuantity   int
	GuideID       *uuid.UUID
}

func CreateTestDeparture(t *testing.T, db *pgxpool.Pool, f DepartureFixture) uuid.UUID {
	t.Helper()

	if f.DayNum == 0 {
		f.DayNum = 1
	}
	if f.Location == "" {
		f.Location = "Main pier"
	}

	departureID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO tour_departures
		   (id, tour_id, day_num, unit_price_cents, departure_location,
		    departure_time, return_time, max_quantity, guide_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		departureID, f.TourID, f.DayNum, f.UnitPriceCent, f.Location,
		f.DepartureTime, f.ReturnTime, f.MaxQuantity, f.GuideID)
	require.NoError(t, err)
	return departureID
}

func CreateTestPromotion(t *testing.T, db *pgxpool.Pool, name string, percentBP int64, start, end time.Time) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO promotions (id, name, percent_bp, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		promoID, name, percentBP, start, end)
	require.NoError(t, err)
	return promoID
}

// ResetDB truncates every mutable table. Fixture helpers rebuild what each
// test needs.
func ResetDB(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(),
		`TRUNCATE bookings, tour_departures, tours, tour_types, tour_guides,
		 promotions, users CASCADE`)
	return err
}
