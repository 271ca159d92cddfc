//go:build e2e

package promotion_test

import (
	"net/http"
	"testing"
	"time"

	"tour-booking-api/tests/common/dbtest"
	"tour-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const promotionsURL = "/api/promotions"

type promotionSuite struct {
	e2e.SharedSuite
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(promotionSuite))
}

func (s *promotionSuite) adminToken() string {
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
	return s.Login("admin@example.com")
}

func (s *promotionSuite) TestCRUD() {
	s.Run("create, read, update, delete", func() {
		token := s.adminToken()

		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodPost, promotionsURL, map[string]any{
			"name":       "Spring Break",
			"percent":    12.5,
			"start_date": "2026-03-01",
			"end_date":   "2026-03-31",
		}, token)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		var created struct {
			PromotionID uuid.UUID `json:"promotionID"`
		}
		e2e.Decode(s.T(), rec.Body.Bytes(), &created)

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodGet,
			promotionsURL+"/"+created.PromotionID.String(), nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var view struct {
			Name    string  `json:"name"`
			Percent float64 `json:"percent"`
			Phase   string  `json:"phase"`
		}
		e2e.Decode(s.T(), rec.Body.Bytes(), &view)
		s.Equal("Spring Break", view.Name)
		s.InDelta(12.5, view.Percent, 0.001)

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodPut,
			promotionsURL+"/"+created.PromotionID.String(), map[string]any{
				"name":       "Spring Break Extended",
				"percent":    15.0,
				"start_date": "2026-03-01",
				"end_date":   "2026-04-30",
			}, token)
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodDelete,
			promotionsURL+"/"+created.PromotionID.String(), nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodGet,
			promotionsURL+"/"+created.PromotionID.String(), nil, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("validation failures return 400", func() {
		token := s.adminToken()

		cases := []map[string]any{
			{"name": "Bad percent", "percent": 0, "start_date": "2026-03-01", "end_date": "2026-03-31"},
			{"name": "Bad percent", "percent": 120, "start_date": "2026-03-01", "end_date": "2026-03-31"},
			{"name": "Backwards window", "percent": 10, "start_date": "2026-03-31", "end_date": "2026-03-01"},
			{"name": "Bad date", "percent": 10, "start_date": "March 1st", "end_date": "2026-03-31"},
		}
		for _, body := range cases {
			rec := e2e.PerformJSON(s.T(), s.Router, http.MethodPost, promotionsURL, body, token)
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		}
	})

	s.Run("deleting a referenced promotion returns 409", func() {
		token := s.adminToken()
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")

		promoID := dbtest.CreateTestPromotion(s.T(), s.DB, "In Use", 1000,
			time.Now().Add(-24*time.Hour), time.Now().Add(24*time.Hour))
		tourID := dbtest.CreateTestTour(s.T(), s.DB, "Cu Chi Tunnels")
		start := time.Now().Add(7 * 24 * time.Hour)
		departureID := dbtest.CreateTestDeparture(s.T(), s.DB, dbtest.DepartureFixture{
			TourID:        tourID,
			UnitPriceCent: 5000,
			DepartureTime: start,
			ReturnTime:    start.Add(8 * time.Hour),
			MaxQuantity:   10,
		})

		customerToken := s.Login("customer@example.com")
		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodPost, "/api/bookings", map[string]any{
			"departure_id": departureID,
			"promotion_id": promoID,
			"quantity":     1,
		}, customerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodDelete,
			promotionsURL+"/"+promoID.String(), nil, token)
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})
}

func (s *promotionSuite) TestPhasesAndStats() {
	s.Run("phase filter and stats agree", func() {
		token := s.adminToken()

		now := time.Now()
		active := dbtest.CreateTestPromotion(s.T(), s.DB, "Active", 1000,
			now.Add(-24*time.Hour), now.Add(24*time.Hour))
		dbtest.CreateTestPromotion(s.T(), s.DB, "Expired", 1000,
			now.Add(-30*24*time.Hour), now.Add(-20*24*time.Hour))
		dbtest.CreateTestPromotion(s.T(), s.DB, "Upcoming A", 1000,
			now.Add(20*24*time.Hour), now.Add(30*24*time.Hour))
		dbtest.CreateTestPromotion(s.T(), s.DB, "Upcoming B", 1000,
			now.Add(40*24*time.Hour), now.Add(50*24*time.Hour))

		rec := e2e.PerformJSON(s.T(), s.Router, http.MethodGet, promotionsURL+"?phase=ACTIVE", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var list []struct {
			ID    uuid.UUID `json:"id"`
			Phase string    `json:"phase"`
		}
		e2e.Decode(s.T(), rec.Body.Bytes(), &list)
		require.Len(s.T(), list, 1)
		s.Equal(active, list[0].ID)
		s.Equal("ACTIVE", list[0].Phase)

		// The public active list matches without authentication.
		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodGet, promotionsURL+"/active", nil, "")
		require.Equal(s.T(), http.StatusOK, rec.Code)
		e2e.Decode(s.T(), rec.Body.Bytes(), &list)
		s.Len(list, 1)

		rec = e2e.PerformJSON(s.T(), s.Router, http.MethodGet, promotionsURL+"/stats", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var stats struct {
			Total    int `json:"total"`
			Active   int `json:"active"`
			Expired  int `json:"expired"`
			Upcoming int `json:"upcoming"`
		}
		e2e.Decode(s.T(), rec.Body.Bytes(), &stats)
		s.Equal(4, stats.Total)
		s.Equal(1, stats.Active)
		s.Equal(1, stats.Expired)
		s.Equal(2, stats.Upcoming)
	})
}
