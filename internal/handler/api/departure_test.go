//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/tests/common/builder"
	"tour-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubDepartureCommands struct {
	assignFn func(ctx context.Context, departureID, guideID uuid.UUID) error
}

func (s *stubDepartureCommands) AssignGuide(ctx context.Context, departureID, guideID uuid.UUID) error {
	return s.assignFn(ctx, departureID, guideID)
}

type stubDepartureQueries struct {
	getFn          func(ctx context.Context, id uuid.UUID) (*queries.DepartureView, error)
	listFn         func(ctx context.Context) ([]*queries.DepartureView, error)
	listByTourFn   func(ctx context.Context, tourID uuid.UUID) ([]*queries.DepartureView, error)
	availabilityFn func(ctx context.Context, id uuid.UUID) (*queries.AvailabilityView, error)
}

func (s *stubDepartureQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.DepartureView, error) {
	return s.getFn(ctx, id)
}

func (s *stubDepartureQueries) ListUpcoming(ctx context.Context) ([]*queries.DepartureView, error) {
	return s.listFn(ctx)
}

func (s *stubDepartureQueries) ListByTour(ctx context.Context, tourID uuid.UUID) ([]*queries.DepartureView, error) {
	return s.listByTourFn(ctx, tourID)
}

func (s *stubDepartureQueries) Availability(ctx context.Context, id uuid.UUID) (*queries.AvailabilityView, error) {
	return s.availabilityFn(ctx, id)
}

type DepartureHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubDepartureCommands
	queries  *stubDepartureQueries
}

func (s *DepartureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubDepartureCommands{}
	s.queries = &stubDepartureQueries{}
	handler := api.NewDepartureHandler(s.commands, s.queries)

	adminMiddleware := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/tour-departures", handler.ListUpcoming)
	s.router.GET("/tour-departures/:id", handler.Get)
	s.router.GET("/tour-departures/:id/check-availability", handler.CheckAvailability)
	s.router.GET("/tour-departures/:id/available-slots", handler.AvailableSlots)
	s.router.PUT("/tour-departures/:id/assign-guide/:guideId", adminMiddleware, handler.AssignGuide)
}

func TestDepartureHandlerSuite(t *testing.T) {
	suite.Run(t, new(DepartureHandlerTestSuite))
}

func (s *DepartureHandlerTestSuite) TestGet() {
	s.Run("success: returns the departure with live availability", func() {
		view := builder.NewDepartureBuilder().With(func(d *builder.DepartureBuilder) {
			d.Booked = 3
		}).BuildView()
		s.queries.getFn = func(_ context.Context, id uuid.UUID) (*queries.DepartureView, error) {
			s.Equal(view.ID, id)
			return view, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tour-departures/"+view.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("150.00", body["unitPrice"])
		s.Equal(float64(7), body["availableSlots"])
	})

	s.Run("error: 404 for an unknown departure", func() {
		s.queries.getFn = func(context.Context, uuid.UUID) (*queries.DepartureView, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "departure not found")
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tour-departures/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour departure not found")
	})
}

func (s *DepartureHandlerTestSuite) TestCheckAvailability() {
	departureID := uuid.New()
	availability := &queries.AvailabilityView{
		DepartureID:    departureID,
		MaxQuantity:    10,
		BookedQuantity: 7,
		AvailableSlots: 3,
	}

	s.queries.availabilityFn = func(_ context.Context, id uuid.UUID) (*queries.AvailabilityView, error) {
		s.Equal(departureID, id)
		return availability, nil
	}

	cases := []struct {
		name      string
		query     string
		available *bool
	}{
		{name: "fits", query: "?quantity=3", available: boolPtr(true)},
		{name: "does not fit", query: "?quantity=4", available: boolPtr(false)},
		{name: "zero never fits", query: "?quantity=0", available: boolPtr(false)},
		{name: "no quantity requested", query: "", available: nil},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
				"/tour-departures/"+departureID.String()+"/check-availability"+tc.query, nil, "")

			var body struct {
				AvailableSlots int   `json:"availableSlots"`
				Available      *bool `json:"available"`
			}
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(3, body.AvailableSlots)
			if tc.available == nil {
				s.Nil(body.Available)
			} else {
				s.NotNil(body.Available)
				s.Equal(*tc.available, *body.Available)
			}
		})
	}

	s.Run("error: 400 for a non-numeric quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/tour-departures/"+departureID.String()+"/check-availability?quantity=two", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "quantity must be an integer")
	})
}

func (s *DepartureHandlerTestSuite) TestAssignGuide() {
	departureID := uuid.New()
	guideID := uuid.New()
	url := "/tour-departures/" + departureID.String() + "/assign-guide/" + guideID.String()

	s.Run("success: assigns the guide", func() {
		s.commands.assignFn = func(_ context.Context, dID, gID uuid.UUID) error {
			s.Equal(departureID, dID)
			s.Equal(guideID, gID)
			return nil
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 with the conflicting departure in the detail", func() {
		conflictingID := uuid.New()
		start := time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
		end := start.Add(24 * time.Hour)
		s.commands.assignFn = func(context.Context, uuid.UUID, uuid.UUID) error {
			return &commands.ScheduleConflictError{
				GuideID:                guideID,
				DepartureID:            departureID,
				ConflictingDepartureID: conflictingID,
				ConflictStart:          start,
				ConflictEnd:            end,
			}
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlapping departure")

		var envelope struct {
			Detail struct {
				ConflictingDepartureID uuid.UUID `json:"conflictingDepartureId"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
		s.Equal(conflictingID, envelope.Detail.ConflictingDepartureID)
	})

	s.Run("error: 404 when the guide does not exist", func() {
		s.commands.assignFn = func(context.Context, uuid.UUID, uuid.UUID) error {
			return commands.ErrGuideNotFound
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour guide not found")
	})

	s.Run("error: 400 for a malformed guide id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/tour-departures/"+departureID.String()+"/assign-guide/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

func boolPtr(b bool) *bool { return &b }
