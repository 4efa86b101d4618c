package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staywise/infras/otel/mocks"
	bookingMocks "staywise/internal/domains/booking/mocks"
	"staywise/internal/domains/booking/model/dto"
	"staywise/internal/handlers/booking"
)

func newServer(t *testing.T) (*bookingMocks.MockDashboard, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockDashboard(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestGetRenterDashboard(t *testing.T) {
	svc, server := newServer(t)

	svc.EXPECT().RenterDashboard(gomock.Any(), "user_1").Return(dto.RenterDashboardResponse{RenterID: "user_1", PaymentStatus: "Fully Paid"}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/renters/user_1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payment_status":"Fully Paid"`)
}

func TestGetRenterDashboard_Failure(t *testing.T) {
	svc, server := newServer(t)

	svc.EXPECT().RenterDashboard(gomock.Any(), "user_1").Return(dto.RenterDashboardResponse{}, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/renters/user_1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetOwnerDashboard(t *testing.T) {
	svc, server := newServer(t)

	svc.EXPECT().OwnerDashboard(gomock.Any(), "owner_1").Return(dto.OwnerDashboardResponse{OwnerID: "owner_1", Listings: 2, AverageRating: 4.7}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/owner_1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"average_rating":4.7`)
}
