package services

import (
	"context"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReservationService_CreateAssignsFileNumber(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("CountAll", mock.Anything).Return(int64(12), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Reservation) bool {
		return r.FileNumber == "300013" && r.Progress == models.ProgressPending && r.CreatedBy == 4
	})).Return(nil)

	resp, err := svc.Create(context.Background(), 4, &ReservationInput{CustomerName: "Mohamed Ali"})
	require.NoError(t, err)
	assert.Equal(t, "300013", resp.FileNumber)
	repo.AssertExpectations(t)
}

func TestReservationService_CreateFirstFileNumber(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("CountAll", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Reservation) bool {
		return r.FileNumber == "300001"
	})).Return(nil)

	_, err := svc.Create(context.Background(), 4, &ReservationInput{CustomerName: "Mohamed Ali"})
	require.NoError(t, err)
}

func TestReservationService_CreateSuppliedFileNumberConflict(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("ExistsByFileNumber", mock.Anything, "300005").Return(true, nil)

	_, err := svc.Create(context.Background(), 4, &ReservationInput{
		CustomerName: "Mohamed Ali",
		FileNumber:   "300005",
	})
	assert.ErrorIs(t, err, ErrFileNumberTaken)
}

func TestReservationService_CreateComputesTotal(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("CountAll", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Reservation) bool {
		return r.TotalAmount == "1600.50"
	})).Return(nil)

	resp, err := svc.Create(context.Background(), 4, &ReservationInput{
		CustomerName:   "Mohamed Ali",
		FlightAmount:   "1,000",
		HotelAmount:    "500.50",
		TransferAmount: "100",
		ExtrasAmount:   "not a number",
	})
	require.NoError(t, err)
	assert.Equal(t, "1600.50", resp.TotalAmount)
}

func TestReservationService_CreateInvalidProgress(t *testing.T) {
	svc := NewReservationService(new(reservationRepoMock))

	_, err := svc.Create(context.Background(), 4, &ReservationInput{
		CustomerName: "Mohamed Ali",
		FileNumber:   "300010",
		Progress:     "Almost Done",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReservationService_CreateMissingCustomer(t *testing.T) {
	svc := NewReservationService(new(reservationRepoMock))

	_, err := svc.Create(context.Background(), 4, &ReservationInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReservationService_UpdateKeepsFileNumber(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	existing := &models.Reservation{ID: 9, FileNumber: "300009", CustomerName: "Old Name", Progress: models.ProgressPending}
	repo.On("GetByID", mock.Anything, uint(9)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *models.Reservation) bool {
		return r.FileNumber == "300009" && r.CustomerName == "New Name" && r.UpdatedBy == 4
	})).Return(nil)

	resp, err := svc.Update(context.Background(), 4, 9, &ReservationInput{
		CustomerName: "New Name",
		FileNumber:   "999999",
	})
	require.NoError(t, err)
	assert.Equal(t, "300009", resp.FileNumber)
}

func TestReservationService_UpdateNotFound(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("GetByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 4, 77, &ReservationInput{CustomerName: "Someone"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Duplicate(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	source := &models.Reservation{
		ID:           3,
		FileNumber:   "300003",
		CustomerName: "Mohamed Ali",
		TotalAmount:  "1500.00",
		Progress:     models.ProgressComplete,
	}
	repo.On("GetByID", mock.Anything, uint(3)).Return(source, nil)
	repo.On("CountAll", mock.Anything).Return(int64(20), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Reservation) bool {
		return r.FileNumber == "300021" && r.Progress == models.ProgressPending &&
			r.CustomerName == "Mohamed Ali" && r.TotalAmount == "1500.00" && r.CreatedBy == 4
	})).Return(nil)

	resp, err := svc.Duplicate(context.Background(), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, "300021", resp.FileNumber)
	assert.Equal(t, models.ProgressPending, resp.Progress)
	repo.AssertExpectations(t)
}

func TestReservationService_Delete(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("SoftDelete", mock.Anything, uint(9), uint(4)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 4, 9))
}

func TestReservationService_DeleteGone(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("SoftDelete", mock.Anything, uint(9), uint(4)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 4, 9), domain.ErrNotFound)
}

func TestReservationService_DeleteManyEmpty(t *testing.T) {
	svc := NewReservationService(new(reservationRepoMock))

	_, err := svc.DeleteMany(context.Background(), 4, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReservationService_GetStats(t *testing.T) {
	repo := new(reservationRepoMock)
	svc := NewReservationService(repo)

	repo.On("CountByProgress", mock.Anything).Return(map[string]int64{
		models.ProgressPending:  3,
		models.ProgressComplete: 5,
	}, nil)
	repo.On("CountCreatedSince", mock.Anything, mock.Anything).Return(int64(2), nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(5), stats.Complete)
	assert.Equal(t, int64(0), stats.Cancelled)
	assert.Equal(t, int64(2), stats.ThisMonth)
}
