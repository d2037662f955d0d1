package impl

import (
	"context"
	"strings"
	"testing"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	mockRepo "baxpro/internal/mocks/repository"
	mockUsecase "baxpro/internal/mocks/usecase"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceMocks struct {
	alertRepo *mockRepo.MockAlertRepository
	matchRepo *mockRepo.MockMatchRepository
	scheduler *mockUsecase.MockMatchScheduler
}

func newTestAlertService(t *testing.T) (usecase.AlertUsecase, alertServiceMocks) {
	m := alertServiceMocks{
		alertRepo: mockRepo.NewMockAlertRepository(t),
		matchRepo: mockRepo.NewMockMatchRepository(t),
		scheduler: mockUsecase.NewMockMatchScheduler(t),
	}

	svc := NewAlertService(AlertServiceParams{
		Logger:    discardLogger(),
		AlertRepo: m.alertRepo,
		MatchRepo: m.matchRepo,
		Scheduler: m.scheduler,
	})

	return svc, m
}

func validInput() *usecase.CreateAlertInput {
	return &usecase.CreateAlertInput{
		Name:         "Pappy hunt",
		MatchStrings: []string{"pappy", " van winkle "},
		MaxPrice:     500,
	}
}

func TestAlertService_CreateAlert(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	alertID := uuid.New()

	m.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) {
			alert.ID = alertID
		}).
		Return(nil)
	m.scheduler.EXPECT().Enqueue(alertID).Return(nil)

	alert, err := svc.CreateAlert(ctx, userID, validInput())
	require.NoError(t, err)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, userID, alert.UserID)
	assert.Equal(t, []string{"pappy", "van winkle"}, alert.MatchStrings)
}

func TestAlertService_CreateAlert_QueueFullStillCreates(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	m.alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	m.scheduler.EXPECT().Enqueue(mock.Anything).Return(errors.WithStack(domainerrors.ErrMatchQueueFull))

	alert, err := svc.CreateAlert(ctx, uuid.New(), validInput())
	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestAlertService_CreateAlert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateAlertInput)
	}{
		{"blank name", func(in *usecase.CreateAlertInput) { in.Name = "   " }},
		{"no match strings", func(in *usecase.CreateAlertInput) { in.MatchStrings = nil }},
		{"too many match strings", func(in *usecase.CreateAlertInput) {
			in.MatchStrings = []string{"a", "b", "c", "d", "e", "f"}
		}},
		{"blank match string", func(in *usecase.CreateAlertInput) { in.MatchStrings = []string{"pappy", "  "} }},
		{"match string too long", func(in *usecase.CreateAlertInput) {
			in.MatchStrings = []string{strings.Repeat("x", MaxMatchStringLength+1)}
		}},
		{"negative price", func(in *usecase.CreateAlertInput) { in.MaxPrice = -1 }},
		{"year range inverted", func(in *usecase.CreateAlertInput) {
			in.BottledYearMin, in.BottledYearMax = intPtr(2010), intPtr(2000)
		}},
		{"age range inverted", func(in *usecase.CreateAlertInput) {
			in.AgeMin, in.AgeMax = intPtr(23), intPtr(10)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAlertService(t)
			in := validInput()
			tt.mutate(in)

			_, err := svc.CreateAlert(context.Background(), uuid.New(), in)
			require.ErrorIs(t, err, domainerrors.ErrInvalidAlertCriteria)
		})
	}
}

func TestAlertService_CreateAlert_BoundaryValuesAccepted(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	m.alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	m.scheduler.EXPECT().Enqueue(mock.Anything).Return(nil)

	in := validInput()
	in.MatchStrings = []string{"a", "b", "c", "d", strings.Repeat("x", MaxMatchStringLength)}
	in.MaxPrice = 0
	in.AgeMin, in.AgeMax = intPtr(12), intPtr(12)

	_, err := svc.CreateAlert(ctx, uuid.New(), in)
	require.NoError(t, err)
}

func TestAlertService_CreateAlert_StoreFailure(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	m.alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.CreateAlert(ctx, uuid.New(), validInput())
	require.ErrorIs(t, err, domainerrors.ErrAlertCreationFailed)
}

func TestAlertService_UpdateAlert(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Alert{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Pappy hunt",
		MatchStrings:   []string{"pappy"},
		MaxPrice:       500,
		BottledYearMin: intPtr(2000),
	}

	m.alertRepo.EXPECT().FindAlertByID(ctx, existing.ID).Return(existing, nil)
	m.alertRepo.EXPECT().UpdateAlertCriteria(ctx, existing).Return(nil)
	m.scheduler.EXPECT().Enqueue(existing.ID).Return(nil)

	update := &entity.AlertUpdate{
		Name:           strPtr(" Weller "),
		MatchStrings:   []string{"weller"},
		BottledYearMin: entity.OptionalInt{Set: true},
	}

	alert, err := svc.UpdateAlert(ctx, userID, existing.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Weller", alert.Name)
	assert.Equal(t, []string{"weller"}, alert.MatchStrings)
	assert.Nil(t, alert.BottledYearMin)
	assert.Equal(t, 500, alert.MaxPrice)
}

func TestAlertService_UpdateAlert_EmptyUpdateSkipsWrite(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Alert{ID: uuid.New(), UserID: userID, Name: "x", MatchStrings: []string{"x"}}

	m.alertRepo.EXPECT().FindAlertByID(ctx, existing.ID).Return(existing, nil)

	alert, err := svc.UpdateAlert(ctx, userID, existing.ID, &entity.AlertUpdate{})
	require.NoError(t, err)
	assert.Same(t, existing, alert)
}

func TestAlertService_UpdateAlert_InvalidResult(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Alert{
		ID: uuid.New(), UserID: userID, Name: "x", MatchStrings: []string{"x"}, AgeMax: intPtr(10),
	}

	m.alertRepo.EXPECT().FindAlertByID(ctx, existing.ID).Return(existing, nil)

	_, err := svc.UpdateAlert(ctx, userID, existing.ID, &entity.AlertUpdate{
		AgeMin: entity.OptionalInt{Set: true, Value: intPtr(12)},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidAlertCriteria)
}

func TestAlertService_OwnershipIsEnforced(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	caller := uuid.New()
	alert := &entity.Alert{ID: uuid.New(), UserID: owner, Name: "x", MatchStrings: []string{"x"}}

	t.Run("update", func(t *testing.T) {
		svc, m := newTestAlertService(t)
		m.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

		_, err := svc.UpdateAlert(ctx, caller, alert.ID, &entity.AlertUpdate{MaxPrice: intPtr(1)})
		require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc, m := newTestAlertService(t)
		m.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

		require.ErrorIs(t, svc.DeleteAlert(ctx, caller, alert.ID), domainerrors.ErrAlertNotFound)
	})

	t.Run("matches", func(t *testing.T) {
		svc, m := newTestAlertService(t)
		m.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

		_, err := svc.ListMatchedListings(ctx, caller, alert.ID, 10, 0)
		require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	})
}

func TestAlertService_DeleteAlert(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	alert := &entity.Alert{ID: uuid.New(), UserID: userID}

	m.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	m.alertRepo.EXPECT().DeleteAlert(ctx, alert.ID).Return(nil)

	require.NoError(t, svc.DeleteAlert(ctx, userID, alert.ID))
}

func TestAlertService_DeleteAlert_Missing(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	m.alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	require.ErrorIs(t, svc.DeleteAlert(ctx, uuid.New(), alertID), domainerrors.ErrAlertNotFound)
}

func TestAlertService_ListMatchedListings_Paging(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, usecase.DefaultMatchedListingsLimit, 0},
		{"capped", 1000, 20, usecase.MaxMatchedListingsLimit, 20},
		{"negative offset", 10, -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAlertService(t)
			ctx := context.Background()
			userID := uuid.New()
			alert := &entity.Alert{ID: uuid.New(), UserID: userID}

			m.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
			m.matchRepo.EXPECT().
				FindMatchedListings(ctx, alert.ID, tt.wantLimit, tt.wantOffset).
				Return([]*entity.MatchedListing{{ActivityIdx: 1}}, nil)

			listings, err := svc.ListMatchedListings(ctx, userID, alert.ID, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, listings, 1)
		})
	}
}

func TestAlertService_ListAlerts(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.alertRepo.EXPECT().FindAlertsByUser(ctx, userID).Return(nil, errors.New("timeout"))

	_, err := svc.ListAlerts(ctx, userID)
	require.Error(t, err)
}
