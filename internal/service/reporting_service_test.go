package service

import (
	"context"
	"errors"
	"testing"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/internal/core/ports/mocks"
	"biodiversity-credits/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleCredits() []domain.Credit {
	return []domain.Credit{
		{ID: "4", Owner: "0xAAA", Location: "Borneo", Timestamp: 400, Status: domain.CreditStatusPending},
		{ID: "3", Owner: "0xbbb", Location: "Amazon", Timestamp: 300, Status: domain.CreditStatusVerified},
		{ID: "2", Owner: "0xaaa", Location: "Borneo", Timestamp: 200, Status: domain.CreditStatusRejected},
		{ID: "1", Owner: "0xaaa", Location: "Congo", Timestamp: 100, Status: domain.CreditStatusVerified},
	}
}

func TestReportingService_ListCredits(t *testing.T) {
	verified := domain.CreditStatusVerified

	tests := []struct {
		name   string
		filter ports.CreditFilter
		want   []string
	}{
		{"no filter", ports.CreditFilter{}, []string{"4", "3", "2", "1"}},
		{"by status", ports.CreditFilter{Status: &verified}, []string{"3", "1"}},
		{"by owner, case-insensitive", ports.CreditFilter{Owner: "0XAAA"}, []string{"4", "2", "1"}},
		{"status and owner", ports.CreditFilter{Status: &verified, Owner: "0xaaa"}, []string{"1"}},
		{"no match", ports.CreditFilter{Owner: "0xccc"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			registry := mocks.NewMockCreditRegistry(ctrl)
			registry.EXPECT().List(gomock.Any()).Return(sampleCredits(), nil)

			credits, err := NewReportingService(registry).ListCredits(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := []string{}
			for _, c := range credits {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestReportingService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockCreditRegistry(ctrl)
	registry.EXPECT().List(gomock.Any()).Return(sampleCredits(), nil)

	stats, err := NewReportingService(registry).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.CreditStats{
		Total:     4,
		Verified:  2,
		Pending:   1,
		Rejected:  1,
		Locations: []string{"Borneo", "Amazon", "Congo"},
	}, stats)
}

func TestReportingService_GetStats_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockCreditRegistry(ctrl)
	registry.EXPECT().List(gomock.Any()).Return([]domain.Credit{}, nil)

	stats, err := NewReportingService(registry).GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.NotNil(t, stats.Locations)
}

func TestReportingService_RegistryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockCreditRegistry(ctrl)
	registry.EXPECT().List(gomock.Any()).Return(nil, apperror.ErrBackendUnavailable(errors.New("down"))).Times(2)

	svc := NewReportingService(registry)
	_, err := svc.ListCredits(context.Background(), ports.CreditFilter{})
	assert.True(t, apperror.HasCode(err, apperror.CodeBackendUnavailable))

	_, err = svc.GetStats(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeBackendUnavailable))
}
