package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/itchan-dev/boardlog/shared/domain"
	internal_errors "github.com/itchan-dev/boardlog/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	getBoardFunc func(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error)
}

func (m *MockBoardStorage) GetBoard(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(ctx, serial)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestBoardGet(t *testing.T) {
	testCases := []struct {
		name         string
		serial       string
		mockBoard    *domain.BoardWithRuns
		mockError    error
		expectStatus int
		expectCalled bool
		expectSerial string
	}{
		{name: "found", serial: "PCB-1", mockBoard: &domain.BoardWithRuns{Board: domain.Board{SerialNumber: "PCB-1"}}, expectCalled: true, expectSerial: "PCB-1"},
		{name: "serial is trimmed", serial: "  PCB-1 ", mockBoard: &domain.BoardWithRuns{}, expectCalled: true, expectSerial: "PCB-1"},
		{name: "blank serial", serial: "   ", expectStatus: http.StatusBadRequest},
		{name: "not found passes through", serial: "PCB-404", mockError: internal_errors.NotFound("board not found"), expectStatus: http.StatusNotFound, expectCalled: true, expectSerial: "PCB-404"},
		{name: "storage failure", serial: "PCB-2", mockError: errors.New("connection reset"), expectStatus: http.StatusInternalServerError, expectCalled: true, expectSerial: "PCB-2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			storage := &MockBoardStorage{
				getBoardFunc: func(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error) {
					called = true
					assert.Equal(t, tc.expectSerial, serial)
					return tc.mockBoard, tc.mockError
				},
			}
			svc := NewBoard(storage)

			board, err := svc.Get(context.Background(), tc.serial)
			assert.Equal(t, tc.expectCalled, called)
			if tc.expectStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.expectStatus, internal_errors.StatusCode(err))
				assert.Nil(t, board)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tc.mockBoard, board)
		})
	}
}

func TestNormalizeBoard(t *testing.T) {
	t.Run("trims and nils empties", func(t *testing.T) {
		got, err := normalizeBoard(domain.BoardUpsert{
			SerialNumber: "  PCB-7 ",
			Revision:     strPtr(" C "),
			Batch:        strPtr(""),
			Notes:        strPtr("<p>lifted pad</p>"),
		})
		require.NoError(t, err)
		assert.Equal(t, "PCB-7", got.SerialNumber)
		assert.Equal(t, "C", *got.Revision)
		assert.Nil(t, got.Batch)
		assert.Nil(t, got.Status)
		assert.Equal(t, "lifted pad", *got.Notes)
	})

	t.Run("blank serial", func(t *testing.T) {
		_, err := normalizeBoard(domain.BoardUpsert{SerialNumber: " "})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
		assert.Contains(t, err.Error(), "serial_number")
	})
}
