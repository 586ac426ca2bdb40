package api

import (
	"time"

	"github.com/itchan-dev/boardlog/shared/domain"
)

// Request DTOs

type RunPayload struct {
	Tester          string     `json:"tester" validate:"required"`
	FirmwareVersion *string    `json:"firmware_version,omitempty" validate:"omitempty,max=64"`
	FixtureVersion  *string    `json:"fixture_version,omitempty" validate:"omitempty,max=64"`
	Result          *string    `json:"result,omitempty"`
	Comments        *string    `json:"comments,omitempty"`
	TestedAt        *time.Time `json:"tested_at,omitempty"`
}

type CreateTestRunRequest struct {
	Board *BoardPayload `json:"board" validate:"required"`
	Run   *RunPayload   `json:"run" validate:"required"`
}

// Response DTOs

type CreateTestRunResponse struct {
	domain.CreatedTestRun
}

// TestRunListResponse is a bare JSON array, newest run first.
type TestRunListResponse []domain.TestRunListItem
