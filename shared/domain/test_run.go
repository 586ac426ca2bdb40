package domain

import "time"

const (
	ResultPass TestResult = "pass"
	ResultFail TestResult = "fail"
)

type TestRunCreationData struct {
	BoardId         BoardId
	Tester          string
	FirmwareVersion *string
	FixtureVersion  *string
	Result          *TestResult
	Comments        *string
	TestedAt        *time.Time // nil means now()
}

type TestRun struct {
	Id              TestRunId   `json:"id"`
	BoardId         BoardId     `json:"board_id"`
	Tester          string      `json:"tester"`
	FirmwareVersion *string     `json:"firmware_version"`
	FixtureVersion  *string     `json:"fixture_version"`
	Result          *TestResult `json:"result"`
	Comments        *string     `json:"comments"`
	TestedAt        time.Time   `json:"tested_at"`
}

// TestRunListItem is a run joined with its board's serial.
type TestRunListItem struct {
	TestRun
	SerialNumber SerialNumber `json:"serial_number"`
}

// CreatedTestRun holds the identifiers produced by creating a run.
type CreatedTestRun struct {
	BoardId BoardId   `json:"board_id"`
	RunId   TestRunId `json:"run_id"`
}
