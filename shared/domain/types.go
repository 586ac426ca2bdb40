package domain

type (
	BoardId      = int64
	SerialNumber = string

	TestRunId  = int64
	TestResult = string
)
