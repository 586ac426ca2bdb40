package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardUpsert struct {
	SerialNumber SerialNumber
	Revision     *string
	Batch        *string
	AssembledBy  *string
	AssemblyDate *string // YYYY-MM-DD
	Status       *string
	DocURL       *string
	Notes        *string
}

type Board struct {
	Id           BoardId      `json:"id"`
	SerialNumber SerialNumber `json:"serial_number"`
	Revision     *string      `json:"revision"`
	Batch        *string      `json:"batch"`
	AssembledBy  *string      `json:"assembled_by"`
	AssemblyDate *string      `json:"assembly_date"`
	Status       *string      `json:"status"`
	DocURL       *string      `json:"doc_url"`
	Notes        *string      `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BoardWithRuns is a board and its runs, newest first.
type BoardWithRuns struct {
	Board Board     `json:"board"`
	Runs  []TestRun `json:"runs"`
}
