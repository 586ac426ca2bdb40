package api

import (
	"time"

	"github.com/itchan-dev/boardlog/shared/domain"
)

// Request DTOs

// BoardPayload is the board half of a create-run request.
// Every field but the serial is optional; omitted fields keep their stored values.
type BoardPayload struct {
	SerialNumber string  `json:"serial_number" validate:"required"`
	Revision     *string `json:"revision,omitempty" validate:"omitempty,max=64"`
	Batch        *string `json:"batch,omitempty" validate:"omitempty,max=64"`
	AssembledBy  *string `json:"assembled_by,omitempty" validate:"omitempty,max=128"`
	AssemblyDate *string `json:"assembly_date,omitempty" validate:"omitempty,isodate"`
	Status       *string `json:"status,omitempty" validate:"omitempty,max=64"`
	DocURL       *string `json:"doc_url,omitempty" validate:"omitempty,max=2048"`
	Notes        *string `json:"notes,omitempty"`
}

func (p BoardPayload) ToDomain() domain.BoardUpsert {
	return domain.BoardUpsert{
		SerialNumber: p.SerialNumber,
		Revision:     p.Revision,
		Batch:        p.Batch,
		AssembledBy:  p.AssembledBy,
		AssemblyDate: p.AssemblyDate,
		Status:       p.Status,
		DocURL:       p.DocURL,
		Notes:        p.Notes,
	}
}

// Response DTOs

type BoardResponse struct {
	domain.BoardWithRuns
}

// DBProbeResponse reports what the database thinks about itself.
type DBProbeResponse struct {
	Ok       bool      `json:"ok"`
	Now      time.Time `json:"now"`
	Database string    `json:"database"`
}
