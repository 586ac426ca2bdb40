package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/boardlog/backend/internal/service/utils"
	"github.com/itchan-dev/boardlog/shared/domain"
	"github.com/itchan-dev/boardlog/shared/errors"
)

// to mock service in tests
type BoardService interface {
	Get(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error)
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	GetBoard(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error)
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) Get(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, errors.BadRequest("serial is required")
	}
	return b.storage.GetBoard(ctx, serial)
}

// normalizeBoard trims the serial and every attribute; free text is reduced to plain text.
func normalizeBoard(in domain.BoardUpsert) (domain.BoardUpsert, error) {
	out := domain.BoardUpsert{
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		Revision:     utils.OptionalString(in.Revision),
		Batch:        utils.OptionalString(in.Batch),
		AssembledBy:  utils.OptionalString(in.AssembledBy),
		AssemblyDate: utils.OptionalString(in.AssemblyDate),
		Status:       utils.OptionalString(in.Status),
		DocURL:       utils.OptionalString(in.DocURL),
		Notes:        utils.PlainText(in.Notes),
	}
	if out.SerialNumber == "" {
		return out, errors.BadRequest("board.serial_number is required")
	}
	return out, nil
}
