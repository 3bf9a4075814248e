package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"validation-service/internal/brdoc"
	"validation-service/internal/model"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrBatchTooLarge = errors.New("batch too large")
)

type ValidationService struct {
	batchMaxItems int
	log           zerolog.Logger
}

func NewValidationService(batchMaxItems int, log zerolog.Logger) *ValidationService {
	return &ValidationService{
		batchMaxItems: batchMaxItems,
		log:           log,
	}
}

func (s *ValidationService) ValidateCPF(ctx context.Context, cpf string) model.Verdict {
	verdict := model.Verdict{Input: cpf}

	if err := brdoc.ValidateCPF(cpf); err != nil {
		fillFailure(&verdict, err)
		return verdict
	}

	formatted, err := brdoc.FormatCPF(cpf)
	if err != nil {
		fillFailure(&verdict, err)
		return verdict
	}

	verdict.Valid = true
	verdict.Formatted = formatted
	return verdict
}

func (s *ValidationService) ValidatePlate(ctx context.Context, plate string) model.Verdict {
	verdict := model.Verdict{Input: plate}

	kind, err := brdoc.PlateFormat(plate)
	if err != nil {
		fillFailure(&verdict, err)
		return verdict
	}

	verdict.Valid = true
	verdict.Kind = string(kind)
	return verdict
}

func (s *ValidationService) FormatCPF(ctx context.Context, cpf string) (string, error) {
	return brdoc.FormatCPF(cpf)
}

// ValidateBatch validates every entry, keeping input order.
func (s *ValidationService) ValidateBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResult, error) {
	size := req.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: batch is empty", ErrInvalidInput)
	}
	if size > s.batchMaxItems {
		return nil, fmt.Errorf("%w: %d items, limit is %d", ErrBatchTooLarge, size, s.batchMaxItems)
	}

	result := &model.BatchResult{
		ID:     uuid.New(),
		CPFs:   make([]model.Verdict, 0, len(req.CPFs)),
		Plates: make([]model.Verdict, 0, len(req.Plates)),
	}

	for _, cpf := range req.CPFs {
		v := s.ValidateCPF(ctx, cpf)
		result.CPFs = append(result.CPFs, v)
		result.Tally(v)
	}
	for _, plate := range req.Plates {
		v := s.ValidatePlate(ctx, plate)
		result.Plates = append(result.Plates, v)
		result.Tally(v)
	}

	s.log.Debug().
		Str("batch_id", result.ID.String()).
		Int("valid", result.Valid).
		Int("invalid", result.Invalid).
		Msg("batch validated")

	return result, nil
}

func fillFailure(verdict *model.Verdict, err error) {
	if verr, ok := brdoc.AsValidationError(err); ok {
		verdict.Code = verr.Code().String()
		verdict.Message = verr.Message()
		return
	}
	verdict.Message = err.Error()
}
