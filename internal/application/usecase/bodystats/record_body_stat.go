package bodystats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// RecordBodyStatInput represents the input for recording a body stat.
// Date is a YYYY-MM-DD calendar day.
type RecordBodyStatInput struct {
	UserID  uuid.UUID
	Weight  decimal.Decimal
	BodyFat decimal.NullDecimal
	Date    string
}

// RecordBodyStatOutput represents the output of recording a body stat.
type RecordBodyStatOutput struct {
	Stat entity.BodyStat
}

// RecordBodyStatUseCase handles recording a daily weight measurement.
type RecordBodyStatUseCase struct {
	bodyStatsRepo BodyStatsRepository
}

// NewRecordBodyStatUseCase creates a new RecordBodyStatUseCase instance.
func NewRecordBodyStatUseCase(bodyStatsRepo BodyStatsRepository) *RecordBodyStatUseCase {
	return &RecordBodyStatUseCase{
		bodyStatsRepo: bodyStatsRepo,
	}
}

// Execute validates and upserts one body stat, keyed by user and day.
func (uc *RecordBodyStatUseCase) Execute(
	ctx context.Context,
	input RecordBodyStatInput,
) (*RecordBodyStatOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	recordedAt, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domainerror.NewBodyStatsError(
			domainerror.ErrCodeInvalidBodyStatDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidBodyStatDate,
		)
	}

	saved, err := uc.bodyStatsRepo.Upsert(ctx, entity.BodyStat{
		ID:                uuid.New(),
		UserID:            input.UserID,
		Weight:            input.Weight,
		BodyFatPercentage: input.BodyFat,
		RecordedAt:        recordedAt,
	})
	if err != nil {
		return nil, domainerror.NewBodyStatsError(
			domainerror.ErrCodeBodyStatsInternalError,
			"failed to record body stat",
			err,
		)
	}

	return &RecordBodyStatOutput{Stat: *saved}, nil
}

func (uc *RecordBodyStatUseCase) validateInput(input RecordBodyStatInput) error {
	if input.Weight.IsZero() || input.Date == "" {
		return domainerror.NewBodyStatsError(
			domainerror.ErrCodeMissingBodyStatFields,
			"weight and date are required",
			domainerror.ErrMissingBodyStatFields,
		)
	}

	if input.Weight.IsNegative() {
		return domainerror.NewBodyStatsError(
			domainerror.ErrCodeInvalidWeight,
			"weight must be greater than zero",
			domainerror.ErrInvalidWeight,
		)
	}

	if input.BodyFat.Valid {
		if input.BodyFat.Decimal.IsNegative() || input.BodyFat.Decimal.GreaterThan(decimal.NewFromInt(100)) {
			return domainerror.NewBodyStatsError(
				domainerror.ErrCodeInvalidBodyFat,
				"body fat percentage must be between 0 and 100",
				domainerror.ErrInvalidBodyFat,
			)
		}
	}

	return nil
}
