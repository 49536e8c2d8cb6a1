package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/exercise"
	"github.com/fittrack/backend/internal/domain/entity"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// exerciseRepository implements the exercise.ExerciseRepository interface.
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new exercise repository instance.
func NewExerciseRepository(db *gorm.DB) exercise.ExerciseRepository {
	return &exerciseRepository{
		db: db,
	}
}

// ListExercises returns one page of the catalog plus the total count of rows
// matching the filter regardless of pagination.
func (r *exerciseRepository) ListExercises(
	ctx context.Context,
	filter exercise.ExerciseFilter,
) ([]entity.Exercise, int, error) {
	query := r.db.WithContext(ctx).Model(&model.ExerciseModel{})

	if filter.Category != "" {
		query = query.Where("type = ?", filter.Category)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exerciseModels []model.ExerciseModel
	result := query.
		Order("name ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&exerciseModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	exercises := make([]entity.Exercise, len(exerciseModels))
	for i, exerciseModel := range exerciseModels {
		exercises[i] = *exerciseModel.ToEntity()
	}
	return exercises, int(total), nil
}
