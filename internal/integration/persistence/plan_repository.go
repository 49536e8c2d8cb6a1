package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/plan"
	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// planRepository implements the plan.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) plan.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// CreatePlan inserts the plan with its days and planned exercises.
func (r *planRepository) CreatePlan(
	ctx context.Context,
	planEntity entity.TrainingPlan,
	days []entity.TrainingDay,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planModel := model.TrainingPlanFromEntity(&planEntity)
		if err := tx.Create(planModel).Error; err != nil {
			return err
		}
		for _, day := range days {
			day.PlanID = planEntity.ID
			if err := createDay(tx, day); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPlan returns the user's plan with its days ordered by day number and
// joined exercise names.
func (r *planRepository) GetPlan(
	ctx context.Context,
	userID, planID uuid.UUID,
) (*entity.TrainingPlan, []entity.TrainingDay, error) {
	var planModel model.TrainingPlanModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, domainerror.ErrPlanNotFound
		}
		return nil, nil, result.Error
	}

	var dayModels []model.TrainingDayModel
	result = r.db.WithContext(ctx).
		Preload("Exercises.Exercise").
		Where("plan_id = ?", planID).
		Order("day_number ASC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	days := make([]entity.TrainingDay, len(dayModels))
	for i, dayModel := range dayModels {
		days[i] = *dayModel.ToEntity()
	}
	return planModel.ToEntity(), days, nil
}

// ListPlans returns the user's plans, newest first.
func (r *planRepository) ListPlans(ctx context.Context, userID uuid.UUID) ([]entity.TrainingPlan, error) {
	var planModels []model.TrainingPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]entity.TrainingPlan, len(planModels))
	for i, planModel := range planModels {
		plans[i] = *planModel.ToEntity()
	}
	return plans, nil
}

// UpdatePlan renames the plan and replaces its days. Existing days are
// matched by day number so their ids survive the update and session links
// stay intact; days absent from the payload are deleted.
func (r *planRepository) UpdatePlan(
	ctx context.Context,
	userID uuid.UUID,
	planEntity entity.TrainingPlan,
	days []entity.TrainingDay,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planModel model.TrainingPlanModel
		result := tx.Where("id = ? AND user_id = ?", planEntity.ID, userID).First(&planModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrPlanNotFound
			}
			return result.Error
		}

		if err := tx.Model(&model.TrainingPlanModel{}).
			Where("id = ?", planEntity.ID).
			Update("name", planEntity.Name).Error; err != nil {
			return err
		}

		var existingDays []model.TrainingDayModel
		if err := tx.Where("plan_id = ?", planEntity.ID).Find(&existingDays).Error; err != nil {
			return err
		}
		existingByNumber := make(map[int]model.TrainingDayModel, len(existingDays))
		for _, existingDay := range existingDays {
			existingByNumber[existingDay.DayNumber] = existingDay
		}

		keptNumbers := make(map[int]bool, len(days))
		for _, day := range days {
			keptNumbers[day.DayNumber] = true
			existingDay, exists := existingByNumber[day.DayNumber]
			if exists {
				day.ID = existingDay.ID
				if err := tx.Model(&model.TrainingDayModel{}).
					Where("id = ?", existingDay.ID).
					Updates(map[string]interface{}{
						"title":              day.Title,
						"estimated_duration": day.EstimatedDuration,
					}).Error; err != nil {
					return err
				}
				if err := replaceDayExercises(tx, day); err != nil {
					return err
				}
				continue
			}

			day.PlanID = planEntity.ID
			if err := createDay(tx, day); err != nil {
				return err
			}
		}

		for _, existingDay := range existingDays {
			if keptNumbers[existingDay.DayNumber] {
				continue
			}
			if err := deleteDay(tx, existingDay.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateDay updates one training day's title and duration and replaces its
// planned exercises.
func (r *planRepository) UpdateDay(ctx context.Context, userID uuid.UUID, day entity.TrainingDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dayModel model.TrainingDayModel
		result := tx.
			Where("id = ?", day.ID).
			Where("plan_id IN (SELECT id FROM user_training_plans WHERE user_id = ?)", userID).
			First(&dayModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrTrainingDayNotFound
			}
			return result.Error
		}

		if err := tx.Model(&model.TrainingDayModel{}).
			Where("id = ?", day.ID).
			Updates(map[string]interface{}{
				"title":              day.Title,
				"estimated_duration": day.EstimatedDuration,
			}).Error; err != nil {
			return err
		}
		return replaceDayExercises(tx, day)
	})
}

// DeletePlan deletes the plan with its days and planned exercises.
func (r *planRepository) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planModel model.TrainingPlanModel
		result := tx.Where("id = ? AND user_id = ?", planID, userID).First(&planModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrPlanNotFound
			}
			return result.Error
		}

		if err := tx.
			Where("training_day_id IN (SELECT id FROM user_training_days WHERE plan_id = ?)", planID).
			Delete(&model.DayExerciseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", planID).Delete(&model.TrainingDayModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TrainingPlanModel{}, "id = ?", planID).Error
	})
}

// FindExerciseIDByName returns the id of the catalog exercise with the given
// name; uuid.Nil and false when none exists.
func (r *planRepository) FindExerciseIDByName(ctx context.Context, name string) (uuid.UUID, bool, error) {
	var exerciseModel model.ExerciseModel
	result := r.db.WithContext(ctx).
		Select("id").
		Where("name = ?", name).
		First(&exerciseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, result.Error
	}
	return exerciseModel.ID, true, nil
}

// CreateExercise inserts a new catalog exercise.
func (r *planRepository) CreateExercise(ctx context.Context, exercise entity.Exercise) error {
	exerciseModel := model.ExerciseFromEntity(&exercise)
	now := time.Now().UTC()
	exerciseModel.CreatedAt = now
	exerciseModel.UpdatedAt = now
	return r.db.WithContext(ctx).Create(exerciseModel).Error
}

// createDay inserts a training day with its planned exercises, resolving
// exercises the client sent without a catalog id.
func createDay(tx *gorm.DB, day entity.TrainingDay) error {
	resolved, err := resolvePlannedExercises(tx, day.Exercises)
	if err != nil {
		return err
	}
	day.Exercises = resolved

	dayModel := model.TrainingDayFromEntity(&day)
	return tx.Create(dayModel).Error
}

// deleteDay deletes a training day together with its planned exercises.
func deleteDay(tx *gorm.DB, dayID uuid.UUID) error {
	if err := tx.Where("training_day_id = ?", dayID).Delete(&model.DayExerciseModel{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", dayID).Delete(&model.TrainingDayModel{}).Error
}

// replaceDayExercises deletes the day's planned exercises and inserts the
// payload's, resolving missing catalog ids.
func replaceDayExercises(tx *gorm.DB, day entity.TrainingDay) error {
	resolved, err := resolvePlannedExercises(tx, day.Exercises)
	if err != nil {
		return err
	}

	if err := tx.Where("training_day_id = ?", day.ID).Delete(&model.DayExerciseModel{}).Error; err != nil {
		return err
	}
	for _, exercise := range resolved {
		exerciseModel := model.DayExerciseModel{
			ID:            exercise.ID,
			TrainingDayID: day.ID,
			ExerciseID:    exercise.ExerciseID,
			SetCount:      exercise.SetCount,
			RepMin:        exercise.RepMin,
			RepMax:        exercise.RepMax,
		}
		if err := tx.Create(&exerciseModel).Error; err != nil {
			return err
		}
	}
	return nil
}

// resolvePlannedExercises fills in catalog ids for exercises the client sent
// with a temporary id, creating a default catalog entry when the name is new.
func resolvePlannedExercises(tx *gorm.DB, exercises []entity.PlannedExercise) ([]entity.PlannedExercise, error) {
	resolved := make([]entity.PlannedExercise, len(exercises))
	for i, exercise := range exercises {
		if exercise.ExerciseID == uuid.Nil {
			exerciseID, err := resolveExerciseIDByName(tx, exercise.Name)
			if err != nil {
				return nil, err
			}
			exercise.ExerciseID = exerciseID
		}
		resolved[i] = exercise
	}
	return resolved, nil
}

func resolveExerciseIDByName(tx *gorm.DB, name string) (uuid.UUID, error) {
	var exerciseModel model.ExerciseModel
	result := tx.Select("id").Where("name = ?", name).First(&exerciseModel)
	if result.Error == nil {
		return exerciseModel.ID, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return uuid.Nil, result.Error
	}

	now := time.Now().UTC()
	created := model.ExerciseModel{
		ID:            uuid.New(),
		Name:          name,
		Type:          "other",
		Description:   "ユーザーが追加した種目: " + name,
		TargetMuscles: []string{"その他"},
		Difficulty:    "beginner",
		Equipment:     "other",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tx.Create(&created).Error; err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
