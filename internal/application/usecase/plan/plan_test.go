package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

type fakePlanRepo struct {
	createdPlan     *entity.TrainingPlan
	createdDays     []entity.TrainingDay
	updatedDay      *entity.TrainingDay
	catalogByName   map[string]uuid.UUID
	createdExercise *entity.Exercise
	failWith        error
}

func (f *fakePlanRepo) CreatePlan(_ context.Context, plan entity.TrainingPlan, days []entity.TrainingDay) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.createdPlan = &plan
	f.createdDays = days
	return nil
}

func (f *fakePlanRepo) GetPlan(_ context.Context, _, _ uuid.UUID) (*entity.TrainingPlan, []entity.TrainingDay, error) {
	if f.failWith != nil {
		return nil, nil, f.failWith
	}
	if f.createdPlan == nil {
		return nil, nil, domainerror.ErrPlanNotFound
	}
	return f.createdPlan, f.createdDays, nil
}

func (f *fakePlanRepo) ListPlans(_ context.Context, _ uuid.UUID) ([]entity.TrainingPlan, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.createdPlan == nil {
		return []entity.TrainingPlan{}, nil
	}
	return []entity.TrainingPlan{*f.createdPlan}, nil
}

func (f *fakePlanRepo) UpdatePlan(_ context.Context, _ uuid.UUID, plan entity.TrainingPlan, days []entity.TrainingDay) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.createdPlan = &plan
	f.createdDays = days
	return nil
}

func (f *fakePlanRepo) UpdateDay(_ context.Context, _ uuid.UUID, day entity.TrainingDay) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.updatedDay = &day
	return nil
}

func (f *fakePlanRepo) DeletePlan(_ context.Context, _, _ uuid.UUID) error {
	return f.failWith
}

func (f *fakePlanRepo) FindExerciseIDByName(_ context.Context, name string) (uuid.UUID, bool, error) {
	id, ok := f.catalogByName[name]
	return id, ok, nil
}

func (f *fakePlanRepo) CreateExercise(_ context.Context, exercise entity.Exercise) error {
	f.createdExercise = &exercise
	return nil
}

func TestCreatePlanUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	duration := 60

	t.Run("creates a plan with parsed rep ranges", func(t *testing.T) {
		repo := &fakePlanRepo{}
		uc := NewCreatePlanUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), CreatePlanInput{
			UserID: userID,
			Name:   "筋肥大プログラム",
			TrainingDays: []TrainingDayInput{
				{
					DayNumber:         1,
					Title:             "胸",
					EstimatedDuration: &duration,
					Exercises: []PlannedExerciseInput{
						{ExerciseID: uuid.New(), Name: "ベンチプレス", Sets: 4, Reps: "8-12"},
						{ExerciseID: uuid.New(), Name: "ダンベルフライ", Sets: 3, Reps: "12"},
					},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.PlanID == uuid.Nil {
			t.Error("expected a plan id")
		}

		if repo.createdPlan == nil || repo.createdPlan.Name != "筋肥大プログラム" {
			t.Fatalf("unexpected created plan: %+v", repo.createdPlan)
		}
		if len(repo.createdDays) != 1 || len(repo.createdDays[0].Exercises) != 2 {
			t.Fatalf("unexpected created days: %+v", repo.createdDays)
		}
		first := repo.createdDays[0].Exercises[0]
		if first.RepMin != 8 || first.RepMax != 12 {
			t.Errorf("expected reps 8-12, got %d-%d", first.RepMin, first.RepMax)
		}
		second := repo.createdDays[0].Exercises[1]
		if second.RepMin != 12 || second.RepMax != 12 {
			t.Errorf("expected reps 12-12, got %d-%d", second.RepMin, second.RepMax)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreatePlanUseCase(&fakePlanRepo{}, nil)
		_, err := uc.Execute(context.Background(), CreatePlanInput{UserID: userID})

		var planErr *domainerror.PlanError
		if !errors.As(err, &planErr) {
			t.Fatalf("expected PlanError, got %v", err)
		}
		if planErr.Code != domainerror.ErrCodePlanNameRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePlanNameRequired, planErr.Code)
		}
	})

	t.Run("rejects a day number outside 1-7", func(t *testing.T) {
		uc := NewCreatePlanUseCase(&fakePlanRepo{}, nil)
		_, err := uc.Execute(context.Background(), CreatePlanInput{
			UserID: userID,
			Name:   "plan",
			TrainingDays: []TrainingDayInput{
				{DayNumber: 8, Title: "invalid"},
			},
		})

		var planErr *domainerror.PlanError
		if !errors.As(err, &planErr) {
			t.Fatalf("expected PlanError, got %v", err)
		}
		if planErr.Code != domainerror.ErrCodeInvalidDayNumber {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDayNumber, planErr.Code)
		}
	})
}

func TestGetPlanUseCase_NotFound(t *testing.T) {
	uc := NewGetPlanUseCase(&fakePlanRepo{})

	_, err := uc.Execute(context.Background(), GetPlanInput{UserID: uuid.New(), PlanID: uuid.New()})

	var planErr *domainerror.PlanError
	if !errors.As(err, &planErr) {
		t.Fatalf("expected PlanError, got %v", err)
	}
	if planErr.Code != domainerror.ErrCodePlanNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodePlanNotFound, planErr.Code)
	}
}

func TestListPlansUseCase_EmptyIsNotAnError(t *testing.T) {
	uc := NewListPlansUseCase(&fakePlanRepo{})

	output, err := uc.Execute(context.Background(), ListPlansInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Plans) != 0 {
		t.Errorf("expected no plans, got %d", len(output.Plans))
	}
}

func TestUpdateDayUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	dayID := uuid.New()

	t.Run("resolves a temp exercise by name", func(t *testing.T) {
		knownID := uuid.New()
		repo := &fakePlanRepo{catalogByName: map[string]uuid.UUID{"スクワット": knownID}}
		uc := NewUpdateDayUseCase(repo)

		err := uc.Execute(context.Background(), UpdateDayInput{
			UserID: userID,
			DayID:  dayID,
			Title:  "脚",
			Exercises: []PlannedExerciseInput{
				{Name: "スクワット", Sets: 5, Reps: "5"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.updatedDay == nil {
			t.Fatal("expected the day to be updated")
		}
		if repo.updatedDay.Exercises[0].ExerciseID != knownID {
			t.Errorf("expected resolved exercise id %s, got %s", knownID, repo.updatedDay.Exercises[0].ExerciseID)
		}
		if repo.createdExercise != nil {
			t.Error("expected no catalog exercise to be created")
		}
	})

	t.Run("creates a catalog entry for an unknown exercise", func(t *testing.T) {
		repo := &fakePlanRepo{catalogByName: map[string]uuid.UUID{}}
		uc := NewUpdateDayUseCase(repo)

		err := uc.Execute(context.Background(), UpdateDayInput{
			UserID: userID,
			DayID:  dayID,
			Title:  "脚",
			Exercises: []PlannedExerciseInput{
				{Name: "ブルガリアンスクワット", Sets: 3, Reps: "10-12"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.createdExercise == nil {
			t.Fatal("expected a catalog exercise to be created")
		}
		if repo.createdExercise.Name != "ブルガリアンスクワット" {
			t.Errorf("unexpected exercise name %q", repo.createdExercise.Name)
		}
		if repo.createdExercise.Type != "other" || repo.createdExercise.Difficulty != "beginner" {
			t.Errorf("expected default catalog fields, got %+v", repo.createdExercise)
		}
		if repo.updatedDay.Exercises[0].ExerciseID != repo.createdExercise.ID {
			t.Error("expected the planned exercise to reference the created catalog entry")
		}
	})

	t.Run("missing day maps to a not-found error", func(t *testing.T) {
		repo := &fakePlanRepo{failWith: domainerror.ErrTrainingDayNotFound}
		uc := NewUpdateDayUseCase(repo)

		err := uc.Execute(context.Background(), UpdateDayInput{UserID: userID, DayID: dayID})

		var planErr *domainerror.PlanError
		if !errors.As(err, &planErr) {
			t.Fatalf("expected PlanError, got %v", err)
		}
		if planErr.Code != domainerror.ErrCodeTrainingDayNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTrainingDayNotFound, planErr.Code)
		}
	})
}

func TestDeletePlanUseCase_NotFound(t *testing.T) {
	uc := NewDeletePlanUseCase(&fakePlanRepo{failWith: domainerror.ErrPlanNotFound})

	err := uc.Execute(context.Background(), DeletePlanInput{UserID: uuid.New(), PlanID: uuid.New()})

	var planErr *domainerror.PlanError
	if !errors.As(err, &planErr) {
		t.Fatalf("expected PlanError, got %v", err)
	}
	if planErr.Code != domainerror.ErrCodePlanNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodePlanNotFound, planErr.Code)
	}
}
