package home

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/application/usecase/progress"
)

// WeeklyWorkoutTarget is the fixed number of planned workouts per week.
const WeeklyWorkoutTarget = 5

// GetHomeSummaryInput represents the input for the home summary.
type GetHomeSummaryInput struct {
	UserID uuid.UUID
}

// TodayWorkout describes the workout planned for today.
type TodayWorkout struct {
	Title     string            `json:"title"`
	Day       string            `json:"day"`
	Program   string            `json:"program"`
	Exercises []WorkoutExercise `json:"exercises"`
	Duration  string            `json:"duration"`
}

// WorkoutExercise is one planned exercise on the home screen.
type WorkoutExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// WeeklyProgress is the completed-vs-target session count for this week.
type WeeklyProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// RecentAchievement is the latest personal best for the reference exercise.
type RecentAchievement struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Value string `json:"value"`
}

// TrainingTip is a short advice snippet shown under the summary.
type TrainingTip struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// HomeScreenData is the home summary payload.
type HomeScreenData struct {
	TodayWorkout      TodayWorkout      `json:"todayWorkout"`
	WeeklyProgress    WeeklyProgress    `json:"weeklyProgress"`
	RecentAchievement RecentAchievement `json:"recentAchievement"`
	TrainingTip       TrainingTip       `json:"trainingTip"`
}

// GetHomeSummaryUseCase assembles the home screen payload.
type GetHomeSummaryUseCase struct {
	homeRepo HomeRepository
	now      func() time.Time
}

// NewGetHomeSummaryUseCase creates a new GetHomeSummaryUseCase instance.
// now is the clock used to resolve today; nil means time.Now.
func NewGetHomeSummaryUseCase(homeRepo HomeRepository, now func() time.Time) *GetHomeSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetHomeSummaryUseCase{
		homeRepo: homeRepo,
		now:      now,
	}
}

// Execute resolves today's training day for the user's plan and assembles
// the workout, weekly progress, and achievement sections. A missing plan and
// a rest day are modeled states, not errors.
func (uc *GetHomeSummaryUseCase) Execute(
	ctx context.Context,
	input GetHomeSummaryInput,
) (*HomeScreenData, error) {
	plan, err := uc.homeRepo.ActivePlan(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHomeError(
			domainerror.ErrCodeHomeInternalError,
			"failed to get training plan",
			err,
		)
	}
	if plan == nil {
		return noPlanData(), nil
	}

	now := uc.now()
	dayNumber := isoDayNumber(now)

	day, err := uc.homeRepo.TrainingDayByNumber(ctx, plan.ID, dayNumber)
	if err != nil {
		slog.WarnContext(ctx, "could not resolve today's training day, assuming rest day",
			slog.String("error", err.Error()))
		day = nil
	}
	if day == nil {
		return restDayData(plan.Name), nil
	}

	exercises := make([]WorkoutExercise, 0, len(day.Exercises))
	for _, planned := range day.Exercises {
		exercises = append(exercises, WorkoutExercise{
			Name: planned.Name,
			Sets: planned.SetCount,
			Reps: fmt.Sprintf("%d-%d", planned.RepMin, planned.RepMax),
		})
	}

	// Weekly progress counts sessions in the Sunday-start week containing
	// now. A failed count degrades to 0 instead of failing the request.
	weekStart, weekEnd := sundayWeekBounds(now)
	completed, err := uc.homeRepo.CountSessionsBetween(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		slog.WarnContext(ctx, "could not count weekly sessions, defaulting to 0",
			slog.String("error", err.Error()))
		completed = 0
	}

	achievement := uc.recentAchievement(ctx, input.UserID, now)

	return &HomeScreenData{
		TodayWorkout: TodayWorkout{
			Title:     day.Title,
			Day:       fmt.Sprintf("Day %d", day.DayNumber),
			Program:   plan.Name,
			Exercises: exercises,
			Duration:  durationLabel(day.EstimatedDuration),
		},
		WeeklyProgress: WeeklyProgress{
			Completed:  completed,
			Total:      WeeklyWorkoutTarget,
			Percentage: float64(completed) / float64(WeeklyWorkoutTarget) * 100,
		},
		RecentAchievement: achievement,
		TrainingTip: TrainingTip{
			Content:  "胸筋トレーニングでは、ベンチプレスの際に肩甲骨を寄せることで、より効果的に大胸筋を刺激することができます。",
			Category: "technique",
		},
	}, nil
}

// recentAchievement finds the all-time heaviest set for the reference
// exercise. Failures and missing data both degrade to the empty achievement.
func (uc *GetHomeSummaryUseCase) recentAchievement(ctx context.Context, userID uuid.UUID, now time.Time) RecentAchievement {
	best, err := uc.homeRepo.BestSetForExercise(ctx, userID, progress.ReferenceExercise)
	if err != nil {
		slog.WarnContext(ctx, "could not fetch recent achievement",
			slog.String("error", err.Error()))
		best = nil
	}
	if best == nil {
		return RecentAchievement{Title: "まだ達成記録がありません", Date: "今日", Value: ""}
	}
	return RecentAchievement{
		Title: best.ExerciseName + "自己ベスト更新",
		Date:  relativeDate(best.SessionStartTime, now),
		Value: best.Weight.String() + "kg",
	}
}

func noPlanData() *HomeScreenData {
	return &HomeScreenData{
		TodayWorkout: TodayWorkout{
			Title:     "プラン未設定",
			Day:       "-",
			Program:   "プランを設定してください",
			Exercises: []WorkoutExercise{},
			Duration:  "0分",
		},
		WeeklyProgress:    WeeklyProgress{},
		RecentAchievement: RecentAchievement{Title: "まだ達成記録がありません", Date: "-", Value: ""},
		TrainingTip: TrainingTip{
			Content:  "まずはトレーニングプランを設定しましょう！",
			Category: "setup",
		},
	}
}

func restDayData(programName string) *HomeScreenData {
	return &HomeScreenData{
		TodayWorkout: TodayWorkout{
			Title:     "休息日",
			Day:       "Rest Day",
			Program:   programName,
			Exercises: []WorkoutExercise{},
			Duration:  "0分",
		},
		WeeklyProgress:    WeeklyProgress{Completed: 0, Total: WeeklyWorkoutTarget, Percentage: 0},
		RecentAchievement: RecentAchievement{Title: "まだ達成記録がありません", Date: "今日", Value: ""},
		TrainingTip: TrainingTip{
			Content:  "休息日は筋肉の回復と成長に重要です。軽いストレッチやウォーキングがおすすめです。",
			Category: "recovery",
		},
	}
}

// isoDayNumber maps the weekday to the training-day numbering, Monday=1
// through Sunday=7.
func isoDayNumber(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// sundayWeekBounds returns the Sunday 00:00 start and Saturday end-of-day of
// the week containing t. This differs from the Monday-start week the progress
// chart uses; both follow the original client behavior.
func sundayWeekBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	return start, end
}

// durationLabel renders the estimated duration in minutes, "-分" when unset.
func durationLabel(minutes *int) string {
	if minutes == nil {
		return "-分"
	}
	return fmt.Sprintf("%d分", *minutes)
}

// relativeDate renders a session date as 今日, 昨日, or M/D.
func relativeDate(date, now time.Time) string {
	dateDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case dateDay.Equal(nowDay):
		return "今日"
	case dateDay.Equal(nowDay.AddDate(0, 0, -1)):
		return "昨日"
	default:
		return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
	}
}
