package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"fittrack/backend/aiclient"
	"fittrack/backend/mealplan"
	"fittrack/backend/metrics"
	"fittrack/backend/models"
	"fittrack/backend/nutrition"
	"fittrack/backend/planstore"
)

// ErrAIPlanFailed wraps every error of the remote completion path.
var ErrAIPlanFailed = errors.New("AI meal plan generation failed")

// AIPlanner produces a weekly plan from the remote completion service.
type AIPlanner interface {
	GenerateMealPlan(ctx context.Context, req aiclient.PlanRequest) (*models.AIPlanResponse, error)
}

// LocalPlanner produces plans from the built-in catalog.
type LocalPlanner interface {
	GenerateWeeklyMealPlanExcluding(dailyCalories, numMeals, numSnacks int, dietaryType models.DietaryType, exclusions []string) models.WeeklyPlan
	GenerateDailyPlan(profile models.UserProfile, currentWeight float64, diet models.CatalogDiet) models.DailyPlan
}

type profileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

type latestWeightGetter interface {
	LatestEntry(ctx context.Context, userID uuid.UUID) (*models.WeightEntry, error)
}

type preferencesGetter interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.MealPreferences, error)
}

// PlanDeps groups the collaborators of PlanService.
type PlanDeps struct {
	Profiles    profileGetter
	Weights     latestWeightGetter
	Preferences preferencesGetter
	AI          AIPlanner
	Local       LocalPlanner
	Strategy    nutrition.Strategy
	Store       planstore.PlanStore
}

// PlanService orchestrates meal plan generation: AI first, local catalog as
// the single fallback.
type PlanService struct {
	deps PlanDeps

	mu    sync.Mutex // guards users and every userRequests.latest/refs
	users map[uuid.UUID]*userRequests
}

// userRequests tracks the generations in flight for one user. saveMu
// serialises that user's check-and-save so other users never wait on it.
type userRequests struct {
	saveMu sync.Mutex
	latest uuid.UUID // most recent request id
	refs   int       // requests between begin and finish
}

func NewPlanService(deps PlanDeps) *PlanService {
	if deps.Strategy == nil {
		deps.Strategy = nutrition.MifflinStJeor{}
	}
	if deps.Store == nil {
		deps.Store = planstore.NewMemoryStore()
	}
	return &PlanService{deps: deps, users: make(map[uuid.UUID]*userRequests)}
}

type planInputs struct {
	profile     models.UserProfile
	weight      float64
	preferences models.MealPreferences
}

// loadInputs reads the profile (required), the latest weight (falling back to
// the profile's current weight) and the preferences (defaults when absent).
func (s *PlanService) loadInputs(ctx context.Context, userID uuid.UUID) (*planInputs, error) {
	profile, err := s.deps.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	weight := profile.CurrentWeight
	entry, err := s.deps.Weights.LatestEntry(ctx, userID)
	switch {
	case err == nil:
		weight = entry.Weight
	case errors.Is(err, ErrWeightEntryNotFound):
	default:
		return nil, err
	}

	prefs, err := s.deps.Preferences.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := nutrition.ValidateInputs(*profile, weight); err != nil {
		log.Printf("Cannot compute target for user %s: %v", userID, err)
		return nil, err
	}
	return &planInputs{profile: *profile, weight: weight, preferences: *prefs}, nil
}

// Target computes the daily target of the user. An empty strategy name uses
// the service's configured strategy.
func (s *PlanService) Target(ctx context.Context, userID uuid.UUID, strategyName string) (*models.NutritionalTarget, error) {
	strategy := s.deps.Strategy
	if strategyName != "" {
		var err error
		if strategy, err = nutrition.Lookup(strategyName); err != nil {
			return nil, err
		}
	}
	in, err := s.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	target := strategy.Target(in.profile, in.weight)
	return &target, nil
}

func planRequest(in *planInputs, target models.NutritionalTarget) aiclient.PlanRequest {
	return aiclient.PlanRequest{
		Goal:          in.profile.Goal,
		CurrentWeight: in.weight,
		TargetWeight:  in.profile.TargetWeight,
		Height:        in.profile.Height,
		Age:           in.profile.Age,
		Gender:        in.profile.Gender,
		DailyCalories: target.Calories,
		Protein:       target.Protein,
		Carbs:         target.Carbs,
		Fats:          target.Fats,
		DietaryType:   in.preferences.DietaryType,
		Allergies:     in.preferences.Allergies,
		Dislikes:      in.preferences.Dislikes,
		DailyMeals:    in.preferences.DailyMeals,
		SnacksPerDay:  in.preferences.SnacksPerDay,
		CookingTime:   in.preferences.CookingTimePreference,
		BudgetLevel:   in.preferences.BudgetLevel,
	}
}

// Generate never fails because of the AI path: any AI error triggers exactly
// one local generation tagged with the failure reason. A result whose request
// was overtaken by a newer one for the same user is returned with Superseded
// set and is not stored.
func (s *PlanService) Generate(ctx context.Context, userID uuid.UUID) (*models.GeneratedPlan, error) {
	in, err := s.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	target := s.deps.Strategy.Target(in.profile, in.weight)

	requestID := s.begin(userID)
	log.Printf("Generating meal plan %s for user %s (%d kcal)", requestID, userID, target.Calories)

	plan := &models.GeneratedPlan{
		RequestID: requestID,
		UserID:    userID,
		Target:    target,
	}

	aiPlan, aiErr := s.deps.AI.GenerateMealPlan(ctx, planRequest(in, target))
	if aiErr == nil {
		metrics.AIPlanSuccess.Add(1)
		plan.Source = models.PlanSourceAI
		plan.WeeklyPlan = aiPlan.WeeklyPlan
		plan.ShoppingList = aiPlan.ShoppingList
		if len(plan.ShoppingList) == 0 {
			plan.ShoppingList = mealplan.GenerateShoppingList(plan.WeeklyPlan)
		}
	} else {
		metrics.AIPlanFailure.Add(1)
		metrics.LocalFallback.Add(1)
		log.Printf("AI plan failed for request %s, using local generator: %v", requestID, aiErr)

		exclusions := append(append([]string{}, in.preferences.Allergies...), in.preferences.Dislikes...)
		week := s.deps.Local.GenerateWeeklyMealPlanExcluding(
			target.Calories, in.preferences.DailyMeals, in.preferences.SnacksPerDay, in.preferences.DietaryType, exclusions)

		plan.Source = models.PlanSourceLocal
		plan.FallbackReason = aiErr.Error()
		plan.WeeklyPlan = week
		plan.ShoppingList = mealplan.GenerateShoppingList(week)
	}
	plan.GeneratedAt = time.Now().UTC()

	s.finish(ctx, plan)
	return plan, nil
}

// GenerateAIOnly calls the AI path without fallback and without touching the
// latest plan.
func (s *PlanService) GenerateAIOnly(ctx context.Context, userID uuid.UUID) (*models.AIPlanResponse, error) {
	in, err := s.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	target := s.deps.Strategy.Target(in.profile, in.weight)

	resp, err := s.deps.AI.GenerateMealPlan(ctx, planRequest(in, target))
	if err != nil {
		metrics.AIPlanFailure.Add(1)
		return nil, fmt.Errorf("%w: %w", ErrAIPlanFailed, err)
	}
	metrics.AIPlanSuccess.Add(1)
	return resp, nil
}

// DailyPlan picks the closest catalog meal per slot for the user's
// weight-based target. An empty diet follows the user's dietary preference.
func (s *PlanService) DailyPlan(ctx context.Context, userID uuid.UUID, diet models.CatalogDiet) (*models.DailyPlan, error) {
	in, err := s.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if diet == "" {
		diet = in.preferences.DietaryType.CatalogDiet()
	}
	plan := s.deps.Local.GenerateDailyPlan(in.profile, in.weight, diet)
	log.Printf("Daily plan for user %s (%s): %d kcal selected for a %d kcal target", userID, diet, plan.Totals.Calories, plan.Target.Calories)
	return &plan, nil
}

// Latest returns the user's last accepted plan.
func (s *PlanService) Latest(ctx context.Context, userID uuid.UUID) (*models.GeneratedPlan, error) {
	return s.deps.Store.Latest(ctx, userID)
}

func (s *PlanService) begin(userID uuid.UUID) uuid.UUID {
	requestID := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = &userRequests{}
		s.users[userID] = u
	}
	u.latest = requestID
	u.refs++
	return requestID
}

// finish stores plan if its request is still the user's most recent one.
// The check and the save run under the user's saveMu, so an older result can
// never overwrite a newer one while saves for other users proceed.
func (s *PlanService) finish(ctx context.Context, plan *models.GeneratedPlan) {
	s.mu.Lock()
	u := s.users[plan.UserID]
	s.mu.Unlock()

	u.saveMu.Lock()
	s.save(ctx, u, plan)
	u.saveMu.Unlock()

	s.mu.Lock()
	u.refs--
	if u.refs == 0 {
		delete(s.users, plan.UserID)
	}
	s.mu.Unlock()
}

func (s *PlanService) save(ctx context.Context, u *userRequests, plan *models.GeneratedPlan) {
	s.mu.Lock()
	current := u.latest == plan.RequestID
	s.mu.Unlock()

	if !current {
		plan.Superseded = true
		metrics.PlanSuperseded.Add(1)
		log.Printf("Meal plan %s for user %s superseded by a newer request, not stored", plan.RequestID, plan.UserID)
		return
	}

	if err := s.deps.Store.Save(ctx, plan); err != nil {
		log.Printf("Error storing meal plan %s for user %s: %v", plan.RequestID, plan.UserID, err)
		return
	}
	log.Printf("Meal plan %s stored for user %s (source %s)", plan.RequestID, plan.UserID, plan.Source)
}
