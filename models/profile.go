package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is the user's body-composition goal chosen at onboarding.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight" // Calorie deficit
	GoalGainMuscle Goal = "gain_muscle" // Calorie surplus
	GoalMaintain   Goal = "maintain"    // Maintenance calories
)

// Gender drives the constant offset of the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile represents the structure for the 'user_profiles' table.
// There is exactly one profile per user, created when onboarding completes.
type UserProfile struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	UserID                uuid.UUID  `json:"user_id" db:"user_id"`                                           // Owner, immutable once created
	Goal                  Goal       `json:"goal" db:"goal"`                                                 // lose_weight, gain_muscle, maintain
	CurrentWeight         float64    `json:"current_weight" db:"current_weight"`                             // kg, as entered at onboarding or in settings
	TargetWeight          float64    `json:"target_weight" db:"target_weight"`                               // kg
	Height                float64    `json:"height" db:"height"`                                             // cm
	Age                   int        `json:"age" db:"age"`                                                   // years
	Gender                Gender     `json:"gender" db:"gender"`                                             // male, female, other
	OnboardingCompleted   bool       `json:"onboarding_completed" db:"onboarding_completed"`                 // Set once onboarding is done
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty" db:"onboarding_completed_at"` // NULL until completed
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// --- DTOs ---

// OnboardingRequest is the body sent when the user finishes onboarding.
// The current weight also becomes the first weight history entry.
type OnboardingRequest struct {
	Goal          Goal    `json:"goal" validate:"required,oneof=lose_weight gain_muscle maintain"`
	CurrentWeight float64 `json:"current_weight" validate:"required,gt=0,lt=500"`
	TargetWeight  float64 `json:"target_weight" validate:"required,gt=0,lt=500"`
	Height        float64 `json:"height" validate:"required,gt=0,lt=300"`
	Age           int     `json:"age" validate:"required,gt=0,lt=130"`
	Gender        Gender  `json:"gender" validate:"required,oneof=male female other"`
}

// UpdateProfileRequest defines the settings screen update.
// All fields are optional, only provided fields will be updated.
type UpdateProfileRequest struct {
	Goal          *Goal    `json:"goal,omitempty" validate:"omitempty,oneof=lose_weight gain_muscle maintain"`
	CurrentWeight *float64 `json:"current_weight,omitempty" validate:"omitempty,gt=0,lt=500"`
	TargetWeight  *float64 `json:"target_weight,omitempty" validate:"omitempty,gt=0,lt=500"`
	Height        *float64 `json:"height,omitempty" validate:"omitempty,gt=0,lt=300"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,gt=0,lt=130"`
	Gender        *Gender  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}
