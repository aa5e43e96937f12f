// Package profiles manages the one-to-one extended attributes of a user:
// occupation, screen-time habits and lifestyle factors collected before a vision test.
package profiles

// Fields are the descriptive attributes of a profile. An upsert writes every one of
// them, so a nil optional field clears the stored value.
type Fields struct {
	Occupation          string  `json:"occupation" example:"Software engineer"`
	AverageScreenTime   int     `json:"average_screen_time" example:"9"`
	GlassesUser         string  `json:"glasses_user" example:"yes"`
	LensPower           *string `json:"lens_power" example:"-1.25"`
	LightingEnvironment string  `json:"lighting_environment" example:"artificial"`
	WorkEnvironment     string  `json:"work_environment" example:"office"`
	DietHabits          string  `json:"diet_habits" example:"balanced"`
	EyePainOrHeadache   string  `json:"eye_pain_or_headache" example:"sometimes"`
	SleepHours          int     `json:"sleep_hours" example:"7"`
	MedicalHistory      *string `json:"medical_history"`
	Smoker              *string `json:"smoker" example:"no"`
	AlcoholConsumption  *string `json:"alcohol_consumption" example:"occasionally"`
	ExerciseFrequency   *string `json:"exercise_frequency" example:"weekly"`
	WaterIntake         *string `json:"water_intake" example:"2l"`
}

// Profile is a row of the `profile` table. At most one exists per user.
type Profile struct {
	ID     int `json:"id" example:"1"`
	UserID int `json:"user_id" example:"1"`
	Fields
}
