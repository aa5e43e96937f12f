package profiles

// ProfileRequest is the body of POST /profile.
// Required fields are pointers tagged `required` so that presence is checked, not
// value: `0` screen-time hours and empty strings are accepted.
type ProfileRequest struct {
	Occupation          *string `json:"occupation" validate:"required" example:"Software engineer"`
	AverageScreenTime   *int    `json:"average_screen_time" validate:"required" example:"9"`
	GlassesUser         *string `json:"glasses_user" validate:"required" example:"yes"`
	LensPower           *string `json:"lens_power" example:"-1.25"`
	LightingEnvironment *string `json:"lighting_environment" validate:"required" example:"artificial"`
	WorkEnvironment     *string `json:"work_environment" validate:"required" example:"office"`
	DietHabits          *string `json:"diet_habits" validate:"required" example:"balanced"`
	EyePainOrHeadache   *string `json:"eye_pain_or_headache" validate:"required" example:"sometimes"`
	SleepHours          *int    `json:"sleep_hours" validate:"required" example:"7"`
	MedicalHistory      *string `json:"medical_history"`
	Smoker              *string `json:"smoker" example:"no"`
	AlcoholConsumption  *string `json:"alcohol_consumption" example:"occasionally"`
	ExerciseFrequency   *string `json:"exercise_frequency" example:"weekly"`
	WaterIntake         *string `json:"water_intake" example:"2l"`
}

// Fields converts a validated request into the stored attributes.
// It must only be called after validation: required pointers are dereferenced.
func (r *ProfileRequest) Fields() Fields {
	return Fields{
		Occupation:          *r.Occupation,
		AverageScreenTime:   *r.AverageScreenTime,
		GlassesUser:         *r.GlassesUser,
		LensPower:           r.LensPower,
		LightingEnvironment: *r.LightingEnvironment,
		WorkEnvironment:     *r.WorkEnvironment,
		DietHabits:          *r.DietHabits,
		EyePainOrHeadache:   *r.EyePainOrHeadache,
		SleepHours:          *r.SleepHours,
		MedicalHistory:      r.MedicalHistory,
		Smoker:              r.Smoker,
		AlcoholConsumption:  r.AlcoholConsumption,
		ExerciseFrequency:   r.ExerciseFrequency,
		WaterIntake:         r.WaterIntake,
	}
}
