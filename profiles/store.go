package profiles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/visiontest-go/apperror"
)

const profileColumns = `id, user_id, occupation, average_screen_time, glasses_user, lens_power,
	lighting_environment, work_environment, diet_habits, eye_pain_or_headache, sleep_hours,
	medical_history, smoker, alcohol_consumption, exercise_frequency, water_intake`

// upsertQuery inserts the profile or, when the user already has one, overwrites
// every attribute in place. The row keeps its id.
const upsertQuery = `
	INSERT INTO profile (user_id, occupation, average_screen_time, glasses_user, lens_power,
		lighting_environment, work_environment, diet_habits, eye_pain_or_headache, sleep_hours,
		medical_history, smoker, alcohol_consumption, exercise_frequency, water_intake)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (user_id) DO UPDATE SET
		occupation           = EXCLUDED.occupation,
		average_screen_time  = EXCLUDED.average_screen_time,
		glasses_user         = EXCLUDED.glasses_user,
		lens_power           = EXCLUDED.lens_power,
		lighting_environment = EXCLUDED.lighting_environment,
		work_environment     = EXCLUDED.work_environment,
		diet_habits          = EXCLUDED.diet_habits,
		eye_pain_or_headache = EXCLUDED.eye_pain_or_headache,
		sleep_hours          = EXCLUDED.sleep_hours,
		medical_history      = EXCLUDED.medical_history,
		smoker               = EXCLUDED.smoker,
		alcohol_consumption  = EXCLUDED.alcohol_consumption,
		exercise_frequency   = EXCLUDED.exercise_frequency,
		water_intake         = EXCLUDED.water_intake
	RETURNING ` + profileColumns

// Store reads and writes the `profile` table.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetProfileByUserID returns the user's profile, or (nil, nil) when there is none.
func (s *Store) GetProfileByUserID(ctx context.Context, userID int) (*Profile, error) {
	row := s.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get profile", err)
	}
	return p, nil
}

// UpsertProfile creates the user's profile or fully overwrites the existing one,
// inside a single transaction.
func (s *Store) UpsertProfile(ctx context.Context, userID int, f Fields) (*Profile, error) {
	var p *Profile
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var err error
		p, err = scanProfile(tx.QueryRow(ctx, upsertQuery,
			userID, f.Occupation, f.AverageScreenTime, f.GlassesUser, f.LensPower,
			f.LightingEnvironment, f.WorkEnvironment, f.DietHabits, f.EyePainOrHeadache, f.SleepHours,
			f.MedicalHistory, f.Smoker, f.AlcoholConsumption, f.ExerciseFrequency, f.WaterIntake,
		))
		return err
	})
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to save profile", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Occupation, &p.AverageScreenTime, &p.GlassesUser, &p.LensPower,
		&p.LightingEnvironment, &p.WorkEnvironment, &p.DietHabits, &p.EyePainOrHeadache, &p.SleepHours,
		&p.MedicalHistory, &p.Smoker, &p.AlcoholConsumption, &p.ExerciseFrequency, &p.WaterIntake,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
