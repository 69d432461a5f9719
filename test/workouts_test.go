//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"net/url"

	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workoutResponse struct {
	Workout workouts.Workout `json:"workout"`
}

type workoutsListResponse struct {
	Workouts []workouts.Workout `json:"workouts"`
	Total    int                `json:"total"`
}

func (s *IntegrationTestSuite) systemExerciseID(ctx context.Context, token, name string) string {
	var resp struct {
		Exercises []exercises.Exercise `json:"exercises"`
	}
	s.doJSON(ctx, http.MethodGet, "/api/exercises?search="+url.QueryEscape(name), token, nil, http.StatusOK, &resp)
	for _, e := range resp.Exercises {
		if e.Name == name {
			require.False(s.T(), e.IsCustom)
			return e.ID
		}
	}
	s.T().Fatalf("system exercise [%s] not found", name)
	return ""
}

func (s *IntegrationTestSuite) TestLegDayEndToEnd() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, token := s.newUser(ctx)
	squatID := s.systemExerciseID(ctx, token, "Barbell Squat")

	var created workoutResponse
	s.doJSON(ctx, http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Leg Day",
		"date": "2024-01-01",
		"sets": []map[string]any{
			{"exerciseId": squatID, "setNumber": 1, "reps": 5, "weight": 270, "weightUnit": "lbs"},
		},
	}, http.StatusCreated, &created)

	require.NotEmpty(t, created.Workout.ID)
	assert.Equal(t, "Leg Day", created.Workout.Name)
	assert.Equal(t, "2024-01-01", created.Workout.Date.String())
	require.Len(t, created.Workout.Sets, 1)
	assert.Equal(t, 1, created.Workout.Sets[0].SetNumber)
	assert.Equal(t, 5, created.Workout.Sets[0].Reps)
	assert.Equal(t, 270.0, created.Workout.Sets[0].Weight)
	assert.Equal(t, workouts.UnitLbs, created.Workout.Sets[0].WeightUnit)
	require.NotNil(t, created.Workout.Sets[0].Exercise)
	assert.Equal(t, "Barbell Squat", created.Workout.Sets[0].Exercise.Name)

	var volume struct {
		VolumeData []analytics.VolumePoint `json:"volumeData"`
	}
	s.doJSON(ctx, http.MethodGet, "/api/analytics/volume?exerciseId="+squatID, token, nil, http.StatusOK, &volume)
	require.Len(t, volume.VolumeData, 1)
	assert.Equal(t, "2024-01-01", volume.VolumeData[0].Date.String())
	assert.Equal(t, 1350.0, volume.VolumeData[0].Volume)
	assert.Equal(t, 1, volume.VolumeData[0].Sets)

	var records struct {
		PersonalRecords []analytics.PersonalRecord `json:"personalRecords"`
	}
	s.doJSON(ctx, http.MethodGet, "/api/analytics/personal-records", token, nil, http.StatusOK, &records)
	require.Len(t, records.PersonalRecords, 1)
	assert.Equal(t, squatID, records.PersonalRecords[0].ExerciseID)
	assert.Equal(t, 270.0, records.PersonalRecords[0].MaxWeight)
	assert.Equal(t, 5, records.PersonalRecords[0].Reps)

	var summary struct {
		Summary analytics.Summary `json:"summary"`
	}
	s.doJSON(ctx, http.MethodGet, "/api/analytics/summary", token, nil, http.StatusOK, &summary)
	assert.Equal(t, 1, summary.Summary.TotalWorkouts)
	assert.Equal(t, 1, summary.Summary.UniqueExercises)
	require.NotNil(t, summary.Summary.LastWorkout)
	assert.Equal(t, "Leg Day", summary.Summary.LastWorkout.Name)
}

func (s *IntegrationTestSuite) TestWorkoutLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, token := s.newUser(ctx)
	benchID := s.systemExerciseID(ctx, token, "Barbell Bench Press")
	rowID := s.systemExerciseID(ctx, token, "Barbell Row")

	var created workoutResponse
	s.doJSON(ctx, http.MethodPost, "/api/workouts", token, map[string]any{
		"name":            "Upper",
		"date":            "2024-02-10",
		"durationMinutes": 55,
		"sets": []map[string]any{
			{"exerciseId": rowID, "setNumber": 3, "reps": 8, "weight": 60, "weightUnit": "kg"},
			{"exerciseId": benchID, "setNumber": 1, "reps": 5, "weight": 100, "weightUnit": "kg"},
			{"exerciseId": benchID, "setNumber": 2, "reps": 5, "weight": 100},
		},
	}, http.StatusCreated, &created)

	require.Len(t, created.Workout.Sets, 3)
	for i, set := range created.Workout.Sets {
		assert.Equal(t, i+1, set.SetNumber)
	}
	assert.Equal(t, benchID, created.Workout.Sets[0].ExerciseID)
	assert.Equal(t, workouts.UnitLbs, created.Workout.Sets[1].WeightUnit)
	assert.Equal(t, rowID, created.Workout.Sets[2].ExerciseID)
	assert.Equal(t, 3, s.countRows(`SELECT count(*) FROM workout_sets WHERE workout_id = $1`, created.Workout.ID))

	// reads without mutation in between are identical
	var first, second workoutResponse
	s.doJSON(ctx, http.MethodGet, "/api/workouts/"+created.Workout.ID, token, nil, http.StatusOK, &first)
	s.doJSON(ctx, http.MethodGet, "/api/workouts/"+created.Workout.ID, token, nil, http.StatusOK, &second)
	assert.Equal(t, first, second)

	var updated workoutResponse
	s.doJSON(ctx, http.MethodPut, "/api/workouts/"+created.Workout.ID, token, map[string]any{
		"name": "Upper (light)",
		"date": "2024-02-11",
		"sets": []map[string]any{
			{"exerciseId": benchID, "setNumber": 1, "reps": 10, "weight": 60, "weightUnit": "kg"},
		},
	}, http.StatusOK, &updated)
	assert.Equal(t, "Upper (light)", updated.Workout.Name)
	assert.Equal(t, "2024-02-11", updated.Workout.Date.String())
	require.Len(t, updated.Workout.Sets, 1)
	assert.Equal(t, 1, s.countRows(`SELECT count(*) FROM workout_sets WHERE workout_id = $1`, created.Workout.ID))

	var list workoutsListResponse
	s.doJSON(ctx, http.MethodGet, "/api/workouts?startDate=2024-02-01&endDate=2024-02-28", token, nil, http.StatusOK, &list)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Workouts, 1)
	assert.Equal(t, created.Workout.ID, list.Workouts[0].ID)

	resp, body := s.do(ctx, http.MethodDelete, "/api/workouts/"+created.Workout.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Workout deleted successfully"}`, string(body))

	// sets go with the workout
	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM workout_sets WHERE workout_id = $1`, created.Workout.ID))

	resp, _ = s.do(ctx, http.MethodGet, "/api/workouts/"+created.Workout.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestWorkoutValidationAndIsolation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, ownerToken := s.newUser(ctx)
	_, otherToken := s.newUser(ctx)
	squatID := s.systemExerciseID(ctx, ownerToken, "Barbell Squat")

	resp, body := s.do(ctx, http.MethodPost, "/api/workouts", ownerToken, map[string]any{
		"name": "No sets",
		"date": "2024-03-01",
		"sets": []map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = s.do(ctx, http.MethodPost, "/api/workouts", ownerToken, map[string]any{
		"name": "Unknown exercise",
		"date": "2024-03-01",
		"sets": []map[string]any{
			{"exerciseId": "does-not-exist", "setNumber": 1, "reps": 5, "weight": 100},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM workouts WHERE name = 'Unknown exercise'`))

	var created workoutResponse
	s.doJSON(ctx, http.MethodPost, "/api/workouts", ownerToken, map[string]any{
		"name": "Private",
		"date": "2024-03-01",
		"sets": []map[string]any{
			{"exerciseId": squatID, "setNumber": 1, "reps": 5, "weight": 100},
		},
	}, http.StatusCreated, &created)

	resp, _ = s.do(ctx, http.MethodGet, "/api/workouts/"+created.Workout.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(ctx, http.MethodDelete, "/api/workouts/"+created.Workout.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(ctx, http.MethodPut, "/api/workouts/"+created.Workout.ID, otherToken, map[string]any{
		"name": "Hijacked",
		"date": "2024-03-01",
		"sets": []map[string]any{
			{"exerciseId": squatID, "setNumber": 1, "reps": 5, "weight": 100},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var otherList workoutsListResponse
	s.doJSON(ctx, http.MethodGet, "/api/workouts", otherToken, nil, http.StatusOK, &otherList)
	assert.Equal(t, 0, otherList.Total)
	assert.Empty(t, otherList.Workouts)
}
