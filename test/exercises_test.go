//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/exercises"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exerciseResponse struct {
	Exercise exercises.Exercise `json:"exercise"`
}

type exercisesListResponse struct {
	Exercises []exercises.Exercise `json:"exercises"`
}

func (s *IntegrationTestSuite) TestCustomExercises() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	owner, token := s.newUser(ctx)
	_, otherToken := s.newUser(ctx)

	var created exerciseResponse
	s.doJSON(ctx, http.MethodPost, "/api/exercises", token, map[string]any{
		"name":         "Sled Push",
		"category":     "strength",
		"muscleGroups": []string{"quads", "glutes"},
		"equipment":    "sled",
	}, http.StatusCreated, &created)
	assert.True(t, created.Exercise.IsCustom)
	require.NotNil(t, created.Exercise.UserID)
	assert.Equal(t, owner.ID, *created.Exercise.UserID)

	// visible to the owner only
	var ownerList, otherList exercisesListResponse
	s.doJSON(ctx, http.MethodGet, "/api/exercises?muscleGroup=quads", token, nil, http.StatusOK, &ownerList)
	s.doJSON(ctx, http.MethodGet, "/api/exercises?muscleGroup=quads", otherToken, nil, http.StatusOK, &otherList)
	assert.True(t, containsExercise(ownerList.Exercises, created.Exercise.ID))
	assert.False(t, containsExercise(otherList.Exercises, created.Exercise.ID))
	assert.NotEmpty(t, otherList.Exercises, "system exercises are shared")

	resp, _ := s.do(ctx, http.MethodPut, "/api/exercises/"+created.Exercise.ID, otherToken, map[string]any{
		"name":         "Stolen",
		"category":     "strength",
		"muscleGroups": []string{"quads"},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var updated exerciseResponse
	s.doJSON(ctx, http.MethodPut, "/api/exercises/"+created.Exercise.ID, token, map[string]any{
		"name":         "Heavy Sled Push",
		"category":     "strength",
		"muscleGroups": []string{"quads"},
	}, http.StatusOK, &updated)
	assert.Equal(t, "Heavy Sled Push", updated.Exercise.Name)

	// system exercises are read-only
	squatID := s.systemExerciseID(ctx, token, "Barbell Squat")
	resp, _ = s.do(ctx, http.MethodDelete, "/api/exercises/"+squatID, token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// other users cannot log sets against it
	resp, _ = s.do(ctx, http.MethodPost, "/api/workouts", otherToken, map[string]any{
		"name": "Borrowed",
		"date": "2024-04-01",
		"sets": []map[string]any{
			{"exerciseId": created.Exercise.ID, "setNumber": 1, "reps": 5, "weight": 90},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodDelete, "/api/exercises/"+created.Exercise.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = s.do(ctx, http.MethodDelete, "/api/exercises/"+created.Exercise.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM exercises WHERE id = $1`, created.Exercise.ID))
}

func (s *IntegrationTestSuite) TestCustomExerciseInUseCannotBeDeleted() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, token := s.newUser(ctx)

	var created exerciseResponse
	s.doJSON(ctx, http.MethodPost, "/api/exercises", token, map[string]any{
		"name":         "Landmine Press",
		"category":     "strength",
		"muscleGroups": []string{"shoulders"},
	}, http.StatusCreated, &created)

	s.doJSON(ctx, http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Shoulders",
		"date": "2024-04-02",
		"sets": []map[string]any{
			{"exerciseId": created.Exercise.ID, "setNumber": 1, "reps": 8, "weight": 40, "weightUnit": "kg"},
		},
	}, http.StatusCreated, nil)

	resp, body := s.do(ctx, http.MethodDelete, "/api/exercises/"+created.Exercise.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Equal(t, 1, s.countRows(`SELECT count(*) FROM exercises WHERE id = $1`, created.Exercise.ID))
}

func (s *IntegrationTestSuite) TestUserDeletionCascades() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user, token := s.newUser(ctx)
	var created exerciseResponse
	s.doJSON(ctx, http.MethodPost, "/api/exercises", token, map[string]any{
		"name":         "Farmer Carry",
		"category":     "strength",
		"muscleGroups": []string{"grip"},
	}, http.StatusCreated, &created)
	s.doJSON(ctx, http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Carry",
		"date": "2024-04-03",
		"sets": []map[string]any{
			{"exerciseId": created.Exercise.ID, "setNumber": 1, "reps": 1, "weight": 50, "weightUnit": "kg"},
		},
	}, http.StatusCreated, nil)

	// workouts go first, custom exercises are restricted while referenced
	_, err := s.DB.ExecContext(ctx, `DELETE FROM workouts WHERE user_id = $1`, user.ID)
	require.NoError(t, err)
	_, err = s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM exercises WHERE user_id = $1`, user.ID))
	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM workouts WHERE user_id = $1`, user.ID))
}

func containsExercise(list []exercises.Exercise, id string) bool {
	for _, e := range list {
		if e.ID == id {
			return true
		}
	}
	return false
}
