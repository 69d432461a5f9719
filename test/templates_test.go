//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateResponse struct {
	Template templates.Template `json:"template"`
}

func (s *IntegrationTestSuite) TestTemplateRoundTrip() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, token := s.newUser(ctx)
	_, otherToken := s.newUser(ctx)
	squatID := s.systemExerciseID(ctx, token, "Barbell Squat")
	pressID := s.systemExerciseID(ctx, token, "Leg Press")
	curlID := s.systemExerciseID(ctx, token, "Leg Curl")

	var created templateResponse
	s.doJSON(ctx, http.MethodPost, "/api/templates", token, map[string]any{
		"name":        "Legs A",
		"description": "heavy lower day",
		"exercises": []map[string]any{
			{"exerciseId": squatID, "defaultSets": 5, "defaultReps": 5, "defaultWeight": 225},
			{"exerciseId": pressID, "defaultSets": 3, "defaultReps": 10},
			{"exerciseId": curlID, "notes": "slow negatives"},
		},
	}, http.StatusCreated, &created)

	require.NotEmpty(t, created.Template.ID)
	require.Len(t, created.Template.Exercises, 3)
	for i, entry := range created.Template.Exercises {
		assert.Equal(t, i, entry.OrderIndex)
	}
	assert.Equal(t, squatID, created.Template.Exercises[0].ExerciseID)
	assert.Equal(t, pressID, created.Template.Exercises[1].ExerciseID)
	assert.Equal(t, curlID, created.Template.Exercises[2].ExerciseID)
	assert.Nil(t, created.Template.Exercises[1].DefaultWeight)
	require.NotNil(t, created.Template.Exercises[2].Notes)
	assert.Equal(t, "slow negatives", *created.Template.Exercises[2].Notes)

	var fetched templateResponse
	s.doJSON(ctx, http.MethodGet, "/api/templates/"+created.Template.ID, token, nil, http.StatusOK, &fetched)
	assert.Equal(t, created.Template.Exercises, fetched.Template.Exercises)

	var updated templateResponse
	s.doJSON(ctx, http.MethodPut, "/api/templates/"+created.Template.ID, token, map[string]any{
		"name": "Legs B",
		"exercises": []map[string]any{
			{"exerciseId": curlID},
			{"exerciseId": squatID, "defaultSets": 3},
		},
	}, http.StatusOK, &updated)
	assert.Equal(t, "Legs B", updated.Template.Name)
	require.Len(t, updated.Template.Exercises, 2)
	assert.Equal(t, curlID, updated.Template.Exercises[0].ExerciseID)
	assert.Equal(t, squatID, updated.Template.Exercises[1].ExerciseID)
	assert.Equal(t, 2, s.countRows(`SELECT count(*) FROM template_exercises WHERE template_id = $1`, created.Template.ID))

	var list struct {
		Templates []templates.Template `json:"templates"`
	}
	s.doJSON(ctx, http.MethodGet, "/api/templates", otherToken, nil, http.StatusOK, &list)
	assert.Empty(t, list.Templates)

	resp, _ := s.do(ctx, http.MethodDelete, "/api/templates/"+created.Template.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := s.do(ctx, http.MethodDelete, "/api/templates/"+created.Template.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Template deleted successfully"}`, string(body))
	assert.Equal(t, 0, s.countRows(`SELECT count(*) FROM template_exercises WHERE template_id = $1`, created.Template.ID))
}

func (s *IntegrationTestSuite) TestTemplateRequiresExercises() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, token := s.newUser(ctx)
	resp, body := s.do(ctx, http.MethodPost, "/api/templates", token, map[string]any{
		"name":      "Empty",
		"exercises": []map[string]any{},
	})
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, string(body))
}
