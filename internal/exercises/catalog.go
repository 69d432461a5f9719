package exercises

func strPtr(s string) *string {
	return &s
}

// SystemCatalog returns the built-in exercises every user can see.
func SystemCatalog() []Exercise {
	return []Exercise{
		{
			Name:         "Barbell Bench Press",
			Description:  strPtr("Classic compound chest exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps", "Shoulders"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Lie on bench, lower bar to chest, press up until arms are extended"),
		},
		{
			Name:         "Dumbbell Bench Press",
			Description:  strPtr("Chest exercise with greater range of motion"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps", "Shoulders"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Lie on bench with dumbbells, press up until arms are extended"),
		},
		{
			Name:         "Incline Bench Press",
			Description:  strPtr("Targets upper chest"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps", "Shoulders"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Perform bench press on inclined bench (30-45 degrees)"),
		},
		{
			Name:         "Decline Bench Press",
			Description:  strPtr("Targets lower chest"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Perform bench press on declined bench"),
		},
		{
			Name:         "Chest Fly",
			Description:  strPtr("Isolation exercise for chest"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Lie on bench, lower dumbbells with slight bend in elbows, bring together over chest"),
		},
		{
			Name:         "Push-ups",
			Description:  strPtr("Classic bodyweight chest exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps", "Shoulders", "Core"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Lower body until chest nearly touches floor, push back up"),
		},
		{
			Name:         "Dips",
			Description:  strPtr("Compound exercise for chest and triceps"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Chest", "Triceps", "Shoulders"},
			Equipment:    strPtr("Dip Bars"),
			Instructions: strPtr("Lower body by bending arms, push back up until arms are extended"),
		},
		{
			Name:         "Barbell Row",
			Description:  strPtr("Compound back exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Bend at waist, pull barbell to torso, lower with control"),
		},
		{
			Name:         "Dumbbell Row",
			Description:  strPtr("Unilateral back exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Support body with one arm, row dumbbell to hip with other arm"),
		},
		{
			Name:         "Pull-ups",
			Description:  strPtr("Bodyweight back exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Pull-up Bar"),
			Instructions: strPtr("Hang from bar with overhand grip, pull up until chin clears bar"),
		},
		{
			Name:         "Chin-ups",
			Description:  strPtr("Underhand grip pull-up variation"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Pull-up Bar"),
			Instructions: strPtr("Hang from bar with underhand grip, pull up until chin clears bar"),
		},
		{
			Name:         "Lat Pulldown",
			Description:  strPtr("Cable machine back exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Pull bar down to upper chest, return with control"),
		},
		{
			Name:         "Seated Cable Row",
			Description:  strPtr("Horizontal pulling exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Biceps"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Sit upright, pull handle to torso, return with control"),
		},
		{
			Name:         "Deadlift",
			Description:  strPtr("Full body compound exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Back", "Legs", "Core"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Lift barbell from floor by extending hips and knees, lower with control"),
		},
		{
			Name:         "Overhead Press",
			Description:  strPtr("Compound shoulder exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders", "Triceps"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Press barbell overhead from shoulders until arms are extended"),
		},
		{
			Name:         "Arnold Press",
			Description:  strPtr("Dumbbell shoulder press variation"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Rotate dumbbells while pressing overhead"),
		},
		{
			Name:         "Lateral Raise",
			Description:  strPtr("Isolation exercise for side delts"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Raise dumbbells to sides until parallel with floor"),
		},
		{
			Name:         "Front Raise",
			Description:  strPtr("Isolation exercise for front delts"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Raise dumbbells in front until parallel with floor"),
		},
		{
			Name:         "Rear Delt Fly",
			Description:  strPtr("Isolation exercise for rear delts"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Bend at waist, raise dumbbells to sides"),
		},
		{
			Name:         "Face Pull",
			Description:  strPtr("Cable exercise for rear delts and upper back"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Shoulders", "Back"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Pull rope attachment toward face, separating rope at end"),
		},
		{
			Name:         "Barbell Squat",
			Description:  strPtr("Compound leg exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs", "Core"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Lower body by bending knees and hips, return to standing"),
		},
		{
			Name:         "Front Squat",
			Description:  strPtr("Squat variation with bar in front"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs", "Core"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Hold bar across front shoulders, perform squat"),
		},
		{
			Name:         "Leg Press",
			Description:  strPtr("Machine-based leg exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Leg Press Machine"),
			Instructions: strPtr("Push platform away by extending knees and hips"),
		},
		{
			Name:         "Romanian Deadlift",
			Description:  strPtr("Hamstring-focused exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs", "Back"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Lower bar by pushing hips back, keep legs mostly straight"),
		},
		{
			Name:         "Leg Curl",
			Description:  strPtr("Isolation exercise for hamstrings"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Leg Curl Machine"),
			Instructions: strPtr("Curl legs up toward glutes, lower with control"),
		},
		{
			Name:         "Leg Extension",
			Description:  strPtr("Isolation exercise for quadriceps"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Leg Extension Machine"),
			Instructions: strPtr("Extend legs until straight, lower with control"),
		},
		{
			Name:         "Calf Raise",
			Description:  strPtr("Isolation exercise for calves"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Machine or Bodyweight"),
			Instructions: strPtr("Raise up on toes, lower with control"),
		},
		{
			Name:         "Lunges",
			Description:  strPtr("Unilateral leg exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Dumbbells or Bodyweight"),
			Instructions: strPtr("Step forward and lower back knee toward ground, return to standing"),
		},
		{
			Name:         "Barbell Curl",
			Description:  strPtr("Classic bicep exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Biceps"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Curl barbell up, keeping elbows stationary"),
		},
		{
			Name:         "Dumbbell Curl",
			Description:  strPtr("Bicep exercise with dumbbells"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Biceps"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Curl dumbbells up, keeping elbows stationary"),
		},
		{
			Name:         "Hammer Curl",
			Description:  strPtr("Neutral grip bicep curl"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Biceps"},
			Equipment:    strPtr("Dumbbells"),
			Instructions: strPtr("Curl dumbbells with palms facing each other"),
		},
		{
			Name:         "Preacher Curl",
			Description:  strPtr("Bicep curl on preacher bench"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Biceps"},
			Equipment:    strPtr("EZ Bar"),
			Instructions: strPtr("Rest upper arms on pad, curl bar up"),
		},
		{
			Name:         "Cable Curl",
			Description:  strPtr("Bicep curl using cable machine"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Biceps"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Curl cable attachment up, keeping elbows stationary"),
		},
		{
			Name:         "Close-Grip Bench Press",
			Description:  strPtr("Compound tricep exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Triceps", "Chest"},
			Equipment:    strPtr("Barbell"),
			Instructions: strPtr("Bench press with hands closer than shoulder width"),
		},
		{
			Name:         "Tricep Dips",
			Description:  strPtr("Bodyweight tricep exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Triceps", "Chest"},
			Equipment:    strPtr("Dip Bars"),
			Instructions: strPtr("Lower body with elbows close to body, push back up"),
		},
		{
			Name:         "Overhead Tricep Extension",
			Description:  strPtr("Isolation exercise for triceps"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Triceps"},
			Equipment:    strPtr("Dumbbell"),
			Instructions: strPtr("Hold weight overhead, lower behind head, extend arms"),
		},
		{
			Name:         "Tricep Pushdown",
			Description:  strPtr("Cable tricep exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Triceps"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Push cable attachment down by extending elbows"),
		},
		{
			Name:         "Skull Crusher",
			Description:  strPtr("Lying tricep extension"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Triceps"},
			Equipment:    strPtr("EZ Bar"),
			Instructions: strPtr("Lie on bench, lower bar toward forehead, extend arms"),
		},
		{
			Name:         "Plank",
			Description:  strPtr("Isometric core exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Hold push-up position on forearms, keep body straight"),
		},
		{
			Name:         "Side Plank",
			Description:  strPtr("Lateral core stability exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Hold side position on one forearm, keep body straight"),
		},
		{
			Name:         "Crunches",
			Description:  strPtr("Basic ab exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Lift shoulders off ground by contracting abs"),
		},
		{
			Name:         "Leg Raises",
			Description:  strPtr("Lower ab exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Lie on back, raise legs toward ceiling"),
		},
		{
			Name:         "Russian Twist",
			Description:  strPtr("Rotational core exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Bodyweight or Medicine Ball"),
			Instructions: strPtr("Sit with feet off ground, twist torso side to side"),
		},
		{
			Name:         "Cable Crunch",
			Description:  strPtr("Weighted ab exercise"),
			Category:     CategoryStrength,
			MuscleGroups: []string{"Core"},
			Equipment:    strPtr("Cable Machine"),
			Instructions: strPtr("Kneel facing cable machine, crunch down by contracting abs"),
		},
		{
			Name:         "Running",
			Description:  strPtr("Cardiovascular endurance exercise"),
			Category:     CategoryCardio,
			MuscleGroups: []string{"Legs", "Full Body"},
			Equipment:    strPtr("None"),
			Instructions: strPtr("Run at various intensities for cardiovascular fitness"),
		},
		{
			Name:         "Cycling",
			Description:  strPtr("Low-impact cardio"),
			Category:     CategoryCardio,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("Bike"),
			Instructions: strPtr("Cycle at various intensities for cardiovascular fitness"),
		},
		{
			Name:         "Rowing",
			Description:  strPtr("Full-body cardio exercise"),
			Category:     CategoryCardio,
			MuscleGroups: []string{"Full Body"},
			Equipment:    strPtr("Rowing Machine"),
			Instructions: strPtr("Row with proper form for cardiovascular fitness"),
		},
		{
			Name:         "Jump Rope",
			Description:  strPtr("High-intensity cardio"),
			Category:     CategoryCardio,
			MuscleGroups: []string{"Legs", "Full Body"},
			Equipment:    strPtr("Jump Rope"),
			Instructions: strPtr("Jump rope at various speeds and patterns"),
		},
		{
			Name:         "Burpees",
			Description:  strPtr("Full-body conditioning exercise"),
			Category:     CategoryCardio,
			MuscleGroups: []string{"Full Body"},
			Equipment:    strPtr("Bodyweight"),
			Instructions: strPtr("Drop to push-up position, perform push-up, jump to standing, jump up"),
		},
		{
			Name:         "Hamstring Stretch",
			Description:  strPtr("Static stretch for the posterior chain"),
			Category:     CategoryFlexibility,
			MuscleGroups: []string{"Legs"},
			Equipment:    strPtr("None"),
			Instructions: strPtr("Sit with one leg extended, reach toward toes and hold for 30 seconds"),
		},
		{
			Name:         "Hip Flexor Stretch",
			Description:  strPtr("Kneeling stretch for the hip flexors"),
			Category:     CategoryFlexibility,
			MuscleGroups: []string{"Legs", "Core"},
			Equipment:    strPtr("None"),
			Instructions: strPtr("Kneel on one knee, push hips forward and hold for 30 seconds"),
		},
		{
			Name:         "Shoulder Dislocates",
			Description:  strPtr("Mobility drill for the shoulder girdle"),
			Category:     CategoryFlexibility,
			MuscleGroups: []string{"Shoulders"},
			Equipment:    strPtr("Resistance Band"),
			Instructions: strPtr("Hold band wide, raise it overhead and behind the body with straight arms"),
		},
	}
}
