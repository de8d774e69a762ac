package game

// Rules holds the scoring and progression tunables. Values match the
// classic table: 10 points per food, 50 for finishing a level.
type Rules struct {
	FoodReward int // Points per food eaten
	LevelBonus int // Points for completing a level
	FoodTarget int // Food required per level; 0 uses the level's own target
}

// DefaultRules returns the standard scoring rules.
func DefaultRules() Rules {
	return Rules{
		FoodReward: 10,
		LevelBonus: 50,
		FoodTarget: 0,
	}
}
