package engine

// MaxLevel is the level cap.
const MaxLevel = 29

// LinesPerLevel is how many cleared lines advance one level.
const LinesPerLevel = 10

// lineScores are the base points for clearing 1..4 rows in one lock.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// LineScore returns the points for clearing n rows in one lock at level.
// Counts other than 1..4 score nothing.
func LineScore(n, level int) int {
	if n < 1 || n > 4 {
		return 0
	}
	return lineScores[n] * (level + 1)
}

// LevelFor returns the level reached after clearing lines in total.
func LevelFor(lines int) int {
	level := lines/LinesPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
