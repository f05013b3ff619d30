package collector

// MinScoredLength is the shortest word that earns points.
const MinScoredLength = 3

// ScoreFunc maps a word length to points.
type ScoreFunc func(length int) int

// QuadraticScore awards (length-2)^2 points; words shorter than three letters score nothing.
func QuadraticScore(length int) int {
	if length < MinScoredLength {
		return 0
	}
	return (length - 2) * (length - 2)
}
