package core

// ScoreFunc maps a removed region size to the points it earns.
type ScoreFunc func(regionSize int) int

// LinearScore awards perCell points for every removed cell.
func LinearScore(perCell int) ScoreFunc {
	return func(n int) int {
		if n < 0 {
			return 0
		}
		return n * perCell
	}
}

// BonusScore awards perCell points per cell, plus bonusPerCell for every
// cell from the bonusFrom-th onward. A bonusFrom of 0 disables the bonus.
//
//	score(n) = n*perCell + max(0, n-bonusFrom+1)*bonusPerCell
func BonusScore(perCell, bonusFrom, bonusPerCell int) ScoreFunc {
	return func(n int) int {
		if n < 0 {
			return 0
		}
		score := n * perCell
		if extra := n - bonusFrom + 1; bonusFrom > 0 && extra > 0 {
			score += extra * bonusPerCell
		}
		return score
	}
}

// DefaultScore is the stock scoring curve: one point per cell, one extra
// point per cell from the fifth onward.
func DefaultScore() ScoreFunc {
	return BonusScore(1, 5, 1)
}
