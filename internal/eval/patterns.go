// Package eval implements the symmetric static evaluator: line-pattern
// scoring, capture-count progression, capture-vulnerability penalty, and
// multi-threat combination bonuses.
package eval

// Pattern score constants (spec §3).
const (
	Five           = 1_000_000
	CaptureWin     = 1_000_000
	OpenFour       = 100_000
	ClosedFour     = 50_000
	OpenThree      = 10_000
	ClosedThree    = 1_500
	OpenTwo        = 1_000
	ClosedTwo      = 200
	NearCaptureWin = 80_000
)

// Supplemental constants recovered from the original source's pattern
// table (not present in the distilled pattern-score list). They are
// exported for reference only: move ordering and the vulnerability
// weighting ladder (VulnWeight) do not use them.
const (
	CaptureThreat = 8_000
	CapturePair   = 2_000
)

// PositionWeight and MaxCenterDist parameterize the position bonus
// (18 - manhattan distance to center) * 8.
const (
	MaxCenterDist  = 18
	PositionWeight = 8
)

// ConnectivityBonus is added per same-color adjacent neighbor.
const ConnectivityBonus = 80

// capLadder is the capture-count progression indexed by min(pairs, 5).
var capLadder = [6]int{0, 2000, 7000, 20000, NearCaptureWin, CaptureWin}

// CaptureScore returns the symmetric capture-count differential:
// CaptureScore(a, b) == -CaptureScore(b, a) for all a, b in [0, 5].
func CaptureScore(myCaptures, oppCaptures int) int {
	return capLadder[clamp5(myCaptures)] - capLadder[clamp5(oppCaptures)]
}

// VulnWeight returns the penalty weight for one vulnerable ally-ally pair,
// scaled by how many pairs the opponent (who would exploit the
// vulnerability) has already captured.
func VulnWeight(opponentCaptures int) int {
	switch {
	case opponentCaptures >= 4:
		return 80_000
	case opponentCaptures == 3:
		return 40_000
	case opponentCaptures == 2:
		return 20_000
	default:
		return 10_000
	}
}

func clamp5(n int) int {
	if n > 5 {
		return 5
	}
	if n < 0 {
		return 0
	}
	return n
}
