package constants

import "testing"

// TestCompletionReachable verifies the completion score lands on a hit boundary
func TestCompletionReachable(t *testing.T) {
	if CompletionScore%ScorePerHit != 0 {
		t.Errorf("CompletionScore %d is not a multiple of ScorePerHit %d", CompletionScore, ScorePerHit)
	}
	hits := CompletionScore / ScorePerHit
	if hits > TargetCount*10 {
		t.Errorf("Completion needs %d hits, unreasonable for %d targets", hits, TargetCount)
	}
}

// TestTargetPositionsDistinct verifies no two targets share a base position
func TestTargetPositionsDistinct(t *testing.T) {
	seen := make(map[[3]float64]int, TargetCount)
	for i, p := range TargetPositions {
		if j, ok := seen[p]; ok {
			t.Errorf("Targets %d and %d share position %v", j+1, i+1, p)
		}
		seen[p] = i
		if p[2] >= PlayerStartZ {
			t.Errorf("Target %d at z=%v is not in front of the player spawn", i+1, p[2])
		}
	}
}
