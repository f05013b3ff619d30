package board

import "math/rand"

// StandardDice are the sixteen faces-of-six dice of the classic game. 'Q' stands for "QU".
var StandardDice = [Cells]string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNUQ", "HLNNRZ",
}

// Generate shakes the standard dice: every die lands on a random cell showing a random face.
// The same rng seed always yields the same board.
func Generate(rng *rand.Rand) Grid {
	var g Grid
	order := rng.Perm(Cells)
	for i, die := range order {
		faces := StandardDice[die]
		g[i/Size][i%Size] = faces[rng.Intn(len(faces))]
	}
	return g
}
