package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func aligned(a, b Square) bool {
	df := abs(a.File() - b.File())
	dr := abs(a.Rank() - b.Rank())
	return a != b && (df == 0 || dr == 0 || df == dr)
}

// TestBetweenSymmetricAndAligned checks, for all square pairs, that the
// between-set is symmetric and empty unless the pair shares a rank, file,
// or diagonal. Unaligned pairs farther than a queen's reach must yield a
// truly empty set, not a partial one.
func TestBetweenSymmetricAndAligned(t *testing.T) {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			if Between(a, b) != Between(b, a) {
				t.Errorf("Between(%v, %v) not symmetric", a, b)
			}
			if !aligned(a, b) && Between(a, b) != Empty {
				t.Errorf("Between(%v, %v) nonempty for unaligned pair:\n%v", a, b, Between(a, b))
			}
			if Between(a, b).IsSet(a) || Between(a, b).IsSet(b) {
				t.Errorf("Between(%v, %v) includes an endpoint", a, b)
			}
		}
	}
}

func TestBetweenContents(t *testing.T) {
	tests := []struct {
		a, b Square
		want Bitboard
	}{
		{A1, H8, SquareBB(B2) | SquareBB(C3) | SquareBB(D4) | SquareBB(E5) | SquareBB(F6) | SquareBB(G7)},
		{E1, E4, SquareBB(E2) | SquareBB(E3)},
		{A4, D4, SquareBB(B4) | SquareBB(C4)},
		{D4, E5, Empty}, // adjacent, nothing strictly between
		{B1, C3, Empty}, // knight-move pair, not aligned
		{A1, H7, Empty},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Between(tc.a, tc.b), "Between(%v, %v)", tc.a, tc.b)
	}
}

func TestLineAndAligned(t *testing.T) {
	assert.Equal(t, FileE, Line(E2, E7))
	assert.Equal(t, Rank4, Line(A4, H4))
	assert.Equal(t, Empty, Line(B1, C3))

	assert.True(t, Aligned(A1, D4, H8))
	assert.True(t, Aligned(E1, E4, E8))
	assert.False(t, Aligned(A1, D4, H7))
}

func TestIsolatedMask(t *testing.T) {
	// Edge files have a single adjacent file.
	assert.Equal(t, FileB, IsolatedMask[A1])
	assert.Equal(t, FileG, IsolatedMask[H1])
	assert.Equal(t, FileG, IsolatedMask[H5])

	// Interior squares include both adjacent files and never their own.
	for sq := A1; sq <= H8; sq++ {
		if IsolatedMask[sq]&FileBB[sq.File()] != 0 {
			t.Errorf("IsolatedMask[%v] includes its own file", sq)
		}
	}
	assert.Equal(t, FileD|FileF, IsolatedMask[E4])
}

func TestPassedMask(t *testing.T) {
	// White pawn on a2: files a-b, ranks 3-8.
	wantA2 := (FileA | FileB) &^ (Rank1 | Rank2)
	assert.Equal(t, wantA2, PassedMask[White][A2])

	// Mirrored for black on the h-file: h7 covers files g-h, ranks 6-1.
	wantH7 := (FileG | FileH) &^ (Rank8 | Rank7)
	assert.Equal(t, wantH7, PassedMask[Black][H7])

	// Interior square, both colors.
	wantE4 := (FileD | FileE | FileF) &^ (Rank1 | Rank2 | Rank3 | Rank4)
	assert.Equal(t, wantE4, PassedMask[White][E4])

	wantE4Black := (FileD | FileE | FileF) & (Rank1 | Rank2 | Rank3)
	assert.Equal(t, wantE4Black, PassedMask[Black][E4])

	// Nothing ahead of the last rank.
	assert.Equal(t, Empty, PassedMask[White][E8])
	assert.Equal(t, Empty, PassedMask[Black][E1])
}

func TestPassedMaskUsage(t *testing.T) {
	// White pawn e5 vs black pawn d7: the d7 pawn sits in the corridor,
	// so e5 is not passed. Remove it and e5 is passed.
	pos, err := ParseFEN("4k3/3p4/8/4P3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	assert.NotZero(t, PassedMask[White][E5]&pos.Pieces[Black][Pawn])

	pos.RemovePiece(D7)
	assert.Zero(t, PassedMask[White][E5]&pos.Pieces[Black][Pawn])
}
