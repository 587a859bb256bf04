package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSliderMasks checks the relevant-occupancy masks: rays on an empty
// board minus the edge squares that can never block.
func TestSliderMasks(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		edges := ((Rank1 | Rank8) &^ RankBB[sq.Rank()]) |
			((FileA | FileH) &^ FileBB[sq.File()])

		wantBishop := oracleSliderAttacks(sq, Empty, bishopDirs) &^ edges
		assert.Equal(t, wantBishop, BishopMask(sq), "bishop mask on %v", sq)

		wantRook := oracleSliderAttacks(sq, Empty, rookDirs) &^ edges
		assert.Equal(t, wantRook, RookMask(sq), "rook mask on %v", sq)
	}

	// Known popcounts: a corner rook mask has 12 relevant squares, a
	// center bishop mask 9.
	assert.Equal(t, 12, RookMask(A1).PopCount())
	assert.Equal(t, 9, BishopMask(D4).PopCount())
	assert.Equal(t, 6, BishopMask(A1).PopCount())
}

// TestMagicLookupExhaustive walks every subset of every square's mask and
// compares the hashed lookup against a direct ray cast. A collision of
// two subsets on differing attack sets would surface as a mismatch here,
// so this also verifies injectivity of the hash where it matters.
func TestMagicLookupExhaustive(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		BishopMask(sq).Subsets(func(occ Bitboard) bool {
			want := oracleSliderAttacks(sq, occ, bishopDirs)
			if got := BishopAttacks(sq, occ); got != want {
				t.Fatalf("bishop on %v, occupancy %x:\ngot\n%v\nwant\n%v", sq, occ, got, want)
			}
			return true
		})

		RookMask(sq).Subsets(func(occ Bitboard) bool {
			want := oracleSliderAttacks(sq, occ, rookDirs)
			if got := RookAttacks(sq, occ); got != want {
				t.Fatalf("rook on %v, occupancy %x:\ngot\n%v\nwant\n%v", sq, occ, got, want)
			}
			return true
		})
	}
}

// TestIrrelevantOccupancyIgnored checks that bits outside the mask never
// change a lookup: only blockers on the piece's rays matter.
func TestIrrelevantOccupancyIgnored(t *testing.T) {
	noise := []Bitboard{
		Universe,
		Rank1 | Rank8 | FileA | FileH,
		SquareBB(A1) | SquareBB(H8) | SquareBB(A8) | SquareBB(H1),
	}

	for _, sq := range []Square{A1, D4, E5, H8, B7} {
		for _, n := range noise {
			occ := n &^ BishopMask(sq) &^ SquareBB(sq)
			assert.Equal(t, BishopAttacks(sq, Empty), BishopAttacks(sq, occ),
				"bishop on %v with off-ray noise", sq)

			occ = n &^ RookMask(sq) &^ SquareBB(sq)
			assert.Equal(t, RookAttacks(sq, Empty), RookAttacks(sq, occ),
				"rook on %v with off-ray noise", sq)
		}
	}
}

// TestTableLayout checks the arena layout: regions are laid out back to
// back, each sized to its mask's subset count, and together they fill the
// shared tables exactly.
func TestTableLayout(t *testing.T) {
	var offset uint32
	for sq := A1; sq <= H8; sq++ {
		require.Equal(t, offset, bishopMagics[sq].Offset, "bishop offset on %v", sq)
		require.Equal(t, uint8(64-bishopMagics[sq].Mask.PopCount()), bishopMagics[sq].Shift)
		offset += 1 << bishopMagics[sq].Mask.PopCount()
	}
	require.Equal(t, uint32(len(bishopTable)), offset, "bishop table size")

	offset = 0
	for sq := A1; sq <= H8; sq++ {
		require.Equal(t, offset, rookMagics[sq].Offset, "rook offset on %v", sq)
		offset += 1 << rookMagics[sq].Mask.PopCount()
	}
	require.Equal(t, uint32(len(rookTable)), offset, "rook table size")
}

func BenchmarkRookAttacks(b *testing.B) {
	occ := SquareBB(E4) | SquareBB(B1) | SquareBB(G7) | SquareBB(D5)
	for i := 0; i < b.N; i++ {
		_ = RookAttacks(Square(i&63), occ)
	}
}

func BenchmarkQueenAttacks(b *testing.B) {
	occ := SquareBB(E4) | SquareBB(B1) | SquareBB(G7) | SquareBB(D5)
	for i := 0; i < b.N; i++ {
		_ = QueenAttacks(Square(i&63), occ)
	}
}
