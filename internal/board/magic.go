package board

// Magic bitboard tables for sliding piece attacks.
//
// Each square owns a Magic entry describing its relevant occupancy mask
// and the region of the shared flat attack table holding the precomputed
// attack sets for every subset of that mask. The region starts at Offset
// and has exactly 2^popcount(Mask) slots; the hash in index() maps each
// occupancy subset to a distinct slot. The hashing strategy is fixed at
// build time: multiply-shift by default, bit extraction under the pext
// build tag (see magic_index.go / magic_index_pext.go).

// Magic holds the slider lookup data for a single square.
type Magic struct {
	Mask   Bitboard // Relevant occupancy mask (excludes non-own edges)
	Magic  uint64   // Magic multiplier (multiply-shift variant)
	Shift  uint8    // Bits to shift right (multiply-shift variant)
	Offset uint32   // Base index into the shared attack table
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	// Shared attack tables, sized to the sum over all squares of
	// 2^popcount(mask): 5248 bishop entries, 102400 rook entries.
	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

// Ray step offsets per slider class.
var (
	bishopSteps = [4]int{7, 9, -7, -9}
	rookSteps   = [4]int{8, 1, -8, -1}
)

// Precomputed magic multipliers. An invalid multiplier would not fail at
// init time; it would silently corrupt lookups, which is why the tables
// are verified exhaustively in the tests.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

// makeSliderAttackBB ray-casts the attack set of a slider on sq with the
// given occupancy: each ray stops at the board edge, or one square after
// reaching an occupied square (the first blocker is attacked, nothing
// beyond it is).
func makeSliderAttackBB(sq Square, occupied Bitboard, steps [4]int) Bitboard {
	var attacks Bitboard

	for _, step := range steps {
		s := sq
		for occupied&SquareBB(s) == 0 && landingSquareBB(s, step) != 0 {
			s = Square(int(s) + step)
			attacks |= SquareBB(s)
		}
	}

	return attacks
}

// initSliderAttacks builds the magic entries and fills the shared attack
// table for one slider class.
func initSliderAttacks(magics *[64]Magic, table []Bitboard, steps [4]int) {
	magicNumbers := &bishopMagicNumbers
	if steps == rookSteps {
		magicNumbers = &rookMagicNumbers
	}

	var offset uint32
	for sq := A1; sq <= H8; sq++ {
		// The outermost rank/file squares of a ray never block anything:
		// the ray terminates there regardless of occupancy. Edges in the
		// square's own rank/file stay relevant for the perpendicular rays.
		edges := ((Rank1 | Rank8) &^ RankBB[sq.Rank()]) |
			((FileA | FileH) &^ FileBB[sq.File()])

		m := &magics[sq]
		m.Mask = makeSliderAttackBB(sq, Empty, steps) &^ edges
		m.Magic = magicNumbers[sq]
		m.Shift = uint8(64 - m.Mask.PopCount())
		m.Offset = offset

		m.Mask.Subsets(func(occupied Bitboard) bool {
			table[offset+m.index(occupied)] = makeSliderAttackBB(sq, occupied, steps)
			return true
		})

		offset += 1 << m.Mask.PopCount()
	}
}

// BishopMask returns the relevant occupancy mask for a bishop on sq.
func BishopMask(sq Square) Bitboard {
	return bishopMagics[sq].Mask
}

// RookMask returns the relevant occupancy mask for a rook on sq.
func RookMask(sq Square) Bitboard {
	return rookMagics[sq].Mask
}
