package board

// Derived geometric masks, built after the attack tables during init.
var (
	// BetweenBB holds the squares strictly between two squares sharing a
	// rank, file, or diagonal; empty for unaligned pairs. Semantically
	// symmetric: BetweenBB[a][b] == BetweenBB[b][a].
	BetweenBB [64][64]Bitboard

	// lineBB holds the full line through two aligned squares, endpoints
	// included; empty for unaligned pairs.
	lineBB [64][64]Bitboard

	// PassedMask holds, per color and square, the squares ahead of the
	// square in that color's forward direction on its own and the two
	// adjacent files. A pawn is passed when no enemy pawn sits in its
	// mask.
	PassedMask [2][64]Bitboard

	// IsolatedMask holds the two adjacent full files per square. A pawn
	// is isolated when no friendly pawn sits in its mask.
	IsolatedMask [64]Bitboard
)

func initBetween() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			for pt := Bishop; pt <= Rook; pt++ {
				// sq2 as the only blocker: if the ray from sq1 reaches it,
				// the two truncated attack sets overlap exactly on the
				// squares between the pair.
				if AttackBB(pt, sq1, SquareBB(sq2)).IsSet(sq2) {
					BetweenBB[sq1][sq2] = AttackBB(pt, sq1, SquareBB(sq2)) &
						AttackBB(pt, sq2, SquareBB(sq1))
					lineBB[sq1][sq2] = (AttackBB(pt, sq1, Empty) & AttackBB(pt, sq2, Empty)) |
						SquareBB(sq1) | SquareBB(sq2)
				}
			}
		}
	}
}

func initPawnMasks() {
	for sq := A1; sq <= H8; sq++ {
		IsolatedMask[sq] = AdjacentFilesBB(sq)

		front := SquareBB(sq).North().NorthFill()
		PassedMask[White][sq] = front | front.East() | front.West()

		back := SquareBB(sq).South().SouthFill()
		PassedMask[Black][sq] = back | back.East() | back.West()
	}
}

// AdjacentFilesBB returns the files adjacent to the square's file. Edge
// files have a single neighbor: file A only file B, file H only file G.
func AdjacentFilesBB(sq Square) Bitboard {
	file := FileBB[sq.File()]
	return file.East() | file.West()
}

// Between returns the bitboard of squares strictly between two squares.
// Returns empty if the squares are not aligned.
func Between(sq1, sq2 Square) Bitboard {
	return BetweenBB[sq1][sq2]
}

// Line returns the bitboard of the full line through two squares,
// endpoints included. Returns empty if the squares are not aligned.
func Line(sq1, sq2 Square) Bitboard {
	return lineBB[sq1][sq2]
}

// Aligned returns true if three squares are on the same line.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineBB[sq1][sq2]&SquareBB(sq3) != 0
}
