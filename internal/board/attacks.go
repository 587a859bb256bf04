package board

// Attack tables, built once during package init and immutable afterwards.
// Concurrent readers need no synchronization.
var (
	// PseudoAttacks holds the occupancy-independent attack sets, indexed
	// by piece type and square. Only King and Knight entries are
	// populated; sliders go through the magic tables.
	PseudoAttacks [6][64]Bitboard

	// PawnAttacks holds the diagonal capture targets per color.
	PawnAttacks [2][64]Bitboard
)

// Step offsets, in square-index deltas.
var (
	kingSteps   = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
	knightSteps = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
	pawnSteps   = [2][2]int{{7, 9}, {-7, -9}} // [White], [Black]
)

func init() {
	initNonSliderAttacks()
	initSliderAttacks(&bishopMagics, bishopTable[:], bishopSteps)
	initSliderAttacks(&rookMagics, rookTable[:], rookSteps)
	initBetween()
	initPawnMasks()
}

// landingSquareBB returns a bitboard holding the landing square of the
// step, or an empty bitboard if the step leaves the board. The distance
// guard rejects steps that wrap around a board edge: a wrapped step stays
// in 0-63 but lands more than two files or ranks away.
func landingSquareBB(sq Square, step int) Bitboard {
	to := int(sq) + step
	if to < 0 || to > 63 || Distance(sq, Square(to)) > 2 {
		return Empty
	}
	return SquareBB(Square(to))
}

func initNonSliderAttacks() {
	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 8; i++ {
			PseudoAttacks[King][sq] |= landingSquareBB(sq, kingSteps[i])
			PseudoAttacks[Knight][sq] |= landingSquareBB(sq, knightSteps[i])
		}

		for i := 0; i < 2; i++ {
			PawnAttacks[White][sq] |= landingSquareBB(sq, pawnSteps[White][i])
			PawnAttacks[Black][sq] |= landingSquareBB(sq, pawnSteps[Black][i])
		}
	}
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return PseudoAttacks[Knight][sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return PseudoAttacks[King][sq]
}

// PawnAttackBB returns the pawn capture bitboard for a square and color.
func PawnAttackBB(c Color, sq Square) Bitboard {
	return PawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with the
// given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return bishopTable[m.Offset+m.index(occupied)]
}

// RookAttacks returns the rook attack bitboard for a square with the
// given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return rookTable[m.Offset+m.index(occupied)]
}

// QueenAttacks returns the queen attack bitboard for a square with the
// given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttackBB returns the attack bitboard for a piece of the given type on
// the given square. Kings and knights ignore the occupancy. Pawns are
// color-specific and go through PawnAttackBB instead.
func AttackBB(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight, King:
		return PseudoAttacks[pt][sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	}
	return Empty
}

// Attackers returns a bitboard of all pieces of both colors attacking a
// square, given the occupancy to consider for slider blockers.
func (p *Position) Attackers(sq Square, occupied Bitboard) Bitboard {
	bishops := p.Pieces[White][Bishop] | p.Pieces[Black][Bishop] |
		p.Pieces[White][Queen] | p.Pieces[Black][Queen]
	rooks := p.Pieces[White][Rook] | p.Pieces[Black][Rook] |
		p.Pieces[White][Queen] | p.Pieces[Black][Queen]

	return (PawnAttacks[White][sq] & p.Pieces[Black][Pawn]) |
		(PawnAttacks[Black][sq] & p.Pieces[White][Pawn]) |
		(PseudoAttacks[Knight][sq] & (p.Pieces[White][Knight] | p.Pieces[Black][Knight])) |
		(PseudoAttacks[King][sq] & (p.Pieces[White][King] | p.Pieces[Black][King])) |
		(BishopAttacks(sq, occupied) & bishops) |
		(RookAttacks(sq, occupied) & rooks)
}

// AttackersByColor returns a bitboard of pieces of the given color
// attacking a square.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	return (PawnAttacks[c.Other()][sq] & p.Pieces[c][Pawn]) |
		(PseudoAttacks[Knight][sq] & p.Pieces[c][Knight]) |
		(PseudoAttacks[King][sq] & p.Pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[c][Bishop] | p.Pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[c][Rook] | p.Pieces[c][Queen]))
}

// SqAttacked returns true if the square is attacked by any piece of the
// given color. Cheap piece classes are checked first so most probes
// return before touching the slider tables; the order has no semantic
// effect.
func (p *Position) SqAttacked(sq Square, c Color) bool {
	if PawnAttacks[c.Other()][sq]&p.Pieces[c][Pawn] != 0 {
		return true
	}
	if PseudoAttacks[Knight][sq]&p.Pieces[c][Knight] != 0 {
		return true
	}
	if PseudoAttacks[King][sq]&p.Pieces[c][King] != 0 {
		return true
	}
	if BishopAttacks(sq, p.AllOccupied)&(p.Pieces[c][Bishop]|p.Pieces[c][Queen]) != 0 {
		return true
	}
	return RookAttacks(sq, p.AllOccupied)&(p.Pieces[c][Rook]|p.Pieces[c][Queen]) != 0
}

// KingAttacked returns true if the given color's king is attacked by the
// opponent.
func (p *Position) KingAttacked(c Color) bool {
	return p.SqAttacked(p.KingSquare[c], c.Other())
}
