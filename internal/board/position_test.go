package board

import "testing"

func TestPieceAt(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook},
		{E1, WhiteKing},
		{D8, BlackQueen},
		{G7, BlackPawn},
		{E4, NoPiece},
	}

	for _, tc := range tests {
		if got := pos.PieceAt(tc.sq); got != tc.want {
			t.Errorf("PieceAt(%v) = %v, want %v", tc.sq, got, tc.want)
		}
	}
}

func TestSetRemovePiece(t *testing.T) {
	var pos Position
	pos.Clear()

	pos.SetPiece(WhiteQueen, D4)
	if pos.PieceAt(D4) != WhiteQueen {
		t.Fatalf("PieceAt(d4) = %v after SetPiece", pos.PieceAt(D4))
	}
	if pos.Occupied[White] != SquareBB(D4) || pos.AllOccupied != SquareBB(D4) {
		t.Error("occupancy not updated by SetPiece")
	}

	if got := pos.RemovePiece(D4); got != WhiteQueen {
		t.Errorf("RemovePiece(d4) = %v, want white queen", got)
	}
	if !pos.IsEmpty(D4) || pos.AllOccupied != Empty {
		t.Error("occupancy not cleared by RemovePiece")
	}
	if pos.RemovePiece(D4) != NoPiece {
		t.Error("RemovePiece on empty square should return NoPiece")
	}
}

func TestValidate(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Validate() == nil {
		t.Error("position without a white king should not validate")
	}
}

func TestComputePinned(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Bitboard
	}{
		{
			// Rook e8 pins the knight on e4 against the e1 king.
			"FilePin",
			"4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1",
			SquareBB(E4),
		},
		{
			// Bishop a5 pins the d2 pawn diagonally.
			"DiagonalPin",
			"6k1/8/8/b7/8/8/3P4/4K3 w - - 0 1",
			SquareBB(D2),
		},
		{
			// Two blockers on the ray: no pin.
			"TwoBlockers",
			"4r1k1/8/8/4N3/4N3/8/8/4K3 w - - 0 1",
			Empty,
		},
		{
			// Enemy piece in between is not a pin of ours.
			"EnemyBlocker",
			"4r1k1/8/8/8/4n3/8/8/4K3 w - - 0 1",
			Empty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if got := pos.ComputePinned(); got != tc.want {
				t.Errorf("pinned:\ngot\n%v\nwant\n%v", got, tc.want)
			}
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	pos := NewPosition()
	cp := pos.Copy()

	cp.RemovePiece(E2)
	if pos.PieceAt(E2) != WhitePawn {
		t.Error("mutating the copy changed the original")
	}
}
