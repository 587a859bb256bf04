// magicgen searches for magic multipliers for the slider attack tables
// and caches the results in the local magic store.
//
//	magicgen -piece rook -seed 1 -store
//	magicgen -dump
//
// A candidate multiplier is accepted for a square when the multiply-shift
// hash maps every occupancy subset of the square's mask to a distinct
// slot, or to the same slot only when the attack sets agree (a benign
// collision). Sparse random candidates find one quickly.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/schollz/progressbar/v3"

	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/magicstore"
)

var (
	piece = flag.String("piece", "both", "slider class to search: bishop, rook, or both")
	seed  = flag.Int64("seed", 0, "random seed (0 = time-based)")
	store = flag.Bool("store", false, "persist results in the magic store")
	dump  = flag.Bool("dump", false, "dump stored magic sets and exit")
)

func main() {
	flag.Parse()

	if *dump {
		dumpStore()
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var pieces []board.PieceType
	switch *piece {
	case "bishop":
		pieces = []board.PieceType{board.Bishop}
	case "rook":
		pieces = []board.PieceType{board.Rook}
	case "both":
		pieces = []board.PieceType{board.Bishop, board.Rook}
	default:
		log.Fatalf("invalid piece: %s", *piece)
	}

	for _, pt := range pieces {
		set := search(pt, *seed)
		fmt.Printf("%s: %d candidates tested in %v\n", set.Piece, set.Tries, set.Duration)

		if *store {
			s, err := magicstore.Open()
			if err != nil {
				log.Fatalf("open store: %v", err)
			}
			if err := s.Save(set); err != nil {
				log.Fatalf("save %s magics: %v", set.Piece, err)
			}
			if err := s.Close(); err != nil {
				log.Fatalf("close store: %v", err)
			}
		}
	}
}

func search(pt board.PieceType, seed int64) *magicstore.MagicSet {
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()

	set := &magicstore.MagicSet{
		Piece: "bishop",
		Seed:  seed,
	}
	if pt == board.Rook {
		set.Piece = "rook"
	}

	bar := progressbar.Default(64, set.Piece+" squares")
	for sq := board.A1; sq <= board.H8; sq++ {
		magic, tries := findMagic(pt, sq, rng)
		set.Magics[sq] = magic
		set.Tries += tries
		_ = bar.Add(1)
	}
	_ = bar.Close()

	set.FoundAt = time.Now().UTC()
	set.Duration = time.Since(start)
	return set
}

// findMagic searches candidates for one square until the hash is
// collision-free over the mask's subset space.
func findMagic(pt board.PieceType, sq board.Square, rng *rand.Rand) (uint64, uint64) {
	mask := board.BishopMask(sq)
	if pt == board.Rook {
		mask = board.RookMask(sq)
	}
	bits := mask.PopCount()
	shift := uint(64 - bits)

	// Slider attack sets are never empty, so Empty marks an unused slot.
	used := make([]board.Bitboard, 1<<bits)
	var tries uint64

	for {
		tries++
		// Sparse candidates succeed far more often than uniform ones.
		candidate := rng.Uint64() & rng.Uint64() & rng.Uint64()

		for i := range used {
			used[i] = board.Empty
		}

		ok := true
		mask.Subsets(func(occ board.Bitboard) bool {
			idx := (uint64(occ) * candidate) >> shift
			want := board.AttackBB(pt, sq, occ)
			if used[idx] == board.Empty {
				used[idx] = want
			} else if used[idx] != want {
				ok = false
				return false
			}
			return true
		})

		if ok {
			return candidate, tries
		}
	}
}

func dumpStore() {
	s, err := magicstore.Open()
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer s.Close()

	pieces, err := s.Pieces()
	if err != nil {
		log.Fatalf("list store: %v", err)
	}
	if len(pieces) == 0 {
		fmt.Println("magic store is empty")
		return
	}

	for _, p := range pieces {
		set, err := s.Load(p)
		if err != nil {
			log.Fatalf("load %s: %v", p, err)
		}
		spew.Dump(set)
	}
}
