// attackviz serves SVG diagrams of attack sets and pawn-structure masks
// over HTTP, for debugging the bitboard tables visually.
//
//	attackviz -addr :8722
//
// Routes:
//
//	/attacks/{piece}/{square}?fen=...   attack set, occupancy from FEN
//	/masks/passed/{color}/{square}      passed-pawn corridor
//	/masks/isolated/{square}            isolated-pawn adjacent files
//	/between/{from}/{to}                squares strictly between two squares
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"

	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/render"
)

var (
	addr       = flag.String("addr", ":8722", "listen address")
	profileDir = flag.String("profile", "", "write a CPU profile to this directory")
)

func main() {
	flag.Parse()

	if *profileDir != "" {
		defer profile.Start(profile.ProfilePath(*profileDir)).Stop()
	}

	r := mux.NewRouter()
	r.HandleFunc("/attacks/{piece}/{square}", attacksHandler).Methods("GET")
	r.HandleFunc("/masks/passed/{color}/{square}", passedHandler).Methods("GET")
	r.HandleFunc("/masks/isolated/{square}", isolatedHandler).Methods("GET")
	r.HandleFunc("/between/{from}/{to}", betweenHandler).Methods("GET")
	r.HandleFunc("/", indexHandler).Methods("GET")

	log.Printf("attackviz listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func indexHandler(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintln(w, "attackviz routes:")
	fmt.Fprintln(w, "  /attacks/{piece}/{square}?fen=<FEN>")
	fmt.Fprintln(w, "  /masks/passed/{color}/{square}")
	fmt.Fprintln(w, "  /masks/isolated/{square}")
	fmt.Fprintln(w, "  /between/{from}/{to}")
	fmt.Fprintln(w, "pieces: knight, bishop, rook, queen, king, wpawn, bpawn")
}

func parseColor(s string) (board.Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return board.White, nil
	case "black", "b":
		return board.Black, nil
	}
	return board.NoColor, fmt.Errorf("invalid color: %s", s)
}

func attacksHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sq, err := board.ParseSquare(vars["square"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	occupied := board.Empty
	if fen := r.URL.Query().Get("fen"); fen != "" {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		occupied = pos.AllOccupied
	}

	var attacks board.Bitboard
	piece := strings.ToLower(vars["piece"])
	switch piece {
	case "knight":
		attacks = board.AttackBB(board.Knight, sq, occupied)
	case "bishop":
		attacks = board.AttackBB(board.Bishop, sq, occupied)
	case "rook":
		attacks = board.AttackBB(board.Rook, sq, occupied)
	case "queen":
		attacks = board.AttackBB(board.Queen, sq, occupied)
	case "king":
		attacks = board.AttackBB(board.King, sq, occupied)
	case "wpawn":
		attacks = board.PawnAttackBB(board.White, sq)
	case "bpawn":
		attacks = board.PawnAttackBB(board.Black, sq)
	default:
		http.Error(w, "invalid piece: "+piece, http.StatusBadRequest)
		return
	}

	writeDiagram(w, render.Diagram{
		Highlight: attacks,
		Origin:    sq,
		Occupied:  occupied,
		Title:     fmt.Sprintf("%s %v", piece, sq),
	})
}

func passedHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	c, err := parseColor(vars["color"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sq, err := board.ParseSquare(vars["square"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeDiagram(w, render.Diagram{
		Highlight: board.PassedMask[c][sq],
		Origin:    sq,
		Title:     fmt.Sprintf("passed mask %v %v", c, sq),
	})
}

func isolatedHandler(w http.ResponseWriter, r *http.Request) {
	sq, err := board.ParseSquare(mux.Vars(r)["square"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeDiagram(w, render.Diagram{
		Highlight: board.IsolatedMask[sq],
		Origin:    sq,
		Title:     fmt.Sprintf("isolated mask %v", sq),
	})
}

func betweenHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	from, err := board.ParseSquare(vars["from"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := board.ParseSquare(vars["to"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeDiagram(w, render.Diagram{
		Highlight: board.Between(from, to),
		Origin:    from,
		Occupied:  board.SquareBB(to),
		Title:     fmt.Sprintf("between %v %v", from, to),
	})
}

func writeDiagram(w http.ResponseWriter, d render.Diagram) {
	w.Header().Set("Content-Type", "image/svg+xml")
	render.WriteSVG(w, d)
}
