package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danefroelicher2/chess-engine-fresh/engine"
	"github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

func main() {
	fen := flag.String("fen", freshmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 5, "Maximum search depth in plies")
	cutStats := flag.Bool("cutstats", false, "Dump pruning statistics after the search")
	flag.Parse()

	board, err := freshmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	eng := engine.NewEngine(board, *depth)
	eng.PrintCutStats = *cutStats

	best := eng.GetBestMove()
	if best.IsNull() {
		fmt.Println("no legal moves: position is terminal")
		return
	}
	fmt.Println("bestmove", best.String())
}
