package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

func main() {
	fen := flag.String("fen", freshmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	crossCheck := flag.Bool("crosscheck", false, "Compare against the dragontoothmg reference generator (positions without promotions only; this engine auto-queens)")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := freshmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := freshmg.PerftDivide(board, *depth)
		type kv struct {
			m freshmg.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := freshmg.Perft(board, *depth)
	elapsed := time.Since(start)

	secs := elapsed.Seconds()
	if secs == 0 {
		secs = 1e-9
	}
	fmt.Printf("perft(%d) = %d in %v (%.0f nps)\n", *depth, nodes, elapsed, float64(nodes)/secs)

	if *crossCheck {
		ref := dragontoothmg.ParseFen(*fen)
		refNodes := refPerft(&ref, *depth)
		if refNodes == nodes {
			fmt.Printf("crosscheck OK: reference generator agrees (%d)\n", refNodes)
		} else {
			fmt.Printf("crosscheck MISMATCH: reference generator says %d\n", refNodes)
			os.Exit(1)
		}
	}
}

func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += refPerft(b, depth-1)
		unapply()
	}
	return nodes
}
