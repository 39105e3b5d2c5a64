package engine

import "fmt"

// CutStatistics collects counts for each pruning/cutoff mechanism of the
// last root search.
type CutStatistics struct {
	TTCutoffs        uint64
	BetaCutoffs      uint64
	SEEPrunes        uint64
	DeltaPrunes      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

func (cs *CutStatistics) dump() {
	fmt.Println("Cut statistics:")
	fmt.Printf("  TT cutoffs: %d\n", cs.TTCutoffs)
	fmt.Printf("  Beta cutoffs: %d\n", cs.BetaCutoffs)
	fmt.Printf("  SEE prunes: %d\n", cs.SEEPrunes)
	fmt.Printf("  Delta prunes: %d\n", cs.DeltaPrunes)
	fmt.Printf("  QStandPat cutoffs: %d\n", cs.QStandPatCutoffs)
	fmt.Printf("  QBeta cutoffs: %d\n", cs.QBetaCutoffs)
}
