package engine

import (
	"unsafe"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

const (
	// Node type flags. Alpha entries are upper bounds from fail-low
	// nodes, Beta entries lower bounds from fail-high nodes.
	AlphaFlag int8 = iota
	BetaFlag
	ExactFlag

	// Table size in MB
	TTSize      = 64
	clusterSize = 4
)

// TTEntry is one cached search result.
type TTEntry struct {
	Hash  uint64
	Score int32
	Move  fm.Move
	Depth int8
	Flag  int8
	Age   uint8
}

// TransTable is a cluster-bucketed transposition table. Age tracks root
// searches so stale entries lose replacement fights against fresh ones.
type TransTable struct {
	entries       []TTEntry
	clusterCount  uint64
	age           uint8
	isInitialized bool
}

func (tt *TransTable) init() {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(TTSize) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
	tt.isInitialized = true
}

// Clear drops all entries and resets the age counter.
func (tt *TransTable) Clear() {
	tt.entries = nil
	tt.clusterCount = 0
	tt.age = 0
	tt.isInitialized = false
}

// IncrementAge marks the start of a new root search.
func (tt *TransTable) IncrementAge() { tt.age++ }

// Probe looks the position up. The stored move is returned on any key
// match regardless of depth, for move ordering. hit is true only when
// the entry is deep enough and its bound admits a cutoff under the
// current window: exact always, a lower bound at score >= beta, an
// upper bound at score <= alpha.
func (tt *TransTable) Probe(hash uint64, depth int, alpha, beta int32) (hit bool, score int32, ttMove fm.Move) {
	ttMove = fm.NullMove()
	if tt.clusterCount == 0 {
		return false, 0, ttMove
	}

	base := int(hash % tt.clusterCount * clusterSize)
	for i := 0; i < clusterSize; i++ {
		entry := &tt.entries[base+i]
		if entry.Hash != hash {
			continue
		}
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			switch entry.Flag {
			case ExactFlag:
				return true, entry.Score, ttMove
			case BetaFlag:
				if entry.Score >= beta {
					return true, entry.Score, ttMove
				}
			case AlphaFlag:
				if entry.Score <= alpha {
					return true, entry.Score, ttMove
				}
			}
		}
		return false, 0, ttMove
	}
	return false, 0, ttMove
}

// Store writes a search result. Within the cluster it prefers the slot
// already holding this position, then an empty slot, then an entry from
// an older search, then the shallowest entry.
func (tt *TransTable) Store(hash uint64, depth int, score int32, flag int8, bestMove fm.Move) {
	if !tt.isInitialized {
		tt.init()
	}

	base := int(hash % tt.clusterCount * clusterSize)
	targetIdx := -1

	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].Hash == hash {
			targetIdx = base + i
			break
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Hash == 0 {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Age != tt.age {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		minDepth := tt.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < minDepth {
				minDepth = tt.entries[base+i].Depth
				targetIdx = base + i
			}
		}
	}

	entry := &tt.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = int8(Clamp(depth, 0, 127))
	entry.Score = score
	entry.Flag = flag
	entry.Move = bestMove
	entry.Age = tt.age
}
