package model

import "math"

// DefaultSearchDepth is the number of plies the automated player looks ahead.
const DefaultSearchDepth = 4

// SearchResult is the outcome of a root search. Board is nil when the side
// to move had no legal move.
type SearchResult struct {
	Score float64
	Move  Move
	Board *Board
	Nodes int
}

// Found reports whether the search produced a move.
func (r SearchResult) Found() bool {
	return r.Board != nil
}

// Search runs minimax with alpha-beta pruning to the given depth. Light is
// always the maximizing side; maximizing says whether Light moves at the
// root. The input board is not modified: the search works on a private copy
// and undoes every move it makes, then returns a fresh board with the best
// move applied. Among equally scored moves the first one enumerated wins.
//
// A side left without a move below the root has lost: the node scores -Inf
// for Light and +Inf for Dark. At the root it means no move is found.
func Search(board *Board, depth int, maximizing bool) SearchResult {
	s := &searcher{work: board.Copy()}
	score, move, ok := s.minimax(depth, 0, math.Inf(-1), math.Inf(1), maximizing)
	res := SearchResult{Score: score, Nodes: s.nodes}
	if !ok {
		return res
	}
	res.Move = move
	res.Board = board.Copy()
	res.Board.apply(move)
	return res
}

type searcher struct {
	work  *Board
	nodes int
}

func (s *searcher) minimax(depth, ply int, alpha, beta float64, maximizing bool) (float64, Move, bool) {
	s.nodes++
	if depth == 0 || s.work.Winner() != None {
		return s.work.Evaluate(), Move{}, false
	}

	side := Dark
	if maximizing {
		side = Light
	}
	moves := s.work.AllMoves(side)
	if len(moves) == 0 {
		if ply == 0 {
			return s.work.Evaluate(), Move{}, false
		}
		if maximizing {
			return math.Inf(-1), Move{}, false
		}
		return math.Inf(1), Move{}, false
	}

	// The first move is taken even when every reply is a forced loss.
	best := moves[0]
	if maximizing {
		bestScore := math.Inf(-1)
		for i, m := range moves {
			u := s.work.apply(m)
			score, _, _ := s.minimax(depth-1, ply+1, alpha, beta, false)
			s.work.undo(u)
			if i == 0 || score > bestScore {
				bestScore, best = score, m
			}
			alpha = math.Max(alpha, bestScore)
			if beta <= alpha {
				break
			}
		}
		return bestScore, best, true
	}

	bestScore := math.Inf(1)
	for i, m := range moves {
		u := s.work.apply(m)
		score, _, _ := s.minimax(depth-1, ply+1, alpha, beta, true)
		s.work.undo(u)
		if i == 0 || score < bestScore {
			bestScore, best = score, m
		}
		beta = math.Min(beta, bestScore)
		if beta <= alpha {
			break
		}
	}
	return bestScore, best, true
}
