package game

// Result is the end-of-game outcome: the players sharing the maximum
// score and that score. A tie keeps the full tied set rather than
// collapsing to a generic draw.
type Result struct {
	Winners []int
	Score   int
}

func (r Result) Tie() bool {
	return len(r.Winners) > 1
}

// Result computes the winner set. The second return is false while the
// game is still in progress.
func (s *Session) Result() (Result, bool) {
	if !s.over {
		return Result{}, false
	}

	max := 0
	for _, sc := range s.scores {
		if sc > max {
			max = sc
		}
	}

	var winners []int
	for p, sc := range s.scores {
		if sc == max {
			winners = append(winners, p)
		}
	}

	return Result{Winners: winners, Score: max}, true
}
