package hr

// Board groups a candidate collection into the fixed recruitment pipeline
// columns and applies stage transitions.
type Board struct {
	candidates *Collection[Candidate]
}

func NewBoard(candidates *Collection[Candidate]) *Board {
	return &Board{candidates: candidates}
}

func (b *Board) Candidates() *Collection[Candidate] {
	return b.candidates
}

// GroupByStage returns the candidates of every pipeline stage, keyed by
// stage. Every stage appears in the result, empty columns included, and
// candidates keep their original relative order within a column.
func (b *Board) GroupByStage() map[Stage][]Candidate {
	columns := make(map[Stage][]Candidate, len(StageOrder))
	for _, stage := range StageOrder {
		columns[stage] = []Candidate{}
	}
	for _, candidate := range b.candidates.Items() {
		columns[candidate.Stage] = append(columns[candidate.Stage], candidate)
	}
	return columns
}

// MoveToStage sets the stage of the candidate with the given id. Any stage is
// reachable from any stage. An unknown id is a no-op, not an error: the board
// returns the unchanged snapshot.
func (b *Board) MoveToStage(id string, stage Stage) ([]Candidate, error) {
	return b.candidates.UpdateWhere(
		func(c Candidate) bool { return c.ID == id },
		func(c Candidate) Candidate {
			c.Stage = stage
			return c
		},
	)
}
