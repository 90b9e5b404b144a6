package service

// PlanAction tags the delta planner's decision. A tagged result avoids
// overloading an integer where zero would mean both "nothing new" and
// "no bound".
type PlanAction int

const (
	// PlanNothing means the log already covers the whole history; nothing
	// is fetched and nothing is written.
	PlanNothing PlanAction = iota
	// PlanFetch means fetch exactly Limit newest items.
	PlanFetch
	// PlanAll means fetch the entire history.
	PlanAll
)

// FetchPlan is the planner's decision for one incremental sync.
type FetchPlan struct {
	Action PlanAction
	Limit  int
}

// PlanDelta decides how much of the saved history still needs fetching.
// lastLogged below or at zero means no prior sync is on record, so the whole
// history is new. A shrunken history (user unsaved items) clamps to
// PlanNothing rather than passing a non-positive limit downstream.
func PlanDelta(trueTotal, lastLogged int) FetchPlan {
	if lastLogged <= 0 {
		if trueTotal <= 0 {
			return FetchPlan{Action: PlanNothing}
		}
		return FetchPlan{Action: PlanAll}
	}

	delta := trueTotal - lastLogged
	if delta <= 0 {
		return FetchPlan{Action: PlanNothing}
	}
	return FetchPlan{Action: PlanFetch, Limit: delta}
}
