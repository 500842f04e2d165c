package publish

//go:generate stringer -type=Stage -linecomment

// Stage is a step of one publish run. Runs move forward through the
// stages in order and end in StageDone or StageFailed.
type Stage int

// Run stages.
const (
	StageInit      Stage = iota // init
	StageResolving              // resolving
	StageFetching               // fetching
	StageBuilding               // building
	StageSyncing                // syncing
	StageDone                   // done
	StageFailed                 // failed
)

// Terminal reports whether no further transition can happen.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}
