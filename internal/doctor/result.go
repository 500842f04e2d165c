// Package doctor runs read-only setup checks before a publish.
package doctor

// Status is the outcome of one check.
type Status string

// Check outcomes.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one reported check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
