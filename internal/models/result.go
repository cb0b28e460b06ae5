package models

// Stage identifies one cleaning pass
type Stage string

const (
	StageRepair      Stage = "REPAIR"
	StageRequired    Stage = "REQUIRED"
	StageNormalize   Stage = "NORMALIZE"
	StageCoerce      Stage = "COERCE"
	StageNumeric     Stage = "NUMERIC"
	StageSpelling    Stage = "SPELLING"
	StageInvariant   Stage = "INVARIANT"
	StageDeduplicate Stage = "DEDUPLICATE"
)

// Rejection is a raw row dropped by a cleaning stage
type Rejection struct {
	Record RawRecord
	Stage  Stage
}

// StageStats records how many rows entered and left a stage
type StageStats struct {
	Stage Stage
	In    int
	Out   int
}

// Dropped returns the number of rows the stage removed
func (s StageStats) Dropped() int {
	return s.In - s.Out
}

// CleanResult is the outcome of a cleaning run. Records must not be
// modified once returned; a new run produces a new result.
type CleanResult struct {
	Records  []CleanRecord
	Rejected []Rejection
	Stages   []StageStats
}

// Summary computes the validation summary over the clean records
func (r *CleanResult) Summary() ValidationSummary {
	return Summarize(r.Records)
}

// RejectedBy returns the rejections attributed to stage
func (r *CleanResult) RejectedBy(stage Stage) []Rejection {
	var out []Rejection
	for _, rej := range r.Rejected {
		if rej.Stage == stage {
			out = append(out, rej)
		}
	}
	return out
}

// ValidationSummary is a read-only view over a clean record set
type ValidationSummary struct {
	// Departments is the number of distinct departments
	Departments int

	// EquipmentClasses is the number of distinct equipment classes
	EquipmentClasses int

	// TotalEquipment is the sum of all equipment counts
	TotalEquipment int

	// Records is the number of clean records
	Records int
}

// Summarize computes a ValidationSummary. It is recomputed on every call.
func Summarize(records []CleanRecord) ValidationSummary {
	departments := make(map[string]struct{})
	classes := make(map[string]struct{})
	total := 0

	for _, r := range records {
		departments[r.Department] = struct{}{}
		classes[r.EquipmentClass] = struct{}{}
		total += r.EquipmentCount
	}

	return ValidationSummary{
		Departments:      len(departments),
		EquipmentClasses: len(classes),
		TotalEquipment:   total,
		Records:          len(records),
	}
}
