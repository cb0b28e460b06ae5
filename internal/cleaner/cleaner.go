package cleaner

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// Cleaner repairs and validates raw fleet inventory rows. A Cleaner holds no
// per-run state and may be reused.
type Cleaner struct {
	corrections Corrections
	validate    *validator.Validate
	logger      *slog.Logger
}

// Option configures a Cleaner
type Option func(*Cleaner)

// WithCorrections replaces the spelling correction table
func WithCorrections(c Corrections) Option {
	return func(cl *Cleaner) {
		cl.corrections = c
	}
}

// WithLogger sets the logger used for stage statistics
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Cleaner) {
		if logger != nil {
			cl.logger = logger
		}
	}
}

// New creates a Cleaner with the default corrections table
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		corrections: DefaultCorrections(),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// row is a record moving through the stages
type row struct {
	raw models.RawRecord

	department string
	class      string
	count      int
	countValid bool
}

// stageFunc inspects or rewrites a row and reports whether it is kept
type stageFunc func(r *row) bool

// run carries the partition output of one Clean call
type run struct {
	rows   []*row
	result *models.CleanResult
}

// partition applies fn to every row, keeping the rows it accepts and
// recording the rest as rejections of stage
func (r *run) partition(stage models.Stage, fn stageFunc) {
	kept := r.rows[:0:0]
	for _, rw := range r.rows {
		if fn(rw) {
			kept = append(kept, rw)
			continue
		}
		r.result.Rejected = append(r.result.Rejected, models.Rejection{Record: rw.raw, Stage: stage})
	}

	r.result.Stages = append(r.result.Stages, models.StageStats{
		Stage: stage,
		In:    len(r.rows),
		Out:   len(kept),
	})
	r.rows = kept
}

// Clean runs every cleaning stage in order over rows
func (c *Cleaner) Clean(rows []models.RawRecord) *models.CleanResult {
	r := &run{
		rows:   make([]*row, len(rows)),
		result: &models.CleanResult{},
	}
	for i := range rows {
		r.rows[i] = &row{raw: rows[i]}
	}

	r.partition(models.StageRepair, repairDepartment)
	r.partition(models.StageRequired, requireFields)
	r.partition(models.StageNormalize, normalizeClass)
	r.partition(models.StageCoerce, coerceCount)
	r.partition(models.StageNumeric, func(rw *row) bool { return rw.countValid })
	r.partition(models.StageSpelling, func(rw *row) bool {
		rw.department = c.corrections.Apply(rw.department)
		return true
	})
	r.partition(models.StageInvariant, func(rw *row) bool {
		return c.validate.Struct(rw.record()) == nil
	})
	r.partition(models.StageDeduplicate, dedupe())

	records := make([]models.CleanRecord, len(r.rows))
	for i, rw := range r.rows {
		records[i] = rw.record()
	}
	r.result.Records = records

	for _, s := range r.result.Stages {
		c.logger.Debug("cleaning stage",
			slog.String("stage", string(s.Stage)),
			slog.Int("in", s.In),
			slog.Int("out", s.Out),
			slog.Int("dropped", s.Dropped()))
	}

	return r.result
}

func (rw *row) record() models.CleanRecord {
	return models.CleanRecord{
		Department:     rw.department,
		EquipmentClass: rw.class,
		EquipmentCount: rw.count,
	}
}

// repairDepartment joins the two department fragments
func repairDepartment(rw *row) bool {
	rw.department = strings.TrimSpace(rw.raw.Department.Or("") + " " + rw.raw.DepartmentSecondary.Or(""))
	return true
}

// requireFields drops rows whose class or count cell is absent
func requireFields(rw *row) bool {
	return rw.raw.EquipmentClass.Valid && rw.raw.EquipmentCount.Valid
}

// normalizeClass trims the class and replaces each non-overlapping pair of
// spaces with one. A single pass: three spaces become two.
func normalizeClass(rw *row) bool {
	rw.class = CollapseDoubleSpaces(strings.TrimSpace(rw.raw.EquipmentClass.Value))
	return true
}

// CollapseDoubleSpaces replaces each "  " with " " in one left-to-right pass
func CollapseDoubleSpaces(s string) string {
	return strings.ReplaceAll(s, "  ", " ")
}

// coerceCount parses the count. Unparsable values mark the row invalid
// rather than dropping it here.
func coerceCount(rw *row) bool {
	rw.count, rw.countValid = ParseCount(rw.raw.EquipmentCount.Value)
	return true
}

// ParseCount parses a numeric count and truncates it toward zero. It
// reports false for text, NaN, infinities and values outside the int range.
func ParseCount(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	t := math.Trunc(f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, false
	}

	return int(t), true
}

// dedupe keeps the first occurrence of each (department, class, count)
func dedupe() stageFunc {
	seen := make(map[models.CleanRecord]struct{})
	return func(rw *row) bool {
		key := rw.record()
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	}
}
