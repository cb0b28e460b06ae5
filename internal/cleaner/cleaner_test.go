package cleaner

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/fixtures"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
	"github.com/zuhrulumam/fleet_inventory/internal/reader"
)

var (
	p  = models.Present
	na = models.Missing()
)

func raw(dept1, dept2, class, count models.Field) models.RawRecord {
	return models.RawRecord{
		Department:          dept1,
		DepartmentSecondary: dept2,
		EquipmentClass:      class,
		EquipmentCount:      count,
	}
}

func TestClean_FieldRepair(t *testing.T) {
	tests := []struct {
		name  string
		dept1 models.Field
		dept2 models.Field
		want  string
	}{
		{"both fragments", p("Liquor"), p("Control"), "Liquor Control"},
		{"secondary missing", p("Libraries"), na, "Libraries"},
		{"primary missing", na, p("Recreation"), "Recreation"},
		{"padded fragments", p("  Human "), p(" Rights  "), "Human   Rights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().Clean([]models.RawRecord{raw(tt.dept1, tt.dept2, p("Sedan"), p("2"))})

			require.Len(t, result.Records, 1)
			assert.Equal(t, tt.want, result.Records[0].Department)
		})
	}
}

func TestClean_RequiredFields(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Libraries"), na, na, p("2")),
		raw(p("Libraries"), na, p("Van"), na),
		raw(p("Libraries"), na, p("Van"), p("2")),
	}

	result := New().Clean(rows)

	assert.Len(t, result.Records, 1)
	assert.Len(t, result.RejectedBy(models.StageRequired), 2)
}

func TestClean_SpaceCollapseIsSinglePass(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"Pick Up Trucks", "Pick Up Trucks"},
		{"Pick  Up Trucks", "Pick Up Trucks"},
		{"Pick   Up Trucks", "Pick  Up Trucks"},
		{"Pick    Up Trucks", "Pick  Up Trucks"},
		{"  Transit  Bus  ", "Transit Bus"},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.class), func(t *testing.T) {
			result := New().Clean([]models.RawRecord{raw(p("Transportation"), na, p(tt.class), p("1"))})

			require.Len(t, result.Records, 1)
			assert.Equal(t, tt.want, result.Records[0].EquipmentClass)
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{"12.0", 12, true},
		{"12.9", 12, true},
		{"-3.5", -3, true},
		{" 7 ", 7, true},
		{"1e3", 1000, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"twelve", 0, false},
		{"1,000", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1e30", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClean_NumericFilter(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Liquor"), p("Control"), p("Van"), p("N/A")),
		raw(p("Liquor"), p("Control"), p("SUV"), p("12.0")),
	}

	result := New().Clean(rows)

	require.Len(t, result.Records, 1)
	assert.Equal(t, models.CleanRecord{Department: "Liquor Control", EquipmentClass: "SUV", EquipmentCount: 12}, result.Records[0])

	rejected := result.RejectedBy(models.StageNumeric)
	require.Len(t, rejected, 1)
	assert.Equal(t, "N/A", rejected[0].Record.EquipmentCount.Value)
}

func TestClean_SpellingCorrection(t *testing.T) {
	tests := []struct {
		name  string
		dept1 string
		dept2 string
		want  string
	}{
		{"split misspelling", "Enviromnental", "Services", "Environmental Services"},
		{"both tokens misspelled", "Enviromnental", "Servcies", "Environmental Services"},
		{"whole field", "Rehabilltation", "", "Rehabilitation"},
		{"lowercase is not corrected", "enviromnental", "services", "enviromnental services"},
		{"substring is not corrected", "Enviromnentals", "Office", "Enviromnentals Office"},
		{"unknown passes through", "Permitting", "Servcie", "Permitting Servcie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().Clean([]models.RawRecord{raw(p(tt.dept1), p(tt.dept2), p("Van"), p("1"))})

			require.Len(t, result.Records, 1)
			assert.Equal(t, tt.want, result.Records[0].Department)
		})
	}
}

func TestClean_CustomCorrections(t *testing.T) {
	c := New(WithCorrections(DefaultCorrections().With(map[string]string{"Sherrifs": "Sheriffs"})))

	result := c.Clean([]models.RawRecord{
		raw(p("Sherrifs"), p("Office"), p("Sedan"), p("1")),
		raw(p("Enviromnental"), p("Protection"), p("Sedan"), p("1")),
	})

	require.Len(t, result.Records, 2)
	assert.Equal(t, "Sheriffs Office", result.Records[0].Department)
	assert.Equal(t, "Environmental Protection", result.Records[1].Department)
}

func TestClean_Deduplication(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Liquor"), p("Control"), p("Van"), p("2")),
		raw(p("Liquor"), p("Control"), p("Van"), p("2")),
		raw(p("Liquor"), p("Control"), p("Van"), p("3")),
	}

	result := New().Clean(rows)

	assert.Equal(t, []models.CleanRecord{
		{Department: "Liquor Control", EquipmentClass: "Van", EquipmentCount: 2},
		{Department: "Liquor Control", EquipmentClass: "Van", EquipmentCount: 3},
	}, result.Records)
}

func TestClean_DeduplicationAfterNormalization(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Technology"), p("Servcies"), p("Van"), p("11")),
		raw(p("Technology"), p("Services"), p(" Van "), p("11.0")),
		raw(p("Recreation"), na, p("SUV"), p("2")),
	}

	result := New().Clean(rows)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "Technology Services", result.Records[0].Department)
	assert.Equal(t, "Recreation", result.Records[1].Department, "order of survivors is preserved")
	assert.Len(t, result.RejectedBy(models.StageDeduplicate), 1)
}

func TestClean_EmptyKeyFieldsRejected(t *testing.T) {
	rows := []models.RawRecord{
		raw(na, na, p("Van"), p("2")),
		raw(p("  "), p(""), p("Van"), p("2")),
		raw(p("Libraries"), na, p("   "), p("2")),
		raw(p("Libraries"), na, p("\t"), p("2")),
	}

	result := New().Clean(rows)

	assert.Empty(t, result.Records)
	assert.Len(t, result.RejectedBy(models.StageInvariant), 4)
}

func TestClean_NegativeCountsKept(t *testing.T) {
	result := New().Clean([]models.RawRecord{raw(p("Libraries"), na, p("Van"), p("-2"))})

	require.Len(t, result.Records, 1)
	assert.Equal(t, -2, result.Records[0].EquipmentCount)
}

func TestClean_StageOrderAndCounts(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Libraries"), na, na, p("1")),
		raw(p("Libraries"), na, p("Van"), p("x")),
		raw(p("Libraries"), na, p("Van"), p("2")),
		raw(p("Libraries"), na, p("Van"), p("2")),
	}

	result := New().Clean(rows)

	stages := make([]models.Stage, len(result.Stages))
	for i, s := range result.Stages {
		stages[i] = s.Stage
	}
	assert.Equal(t, []models.Stage{
		models.StageRepair,
		models.StageRequired,
		models.StageNormalize,
		models.StageCoerce,
		models.StageNumeric,
		models.StageSpelling,
		models.StageInvariant,
		models.StageDeduplicate,
	}, stages)

	dropped := make(map[models.Stage]int)
	for _, s := range result.Stages {
		dropped[s.Stage] = s.Dropped()
	}
	assert.Equal(t, 1, dropped[models.StageRequired])
	assert.Equal(t, 1, dropped[models.StageNumeric])
	assert.Equal(t, 1, dropped[models.StageDeduplicate])
	assert.Equal(t, 0, dropped[models.StageCoerce], "coercion marks rows, it never drops them")
	assert.Len(t, result.Rejected, 3)
}

func TestClean_Summary(t *testing.T) {
	rows := []models.RawRecord{
		raw(p("Liquor"), p("Control"), p("Van"), p("2")),
		raw(p("Liquor"), p("Control"), p("Heavy Duty"), p("42")),
		raw(p("Libraries"), na, p("Van"), p("2")),
		raw(p("Libraries"), na, p("Van"), p("oops")),
	}

	result := New().Clean(rows)

	summary := result.Summary()
	assert.Equal(t, models.ValidationSummary{
		Departments:      2,
		EquipmentClasses: 2,
		TotalEquipment:   46,
		Records:          3,
	}, summary)

	total := 0
	for _, r := range result.Records {
		total += r.EquipmentCount
	}
	assert.Equal(t, total, summary.TotalEquipment)
}

func TestClean_EmptyInput(t *testing.T) {
	result := New().Clean(nil)

	assert.Empty(t, result.Records)
	assert.Equal(t, models.ValidationSummary{}, result.Summary())
}

func TestClean_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path, err := fixtures.NewGenerator(dir, 42).GenerateDefective("fleet.csv", 400, 0.3)
	require.NoError(t, err)

	table, err := reader.ReadFile(context.Background(), path, reader.Config{})
	require.NoError(t, err)

	c := New()
	first, err := c.CleanTable(table)
	require.NoError(t, err)
	require.NotEmpty(t, first.Records)

	// Put the corrected departments back into the two-fragment shape
	reexported := make([]models.RawRecord, len(first.Records))
	for i, r := range first.Records {
		dept1, dept2 := fixtures.SplitDepartment(r.Department)
		reexported[i] = raw(p(dept1), p(dept2), p(r.EquipmentClass), p(strconv.Itoa(r.EquipmentCount)))
	}

	second := c.Clean(reexported)

	assert.ElementsMatch(t, first.Records, second.Records)
	assert.Empty(t, second.Rejected)
}

func TestCleanTable_Binding(t *testing.T) {
	table := &models.Table{
		FileName: "fleet.csv",
		Headers:  []string{"Unit", " Department ", "Department", "Equipment Class", "Equipment Count", "Notes"},
		Rows: []models.Row{
			{LineNumber: 2, Cells: []models.Field{p("U1"), p("Enviromnental"), p("Servcies"), p("Sedan"), p("3"), p("spare")}},
		},
	}

	result, err := New().CleanTable(table)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, models.CleanRecord{
		Department:     "Environmental Services",
		EquipmentClass: "Sedan",
		EquipmentCount: 3,
	}, result.Records[0])
}

func TestBind(t *testing.T) {
	table := &models.Table{
		FileName: "fleet.csv",
		Headers:  []string{"Department", "Department.1", "Equipment_Class", "Equipment Count"},
		Rows: []models.Row{
			{LineNumber: 7, Cells: []models.Field{p("Liquor"), p("Control")}},
		},
	}

	records, err := Bind(table)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 7, records[0].LineNumber)
	assert.Equal(t, "fleet.csv", records[0].FileName)
	assert.Equal(t, p("Control"), records[0].DepartmentSecondary)
	assert.False(t, records[0].EquipmentClass.Valid, "short row binds missing fields")
}

func TestBind_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr bool
	}{
		{"all present", []string{"Department", "Department", "Equipment Class", "Equipment Count"}, false},
		{"secondary optional", []string{"Department", "Equipment Class", "Equipment Count"}, false},
		{"no department", []string{"Dept", "Equipment Class", "Equipment Count"}, true},
		{"no class", []string{"Department", "Equipment Count"}, true},
		{"no count", []string{"Department", "Equipment Class"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().CleanTable(&models.Table{FileName: "x.csv", Headers: tt.headers})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errors.ErrMissingColumn)
			assert.True(t, errors.IsStructural(err))
		})
	}
}

func BenchmarkClean(b *testing.B) {
	sample := fixtures.Sample()
	rows := make([]models.RawRecord, 0, len(sample)*20)
	for i := 0; i < 20; i++ {
		for _, e := range sample {
			dept1, dept2 := fixtures.SplitDepartment(e.Department)
			rows = append(rows, raw(p(dept1), p(dept2), p(e.EquipmentClass), p(strconv.Itoa(e.EquipmentCount))))
		}
	}

	c := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.Clean(rows)
	}
}
