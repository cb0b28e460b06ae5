package fixtures

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// InventoryHeader is the header of a spreadsheet export with the department
// name split over two columns
var InventoryHeader = []string{"Department", "Department", "Equipment Class", "Equipment Count"}

// Generator generates fleet inventory export files for tests
type Generator struct {
	outputDir string
	rand      *rand.Rand
}

// NewGenerator creates a new test data generator. The same seed always
// produces the same files.
func NewGenerator(outputDir string, seed int64) *Generator {
	return &Generator{
		outputDir: outputDir,
		rand:      rand.New(rand.NewSource(seed)),
	}
}

// WriteCSV writes header and rows to filename in the output directory
func (g *Generator) WriteCSV(filename string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(g.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return "", err
	}
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}

	return path, writer.Error()
}

// GenerateSample writes the clean sample inventory in split-department form
func (g *Generator) GenerateSample(filename string) (string, error) {
	return g.WriteCSV(filename, InventoryHeader, SplitRows(Sample()))
}

// GenerateDefective writes rows drawn from the sample inventory, injecting
// export defects at defectRate: misspelled departments, padded or doubled
// spaces in classes, non-numeric, decimal or missing counts, missing classes
// and repeated rows.
func (g *Generator) GenerateDefective(filename string, rows int, defectRate float64) (string, error) {
	sample := Sample()
	out := make([][]string, 0, rows)

	for i := 0; i < rows; i++ {
		if len(out) > 0 && g.rand.Float64() < defectRate/4 {
			// Repeated row
			out = append(out, append([]string(nil), out[g.rand.Intn(len(out))]...))
			continue
		}

		e := sample[g.rand.Intn(len(sample))]
		dept1, dept2 := SplitDepartment(e.Department)
		record := []string{dept1, dept2, e.EquipmentClass, strconv.Itoa(e.EquipmentCount)}

		if g.rand.Float64() < defectRate {
			switch g.rand.Intn(6) {
			case 0: // Misspelled fragment
				record[1] = strings.ReplaceAll(record[1], "Services", "Servcies")
			case 1: // Padded class
				record[2] = "  " + record[2] + " "
			case 2: // Doubled internal space
				record[2] = strings.Replace(record[2], " ", "  ", 1)
			case 3: // Non-numeric count
				record[3] = "N/A"
			case 4: // Decimal count
				record[3] = record[3] + ".0"
			case 5: // Missing class
				record[2] = ""
			}
		}

		out = append(out, record)
	}

	return g.WriteCSV(filename, InventoryHeader, out)
}

// SplitDepartment splits a department name at its first space, the way the
// export spreads long names over two columns
func SplitDepartment(department string) (string, string) {
	first, rest, _ := strings.Cut(department, " ")
	return first, rest
}

// SplitRows converts entries to split-department CSV rows
func SplitRows(entries []Entry) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		dept1, dept2 := SplitDepartment(e.Department)
		rows[i] = []string{dept1, dept2, e.EquipmentClass, strconv.Itoa(e.EquipmentCount)}
	}
	return rows
}
