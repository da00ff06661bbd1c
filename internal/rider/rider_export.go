package rider

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ExportFilename is the fixed download name for the fleet CSV.
const ExportFilename = "riders.csv"

var csvHeader = []string{"Full Name", "Phone", "Vehicle Number", "Status", "Company", "Username"}

// ExportCSV projects the joined rider list into the fixed six-column table.
func (s *service) ExportCSV(ctx context.Context) (string, error) {
	riders, err := s.List(ctx)
	if err != nil {
		s.logger.Error("export riders failed", zap.Error(err))
		return "", err
	}

	rows := make([][]string, 0, len(riders)+1)
	rows = append(rows, csvHeader)
	for _, r := range riders {
		companyName := "Unassigned"
		if r.CurrentAssignment != nil {
			companyName = r.CurrentAssignment.Name
		}
		rows = append(rows, []string{
			r.FullName,
			r.Phone,
			r.VehicleNumber,
			r.Status,
			companyName,
			r.Username,
		})
	}

	return buildCSV(rows), nil
}

// buildCSV joins rows with \n and no trailing newline. Quoting is stricter
// than encoding/csv: a field is quoted iff it contains a comma, a double
// quote, or a newline — never for leading whitespace — so the writer is
// hand-rolled while staying readable by any standard CSV parser.
func buildCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSVField(field))
		}
	}
	return b.String()
}

func escapeCSVField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
