// Package export renders a user's project history as a career sheet (職務経歴)
// for interviews.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/yusuke/career-tracker/internal/dates"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/stats"
)

// csvHeader is the career sheet column row. Labels are Japanese because the
// sheet is handed to Japanese sales/interview counterparts as-is.
var csvHeader = []string{
	"案件名",
	"会社名",
	"開始日",
	"終了日",
	"参画状況",
	"役割",
	"商流",
	"月単価(万円)",
	"スキル",
	"概要",
}

// CareerSheetCSV renders projects as UTF-8 CSV prefixed with a BOM so Excel
// opens it with the right encoding. The now argument anchors the
// active/finished label.
func CareerSheetCSV(projects []db.Project, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range projects {
		p := &projects[i]

		end := formatDate(p.EndDate)
		status := "終了"
		if stats.IsActiveAt(p, now) {
			status = "参画中"
		}
		if end == "" {
			end = "現在"
		}

		rate := ""
		if p.MonthlyRate > 0 {
			rate = fmt.Sprintf("%d", p.MonthlyRate)
		}

		row := []string{
			p.ProjectName,
			p.Company,
			formatDate(p.StartDate),
			end,
			status,
			p.Role,
			p.ContractTier,
			rate,
			strings.Join(p.Skills, " / "),
			flattenNewlines(p.Description),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName builds the suggested download name, dated for traceability.
func FileName(now time.Time) string {
	return fmt.Sprintf("career-sheet-%s.csv", dates.ToYmd(now))
}

func formatDate(d *db.Date) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return dates.ToYmd(d.Time)
}

func flattenNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
