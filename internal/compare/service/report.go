package service

import (
	"fmt"

	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
)

// BuildReport computes the per-field matching score for a chosen pair of
// records, in the order of fields. Pure presentation data: no filtering,
// no re-ranking. The ratio is candidate/source as a percentage with one
// decimal ("138.7%"); values over 100% just mean the candidate has
// headroom. Whenever the source is unknown or zero, or the candidate is
// unknown, the row renders "N/A" instead of dividing.
func BuildReport(source, candidate model.Record, fields []string) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(fields))
	for _, f := range fields {
		sv := source.Spec(f)
		cv := candidate.Spec(f)
		ratio := "N/A"
		if sv.Known && sv.Num != 0 && cv.Known {
			ratio = fmt.Sprintf("%.1f%%", cv.Num/sv.Num*100)
		}
		rows = append(rows, model.ReportRow{
			Field:     f,
			Source:    sv.Ptr(),
			Candidate: cv.Ptr(),
			Ratio:     ratio,
		})
	}
	return rows
}
