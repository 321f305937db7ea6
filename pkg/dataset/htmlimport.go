package dataset

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseExamTable extracts exam sittings from a published HTML seating plan.
//
// Every <tr> with at least six <td> cells is read as
// date | day | shift | room | course code | roll numbers, where roll numbers
// are separated by commas, semicolons or whitespace. Header rows (<th>) and
// short rows are skipped.
func ParseExamTable(r io.Reader) ([]ExamRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []ExamRecord

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		text := func(idx int) string {
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		rolls := strings.FieldsFunc(text(5), func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
		})
		if len(rolls) == 0 {
			return
		}

		records = append(records, ExamRecord{
			Date:       text(0),
			Day:        text(1),
			Shift:      text(2),
			RoomNo:     text(3),
			CourseCode: text(4),
			RollNoList: normalizeRolls(rolls),
		})
	})

	return records, nil
}

func normalizeRolls(rolls []string) []string {
	out := make([]string, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, strings.ToUpper(r))
	}
	return out
}
