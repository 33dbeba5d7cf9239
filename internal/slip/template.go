package slip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
)

// DefaultCode is used when configuration names an unknown template.
const DefaultCode = "fukuoka"

// Template - one municipality's formatting profile for rendered slips.
type Template struct {
	Code       string
	Label      string
	CSVHeaders []string
	CSVRow     func(v wage.SlipView) []string
	PDFLines   func(v wage.SlipView) []string
}

var baseCSVHeaders = []string{
	"明細ID",
	"自治体様式",
	"事業所名",
	"利用者ID",
	"利用者名",
	"対象月",
	"締日",
	"総労働時間",
	"時給",
	"総支給額",
	"控除額",
	"差引支給額",
	"ステータス",
	"備考",
	"承認者ID",
	"発行日時",
}

func newTemplate(code, label, prefectureName string) Template {
	return Template{
		Code:       code,
		Label:      label,
		CSVHeaders: baseCSVHeaders,
		CSVRow: func(v wage.SlipView) []string {
			return []string{
				v.SlipID,
				prefectureName,
				v.OrganizationName,
				v.WorkerID,
				v.WorkerName,
				v.Month,
				v.ClosingDate,
				v.TotalHours.String(),
				v.HourlyRate.String(),
				strconv.FormatInt(v.GrossAmount, 10),
				strconv.FormatInt(v.Deductions, 10),
				strconv.FormatInt(v.NetAmount, 10),
				v.StatusLabel,
				v.Remarks,
				v.ApproverID,
				v.IssuedAt,
			}
		},
		PDFLines: func(v wage.SlipView) []string {
			approver := v.ApproverID
			if approver == "" {
				approver = "-"
			}
			return []string{
				"WAGE SLIP STATEMENT",
				fmt.Sprintf("自治体様式: %s（MVP）", prefectureName),
				"------------------------------------------",
				fmt.Sprintf("Issued At: %s", v.IssuedAt),
				fmt.Sprintf("Organization: %s (%s)", v.OrganizationName, v.OrganizationID),
				fmt.Sprintf("Slip ID: %s", v.SlipID),
				fmt.Sprintf("Service User: %s (%s)", v.WorkerName, v.WorkerID),
				fmt.Sprintf("Target Month: %s", v.Month),
				fmt.Sprintf("Closing Date: %s", v.ClosingDate),
				"------------------------------------------",
				"PAYMENT BREAKDOWN",
				fmt.Sprintf("Total Hours    : %s h", v.TotalHours.String()),
				fmt.Sprintf("Hourly Rate    : %s", formatYen(v.HourlyRate.IntPart())),
				fmt.Sprintf("Gross Amount   : %s", formatYen(v.GrossAmount)),
				fmt.Sprintf("Deductions     : %s", formatYen(v.Deductions)),
				fmt.Sprintf("Net Amount     : %s", formatYen(v.NetAmount)),
				"------------------------------------------",
				fmt.Sprintf("Status         : %s", v.StatusLabel),
				fmt.Sprintf("Remarks        : %s", v.Remarks),
				fmt.Sprintf("Approver ID    : %s", approver),
				"Approval Stamp : [                           ]",
				"Checked By     : [                           ]",
			}
		},
	}
}

// Registry is the process-wide set of municipality templates. It is
// built once at startup and never mutated afterwards.
type Registry struct {
	templates   map[string]Template
	order       []string
	defaultCode string
}

func NewRegistry(defaultCode string) *Registry {
	r := &Registry{
		templates:   make(map[string]Template),
		defaultCode: DefaultCode,
	}
	for _, t := range []Template{
		newTemplate("fukuoka", "福岡県様式（MVP）", "福岡県"),
		newTemplate("kumamoto", "熊本県様式（MVP）", "熊本県"),
		newTemplate("saga", "佐賀県様式（MVP）", "佐賀県"),
	} {
		r.templates[t.Code] = t
		r.order = append(r.order, t.Code)
	}
	if _, ok := r.templates[strings.ToLower(defaultCode)]; ok {
		r.defaultCode = strings.ToLower(defaultCode)
	}
	return r
}

// Default returns the configured default template.
func (r *Registry) Default() Template {
	return r.templates[r.defaultCode]
}

// Get returns the template for code, falling back to the default when
// the code is unknown.
func (r *Registry) Get(code string) Template {
	if t, ok := r.templates[strings.ToLower(code)]; ok {
		return t
	}
	return r.Default()
}

func (r *Registry) List() []wage.TemplateInfo {
	infos := make([]wage.TemplateInfo, 0, len(r.order))
	for _, code := range r.order {
		t := r.templates[code]
		infos = append(infos, wage.TemplateInfo{Code: t.Code, Label: t.Label})
	}
	return infos
}

// CSVFilename follows the wage-slip-{id}-{YYYYMM}.csv convention.
func CSVFilename(v wage.SlipView) string {
	return fmt.Sprintf("wage-slip-%s-%s.csv", v.SlipID, strings.Replace(v.Month, "-", "", 1))
}

// PDFFilename follows the wage-slip-{id}-{YYYYMM}.pdf convention.
func PDFFilename(v wage.SlipView) string {
	return fmt.Sprintf("wage-slip-%s-%s.pdf", v.SlipID, strings.Replace(v.Month, "-", "", 1))
}

func formatYen(v int64) string {
	return "JPY " + groupThousands(v)
}

func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
