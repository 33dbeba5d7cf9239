package wage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/wagedesk/internal/domain/attendance"
	"github.com/cmlabs-hris/wagedesk/internal/domain/audit"
	"github.com/cmlabs-hris/wagedesk/internal/domain/user"
	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/domain/worker"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/database"
	"github.com/cmlabs-hris/wagedesk/internal/repository/postgresql"
	"github.com/cmlabs-hris/wagedesk/internal/slip"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DefaultOrganizationID is assumed when the caller's claims carry no
// organization, mirroring the legacy single-tenant deployments.
const DefaultOrganizationID = "org-1"

// DefaultHourlyRate applies when no rate schedule entry matches the
// target month.
var DefaultHourlyRate = decimal.NewFromInt(1000)

// UnknownWorkerName is rendered when the worker record no longer exists.
const UnknownWorkerName = "不明"

var organizationNames = map[string]string{
	"org-1": "A型事業所 本店",
	"org-2": "A型事業所 第二拠点",
}

type WageServiceImpl struct {
	db              *database.DB
	calculationRepo wage.CalculationRepository
	rateRepo        wage.RateRepository
	attendanceRepo  attendance.IntervalRepository
	workerRepo      worker.Repository
	auditSink       audit.Sink
	templates       *slip.Registry
}

func NewWageService(
	db *database.DB,
	calculationRepo wage.CalculationRepository,
	rateRepo wage.RateRepository,
	attendanceRepo attendance.IntervalRepository,
	workerRepo worker.Repository,
	auditSink audit.Sink,
	templates *slip.Registry,
) wage.Service {
	return &WageServiceImpl{
		db:              db,
		calculationRepo: calculationRepo,
		rateRepo:        rateRepo,
		attendanceRepo:  attendanceRepo,
		workerRepo:      workerRepo,
		auditSink:       auditSink,
		templates:       templates,
	}
}

// Identity is the caller as established at the boundary. Checks inside
// the engine are a second line of defense behind the route middleware.
type Identity struct {
	UserID         string
	Role           user.Role
	OrganizationID string
	WorkerID       string
}

func identityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Identity{}, wage.ErrMissingIdentity
	}

	role, _ := claims["role"].(string)
	workerID, _ := claims["worker_id"].(string)

	organizationID, _ := claims["organization_id"].(string)
	if organizationID == "" {
		organizationID = DefaultOrganizationID
	}

	return Identity{
		UserID:         userID,
		Role:           user.Role(role),
		OrganizationID: organizationID,
		WorkerID:       workerID,
	}, nil
}

// transact runs fn inside one database transaction, carrying the tx on
// the context the way the repositories expect. With no pool attached
// (repository fakes in tests) fn runs directly on the caller's context.
func (s *WageServiceImpl) transact(ctx context.Context, fn func(context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// ========== TEMPLATES ==========

func (s *WageServiceImpl) ListTemplates(ctx context.Context) (wage.TemplatesResponse, error) {
	current := s.templates.Default()
	return wage.TemplatesResponse{
		Current:   wage.TemplateInfo{Code: current.Code, Label: current.Label},
		Available: s.templates.List(),
	}, nil
}

// ========== MONTHLY CALCULATION ==========

// CalculateMonthly aggregates worked hours per worker for the target
// month, resolves each worker's effective rate and persists one
// calculation row per worker, all inside one transaction. Re-running a
// period inserts fresh rows; duplicates are retained and the latest
// calculation wins.
func (s *WageServiceImpl) CalculateMonthly(ctx context.Context, req wage.CalculateMonthlyRequest) (wage.CalculateMonthlyResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.CalculateMonthlyResponse{}, err
	}

	ident, err := identityFromContext(ctx)
	if err != nil {
		return wage.CalculateMonthlyResponse{}, err
	}

	start, end := monthBounds(req.Year, req.Month)

	var items []wage.CalculationResponse
	err = s.transact(ctx, func(txCtx context.Context) error {
		intervals, err := s.attendanceRepo.ListByClockIn(txCtx, ident.OrganizationID, start, end)
		if err != nil {
			return err
		}

		hours := aggregateHours(intervals)

		for _, workerID := range sortedWorkerIDs(hours) {
			rate, err := s.resolveRate(txCtx, ident.OrganizationID, workerID, start, end)
			if err != nil {
				return err
			}

			totalHours := hours[workerID].Round(2)
			gross := totalHours.Mul(rate).Round(0).IntPart()

			created, err := s.calculationRepo.Create(txCtx, wage.Calculation{
				OrganizationID: ident.OrganizationID,
				WorkerID:       workerID,
				Year:           req.Year,
				Month:          req.Month,
				TotalHours:     totalHours,
				HourlyRate:     rate,
				GrossAmount:    gross,
				Deductions:     0,
				NetAmount:      gross,
				Status:         wage.StatusCalculated,
			})
			if err != nil {
				return err
			}

			items = append(items, wage.NewCalculationResponse(created))
		}

		return s.auditSink.Record(txCtx, audit.Entry{
			ActorID:        ident.UserID,
			OrganizationID: ident.OrganizationID,
			Action:         "CALCULATE",
			Entity:         "wage_calculations",
			EntityID:       fmt.Sprintf("%d-%d", req.Year, req.Month),
			Detail:         map[string]interface{}{"count": len(items)},
		})
	})
	if err != nil {
		return wage.CalculateMonthlyResponse{}, err
	}

	return wage.CalculateMonthlyResponse{Count: len(items), Items: items}, nil
}

// resolveRate picks the applicable rate for the month, or the fixed
// default when the worker has no matching schedule entry.
func (s *WageServiceImpl) resolveRate(ctx context.Context, organizationID, workerID string, start, end time.Time) (decimal.Decimal, error) {
	entry, err := s.rateRepo.FindEffective(ctx, organizationID, workerID, start, end)
	if err != nil {
		if errors.Is(err, wage.ErrNoEffectiveRate) {
			return DefaultHourlyRate, nil
		}
		return decimal.Decimal{}, err
	}
	return entry.HourlyRate, nil
}

// aggregateHours sums worked hours per worker. An interval belongs
// entirely to the month of its clock-in, even when the clock-out falls
// in the next month; open intervals contribute zero.
func aggregateHours(intervals []attendance.Interval) map[string]decimal.Decimal {
	hours := make(map[string]decimal.Decimal)
	for _, iv := range intervals {
		hours[iv.WorkerID] = hours[iv.WorkerID].Add(intervalHours(iv))
	}
	return hours
}

func intervalHours(iv attendance.Interval) decimal.Decimal {
	if iv.ClockOut == nil {
		return decimal.Zero
	}
	seconds := iv.ClockOut.Sub(iv.ClockIn).Seconds()
	if seconds <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(seconds).Div(decimal.NewFromInt(3600))
}

func sortedWorkerIDs(hours map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(hours))
	for id := range hours {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ========== APPROVAL ==========

// Approve advances a calculation from calculated to approved. There is
// no transition back and no rejected state.
func (s *WageServiceImpl) Approve(ctx context.Context, id string) (wage.CalculationResponse, error) {
	ident, err := identityFromContext(ctx)
	if err != nil {
		return wage.CalculationResponse{}, err
	}

	var approved wage.Calculation
	err = s.transact(ctx, func(txCtx context.Context) error {
		item, err := s.calculationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if item.OrganizationID != ident.OrganizationID {
			return wage.ErrOrganizationForbidden
		}

		approved, err = s.calculationRepo.Approve(txCtx, id, ident.UserID)
		if err != nil {
			return err
		}

		return s.auditSink.Record(txCtx, audit.Entry{
			ActorID:        ident.UserID,
			OrganizationID: ident.OrganizationID,
			Action:         "APPROVE",
			Entity:         "wage_calculations",
			EntityID:       id,
			Detail: map[string]interface{}{
				"status":      string(approved.Status),
				"approved_by": ident.UserID,
			},
		})
	})
	if err != nil {
		return wage.CalculationResponse{}, err
	}

	return wage.NewCalculationResponse(approved), nil
}

// ========== SLIP VIEW ==========

// BuildSlipView projects a calculation and its worker identity into the
// presentation model. Workers may only view their own slips.
func (s *WageServiceImpl) BuildSlipView(ctx context.Context, id string) (wage.SlipView, error) {
	ident, err := identityFromContext(ctx)
	if err != nil {
		return wage.SlipView{}, err
	}

	item, err := s.calculationRepo.GetByID(ctx, id)
	if err != nil {
		return wage.SlipView{}, err
	}
	if item.OrganizationID != ident.OrganizationID {
		return wage.SlipView{}, wage.ErrOrganizationForbidden
	}
	if ident.Role == user.RoleUser && item.WorkerID != ident.WorkerID {
		return wage.SlipView{}, wage.ErrSlipForbidden
	}

	workerName := UnknownWorkerName
	w, err := s.workerRepo.GetByID(ctx, item.WorkerID)
	if err == nil {
		workerName = w.FullName
	} else if !errors.Is(err, worker.ErrWorkerNotFound) {
		return wage.SlipView{}, err
	}

	return newSlipView(item, workerName), nil
}

func newSlipView(item wage.Calculation, workerName string) wage.SlipView {
	approver := ""
	if item.ApprovedBy != nil {
		approver = *item.ApprovedBy
	}

	return wage.SlipView{
		SlipID:           item.ID,
		OrganizationID:   item.OrganizationID,
		OrganizationName: organizationName(item.OrganizationID),
		WorkerID:         item.WorkerID,
		WorkerName:       workerName,
		Month:            fmt.Sprintf("%d-%02d", item.Year, item.Month),
		ClosingDate:      closingDate(item.Year, item.Month),
		TotalHours:       item.TotalHours,
		HourlyRate:       item.HourlyRate,
		GrossAmount:      item.GrossAmount,
		Deductions:       item.Deductions,
		NetAmount:        item.NetAmount,
		Status:           string(item.Status),
		StatusLabel:      statusLabel(item.Status),
		Remarks:          remarks(item.Status),
		ApproverID:       approver,
		IssuedAt:         time.Now().UTC().Format(time.RFC3339),
	}
}

// closingDate is the last calendar day of the month: day 0 of the next
// month, which handles variable month lengths and leap years.
func closingDate(year, month int) string {
	d := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return d.Format("2006-01-02")
}

func statusLabel(status wage.Status) string {
	switch status {
	case wage.StatusCalculated:
		return "計算済み"
	case wage.StatusApproved:
		return "確定済み"
	default:
		return string(status)
	}
}

func remarks(status wage.Status) string {
	switch status {
	case wage.StatusApproved:
		return "管理者承認済み"
	case wage.StatusCalculated:
		return "計算済み（未確定）"
	default:
		return "確認中"
	}
}

func organizationName(organizationID string) string {
	if name, ok := organizationNames[organizationID]; ok {
		return name
	}
	return fmt.Sprintf("事業所(%s)", organizationID)
}
