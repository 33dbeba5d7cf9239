package wage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/wagedesk/internal/domain/attendance"
	"github.com/cmlabs-hris/wagedesk/internal/domain/audit"
	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/domain/worker"
	"github.com/cmlabs-hris/wagedesk/internal/slip"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeCalculationRepo struct {
	items map[string]wage.Calculation
	seq   int
}

func newFakeCalculationRepo() *fakeCalculationRepo {
	return &fakeCalculationRepo{items: make(map[string]wage.Calculation)}
}

func (f *fakeCalculationRepo) Create(_ context.Context, calc wage.Calculation) (wage.Calculation, error) {
	f.seq++
	calc.ID = fmt.Sprintf("calc-%d", f.seq)
	calc.CreatedAt = time.Now().UTC()
	calc.UpdatedAt = calc.CreatedAt
	f.items[calc.ID] = calc
	return calc, nil
}

func (f *fakeCalculationRepo) GetByID(_ context.Context, id string) (wage.Calculation, error) {
	calc, ok := f.items[id]
	if !ok {
		return wage.Calculation{}, wage.ErrCalculationNotFound
	}
	return calc, nil
}

func (f *fakeCalculationRepo) Approve(_ context.Context, id string, approverID string) (wage.Calculation, error) {
	calc, ok := f.items[id]
	if !ok {
		return wage.Calculation{}, wage.ErrCalculationNotFound
	}
	calc.Status = wage.StatusApproved
	calc.ApprovedBy = &approverID
	calc.UpdatedAt = time.Now().UTC()
	f.items[id] = calc
	return calc, nil
}

type fakeRateRepo struct {
	entries []wage.RateSchedule
}

func (f *fakeRateRepo) FindEffective(_ context.Context, organizationID, workerID string, start, end time.Time) (wage.RateSchedule, error) {
	var best *wage.RateSchedule
	for i := range f.entries {
		e := f.entries[i]
		if e.OrganizationID != organizationID || e.WorkerID != workerID {
			continue
		}
		if e.EffectiveFrom.After(end) {
			continue
		}
		if e.EffectiveTo != nil && !e.EffectiveTo.After(start) {
			continue
		}
		if best == nil ||
			e.EffectiveFrom.After(best.EffectiveFrom) ||
			(e.EffectiveFrom.Equal(best.EffectiveFrom) && e.HourlyRate.GreaterThan(best.HourlyRate)) {
			best = &e
		}
	}
	if best == nil {
		return wage.RateSchedule{}, wage.ErrNoEffectiveRate
	}
	return *best, nil
}

type fakeIntervalRepo struct {
	intervals []attendance.Interval
}

func (f *fakeIntervalRepo) ListByClockIn(_ context.Context, organizationID string, start, end time.Time) ([]attendance.Interval, error) {
	var out []attendance.Interval
	for _, iv := range f.intervals {
		if iv.OrganizationID != organizationID {
			continue
		}
		if iv.ClockIn.Before(start) || !iv.ClockIn.Before(end) {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

type fakeAuditSink struct {
	entries []audit.Entry
}

func (f *fakeAuditSink) Record(_ context.Context, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type testEnv struct {
	service      wage.Service
	calculations *fakeCalculationRepo
	rates        *fakeRateRepo
	intervals    *fakeIntervalRepo
	workers      *fakeWorkerRepo
	audit        *fakeAuditSink
}

func newTestEnv() *testEnv {
	env := &testEnv{
		calculations: newFakeCalculationRepo(),
		rates:        &fakeRateRepo{},
		intervals:    &fakeIntervalRepo{},
		workers:      &fakeWorkerRepo{workers: make(map[string]worker.Worker)},
		audit:        &fakeAuditSink{},
	}
	env.service = NewWageService(nil, env.calculations, env.rates, env.intervals, env.workers, env.audit, slip.NewRegistry("fukuoka"))
	return env
}

var testJWT = jwtauth.New("HS256", []byte("test-secret"), nil)

func authedContext(t *testing.T, userID, role, organizationID, workerID string) context.Context {
	claims := map[string]interface{}{
		"user_id":         userID,
		"role":            role,
		"organization_id": organizationID,
		"type":            "access",
	}
	if workerID != "" {
		claims["worker_id"] = workerID
	}
	token, _, err := testJWT.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

// ===== MONTHLY CALCULATION =====

func TestCalculateMonthly_SingleInterval(t *testing.T) {
	env := newTestEnv()
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-01T00:00:00Z"), ClockOut: tsPtr("2026-02-01T08:00:00Z")},
	}
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1200), EffectiveFrom: ts("2026-01-01T00:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	item := result.Items[0]
	assert.Equal(t, "w-1", item.WorkerID)
	assert.True(t, item.TotalHours.Equal(decimal.NewFromInt(8)), "total hours = %s", item.TotalHours)
	assert.True(t, item.HourlyRate.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, int64(9600), item.GrossAmount)
	assert.Equal(t, int64(0), item.Deductions)
	assert.Equal(t, int64(9600), item.NetAmount)
	assert.Equal(t, "calculated", item.Status)
}

func TestCalculateMonthly_OpenIntervalContributesZero(t *testing.T) {
	env := newTestEnv()
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-03T09:00:00Z"), ClockOut: nil},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.True(t, result.Items[0].TotalHours.IsZero())
	assert.Equal(t, int64(0), result.Items[0].GrossAmount)
}

func TestCalculateMonthly_FallbackRate(t *testing.T) {
	env := newTestEnv()
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-01T00:00:00Z"), ClockOut: tsPtr("2026-02-01T04:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.True(t, result.Items[0].HourlyRate.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(4000), result.Items[0].GrossAmount)
}

func TestCalculateMonthly_WholeIntervalAttributedToClockInMonth(t *testing.T) {
	env := newTestEnv()
	// Clocks out in March, still counts fully toward February.
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-28T23:00:00Z"), ClockOut: tsPtr("2026-03-01T07:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	feb, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})
	require.NoError(t, err)
	require.Equal(t, 1, feb.Count)
	assert.True(t, feb.Items[0].TotalHours.Equal(decimal.NewFromInt(8)), "total hours = %s", feb.Items[0].TotalHours)

	mar, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, mar.Count)
}

func TestCalculateMonthly_RoundsHalfUp(t *testing.T) {
	env := newTestEnv()
	// 30 minutes at 1001/h = 500.5, rounds to 501.
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-02T09:00:00Z"), ClockOut: tsPtr("2026-02-02T09:30:00Z")},
	}
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1001), EffectiveFrom: ts("2026-01-01T00:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, int64(501), result.Items[0].GrossAmount)
}

func TestCalculateMonthly_NegativeSpanClampsToZero(t *testing.T) {
	env := newTestEnv()
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-02T09:00:00Z"), ClockOut: tsPtr("2026-02-02T08:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.True(t, result.Items[0].TotalHours.IsZero())
}

func TestCalculateMonthly_AggregatesAcrossIntervals(t *testing.T) {
	env := newTestEnv()
	env.intervals.intervals = []attendance.Interval{
		{ID: "iv-1", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-02T09:00:00Z"), ClockOut: tsPtr("2026-02-02T12:00:00Z")},
		{ID: "iv-2", OrganizationID: "org-1", WorkerID: "w-1", ClockIn: ts("2026-02-03T09:00:00Z"), ClockOut: tsPtr("2026-02-03T14:00:00Z")},
		{ID: "iv-3", OrganizationID: "org-1", WorkerID: "w-2", ClockIn: ts("2026-02-03T09:00:00Z"), ClockOut: tsPtr("2026-02-03T10:00:00Z")},
		{ID: "iv-4", OrganizationID: "org-2", WorkerID: "w-9", ClockIn: ts("2026-02-03T09:00:00Z"), ClockOut: tsPtr("2026-02-03T17:00:00Z")},
	}

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 2})

	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	// Workers come back in deterministic order.
	assert.Equal(t, "w-1", result.Items[0].WorkerID)
	assert.True(t, result.Items[0].TotalHours.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "w-2", result.Items[1].WorkerID)
	assert.True(t, result.Items[1].TotalHours.Equal(decimal.NewFromInt(1)))
}

func TestCalculateMonthly_EmptyMonthStillAudited(t *testing.T) {
	env := newTestEnv()

	ctx := authedContext(t, "admin-1", "admin", "org-1", "")
	result, err := env.service.CalculateMonthly(ctx, wage.CalculateMonthlyRequest{Year: 2026, Month: 6})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Items)
	require.Len(t, env.audit.entries, 1)
	assert.Equal(t, "CALCULATE", env.audit.entries[0].Action)
	assert.Equal(t, "2026-6", env.audit.entries[0].EntityID)
	assert.Equal(t, 0, env.audit.entries[0].Detail["count"])
}

func TestCalculateMonthly_InvalidInput(t *testing.T) {
	env := newTestEnv()
	ctx := authedContext(t, "admin-1", "admin", "org-1", "")

	cases := []wage.CalculateMonthlyRequest{
		{Year: 2019, Month: 1},
		{Year: 2101, Month: 1},
		{Year: 2026, Month: 0},
		{Year: 2026, Month: 13},
	}
	for _, req := range cases {
		_, err := env.service.CalculateMonthly(ctx, req)
		assert.Error(t, err, "request %+v", req)
	}
	assert.Empty(t, env.audit.entries)
}

// ===== RATE RESOLUTION =====

func TestResolveRate_OpenEndedEntryCoversLaterMonth(t *testing.T) {
	env := newTestEnv()
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1200), EffectiveFrom: ts("2026-01-01T00:00:00Z")},
	}
	svc := env.service.(*WageServiceImpl)

	start, end := monthBounds(2026, 2)
	rate, err := svc.resolveRate(context.Background(), "org-1", "w-1", start, end)

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1200)))
}

func TestResolveRate_LatestEffectiveFromWins(t *testing.T) {
	env := newTestEnv()
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1000), EffectiveFrom: ts("2025-01-01T00:00:00Z")},
		{ID: "r-2", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1250), EffectiveFrom: ts("2026-01-15T00:00:00Z")},
	}
	svc := env.service.(*WageServiceImpl)

	start, end := monthBounds(2026, 2)
	rate, err := svc.resolveRate(context.Background(), "org-1", "w-1", start, end)

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1250)))
}

func TestResolveRate_ExpiredEntryIgnored(t *testing.T) {
	env := newTestEnv()
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1500), EffectiveFrom: ts("2025-01-01T00:00:00Z"), EffectiveTo: tsPtr("2026-01-01T00:00:00Z")},
	}
	svc := env.service.(*WageServiceImpl)

	start, end := monthBounds(2026, 2)
	rate, err := svc.resolveRate(context.Background(), "org-1", "w-1", start, end)

	require.NoError(t, err)
	assert.True(t, rate.Equal(DefaultHourlyRate))
}

func TestResolveRate_TieBreakPrefersHigherRate(t *testing.T) {
	env := newTestEnv()
	env.rates.entries = []wage.RateSchedule{
		{ID: "r-1", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1100), EffectiveFrom: ts("2026-01-01T00:00:00Z")},
		{ID: "r-2", OrganizationID: "org-1", WorkerID: "w-1", HourlyRate: decimal.NewFromInt(1300), EffectiveFrom: ts("2026-01-01T00:00:00Z")},
	}
	svc := env.service.(*WageServiceImpl)

	start, end := monthBounds(2026, 2)
	rate, err := svc.resolveRate(context.Background(), "org-1", "w-1", start, end)

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1300)))
}

// ===== APPROVAL =====

func seedCalculation(t *testing.T, env *testEnv, organizationID, workerID string) wage.Calculation {
	created, err := env.calculations.Create(context.Background(), wage.Calculation{
		OrganizationID: organizationID,
		WorkerID:       workerID,
		Year:           2026,
		Month:          2,
		TotalHours:     decimal.NewFromInt(8),
		HourlyRate:     decimal.NewFromInt(1200),
		GrossAmount:    9600,
		Deductions:     0,
		NetAmount:      9600,
		Status:         wage.StatusCalculated,
	})
	require.NoError(t, err)
	return created
}

func TestApprove_Success(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-1")

	ctx := authedContext(t, "manager-1", "manager", "org-1", "")
	result, err := env.service.Approve(ctx, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "manager-1", *result.ApprovedBy)

	require.Len(t, env.audit.entries, 1)
	assert.Equal(t, "APPROVE", env.audit.entries[0].Action)
	assert.Equal(t, calc.ID, env.audit.entries[0].EntityID)
}

func TestApprove_NotFound(t *testing.T) {
	env := newTestEnv()

	ctx := authedContext(t, "manager-1", "manager", "org-1", "")
	_, err := env.service.Approve(ctx, "missing")

	assert.ErrorIs(t, err, wage.ErrCalculationNotFound)
	assert.Empty(t, env.audit.entries)
}

func TestApprove_CrossOrganizationForbidden(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-2", "w-1")

	ctx := authedContext(t, "manager-1", "manager", "org-1", "")
	_, err := env.service.Approve(ctx, calc.ID)

	assert.ErrorIs(t, err, wage.ErrOrganizationForbidden)
	assert.Empty(t, env.audit.entries)
}

// ===== SLIP VIEW =====

func TestBuildSlipView_Fields(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-1")
	env.workers.workers["w-1"] = worker.Worker{ID: "w-1", OrganizationID: "org-1", FullName: "山田 太郎"}

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	view, err := env.service.BuildSlipView(ctx, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, calc.ID, view.SlipID)
	assert.Equal(t, "A型事業所 本店", view.OrganizationName)
	assert.Equal(t, "山田 太郎", view.WorkerName)
	assert.Equal(t, "2026-02", view.Month)
	assert.Equal(t, "2026-02-28", view.ClosingDate)
	assert.Equal(t, "calculated", view.Status)
	assert.Equal(t, "計算済み", view.StatusLabel)
	assert.Equal(t, "計算済み（未確定）", view.Remarks)
	assert.Equal(t, "", view.ApproverID)
	assert.NotEmpty(t, view.IssuedAt)
}

func TestBuildSlipView_ApprovedLabels(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-1")
	_, err := env.calculations.Approve(context.Background(), calc.ID, "manager-1")
	require.NoError(t, err)

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	view, err := env.service.BuildSlipView(ctx, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, "確定済み", view.StatusLabel)
	assert.Equal(t, "管理者承認済み", view.Remarks)
	assert.Equal(t, "manager-1", view.ApproverID)
}

func TestBuildSlipView_UnknownWorkerName(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-gone")

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	view, err := env.service.BuildSlipView(ctx, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, "不明", view.WorkerName)
}

func TestBuildSlipView_WorkerRoleSelfAccess(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-1")

	own := authedContext(t, "user-1", "user", "org-1", "w-1")
	_, err := env.service.BuildSlipView(own, calc.ID)
	assert.NoError(t, err)

	other := authedContext(t, "user-2", "user", "org-1", "w-2")
	_, err = env.service.BuildSlipView(other, calc.ID)
	assert.ErrorIs(t, err, wage.ErrSlipForbidden)
}

func TestBuildSlipView_CrossOrganizationForbidden(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-2", "w-1")

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	_, err := env.service.BuildSlipView(ctx, calc.ID)

	assert.ErrorIs(t, err, wage.ErrOrganizationForbidden)
}

func TestBuildSlipView_FallbackOrganizationName(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-9", "w-1")

	ctx := authedContext(t, "staff-1", "staff", "org-9", "")
	view, err := env.service.BuildSlipView(ctx, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, "事業所(org-9)", view.OrganizationName)
}

func TestBuildSlipView_RepeatRendersSameContent(t *testing.T) {
	env := newTestEnv()
	calc := seedCalculation(t, env, "org-1", "w-1")
	env.workers.workers["w-1"] = worker.Worker{ID: "w-1", OrganizationID: "org-1", FullName: "山田 太郎"}

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	first, err := env.service.BuildSlipView(ctx, calc.ID)
	require.NoError(t, err)
	second, err := env.service.BuildSlipView(ctx, calc.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, first.IssuedAt)
	assert.NotEmpty(t, second.IssuedAt)
	first.IssuedAt = ""
	second.IssuedAt = ""
	assert.Equal(t, first, second)
}

// ===== HELPERS =====

func TestClosingDate(t *testing.T) {
	cases := []struct {
		year  int
		month int
		want  string
	}{
		{2026, 2, "2026-02-28"},
		{2024, 2, "2024-02-29"},
		{2026, 4, "2026-04-30"},
		{2026, 12, "2026-12-31"},
		{2026, 1, "2026-01-31"},
	}
	for _, c := range cases {
		got := closingDate(c.year, c.month)
		if got != c.want {
			t.Errorf("closingDate(%d, %d) = %q, want %q", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := monthBounds(2026, 12)
	assert.Equal(t, ts("2026-12-01T00:00:00Z"), start)
	assert.Equal(t, ts("2027-01-01T00:00:00Z"), end)
}

// ===== TEMPLATES =====

func TestListTemplates(t *testing.T) {
	env := newTestEnv()

	ctx := authedContext(t, "staff-1", "staff", "org-1", "")
	result, err := env.service.ListTemplates(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fukuoka", result.Current.Code)
	require.Len(t, result.Available, 3)
	assert.Equal(t, "fukuoka", result.Available[0].Code)
	assert.Equal(t, "kumamoto", result.Available[1].Code)
	assert.Equal(t, "saga", result.Available[2].Code)
}
