package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain/contract"
	"rentdesk-backend/pkg/money"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testContract(freq contract.PaymentFrequency, rent float64, start, end time.Time) *contract.Contract {
	return &contract.Contract{
		ContractID:       strings.Repeat("c", 32),
		TenantID:         strings.Repeat("t", 32),
		UnitID:           strings.Repeat("u", 32),
		StartDate:        start,
		EndDate:          end,
		MonthlyRent:      rent,
		PaymentFrequency: freq,
		Status:           contract.StatusActive,
	}
}

func TestBuildSchedule_Monthly(t *testing.T) {
	c := testContract(contract.FreqMonthly, 1200, date(2026, 1, 1), date(2027, 1, 1))
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 12)

	for i, inv := range invs {
		assert.Equal(t, i+1, inv.InstallmentNumber)
		assert.Equal(t, 1200.0, inv.Amount)
		assert.Equal(t, 0.0, inv.PaidAmount)
		assert.Equal(t, inv.Amount, inv.RemainingAmount)
		assert.Equal(t, InvoicePending, inv.Status)
		assert.Equal(t, date(2026, time.Month(1+i), 1), inv.DueDate)
	}
}

func TestBuildSchedule_TwoPayments(t *testing.T) {
	// 12 months at 1200/month split into two installments of 7200
	c := testContract(contract.Freq2Payment, 1200, date(2026, 1, 1), date(2027, 1, 1))
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 2)

	assert.Equal(t, 7200.0, invs[0].Amount)
	assert.Equal(t, 7200.0, invs[1].Amount)
	assert.Equal(t, date(2026, 1, 1), invs[0].DueDate)
	assert.Equal(t, date(2026, 7, 1), invs[1].DueDate)
}

func TestBuildSchedule_RemainderOnFinalInstallment(t *testing.T) {
	// 10 months at 100 => total 1000, three installments of 333.33 + 333.33 + 333.34
	c := testContract(contract.Freq3Payment, 100, date(2026, 1, 1), date(2026, 11, 1))
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 3)

	assert.Equal(t, 333.33, invs[0].Amount)
	assert.Equal(t, 333.33, invs[1].Amount)
	assert.Equal(t, 333.34, invs[2].Amount)

	sum := 0.0
	for _, inv := range invs {
		sum = money.Round2(sum + inv.Amount)
	}
	assert.Equal(t, 1000.0, sum)
}

func TestBuildSchedule_SinglePayment(t *testing.T) {
	c := testContract(contract.Freq1Payment, 500, date(2026, 3, 15), date(2027, 3, 15))
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, 6000.0, invs[0].Amount)
	assert.Equal(t, date(2026, 3, 15), invs[0].DueDate)
}

func TestBuildSchedule_MinimumOneMonth(t *testing.T) {
	// shorter than a calendar month still bills one full month
	c := testContract(contract.FreqMonthly, 800, date(2026, 5, 1), date(2026, 5, 20))
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, 800.0, invs[0].Amount)
}

func TestBuildSchedule_EndBeforeStart(t *testing.T) {
	c := testContract(contract.FreqMonthly, 800, date(2026, 5, 1), date(2026, 4, 1))
	_, err := BuildSchedule(c)
	assert.ErrorIs(t, err, ErrBadSchedule)
}

func TestBuildSchedule_InvalidFrequency(t *testing.T) {
	c := testContract(contract.PaymentFrequency("weekly"), 800, date(2026, 1, 1), date(2027, 1, 1))
	_, err := BuildSchedule(c)
	assert.ErrorIs(t, err, ErrBadSchedule)
}

func TestBuildSchedule_InstallmentOverrideForMonthly(t *testing.T) {
	c := testContract(contract.FreqMonthly, 1000, date(2026, 1, 1), date(2027, 1, 1))
	c.NumberOfInstallments = 3
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	assert.Len(t, invs, 3)
}

func TestBuildSchedule_DueDayClamped(t *testing.T) {
	day := 31
	c := testContract(contract.FreqMonthly, 900, date(2026, 1, 15), date(2026, 4, 15))
	c.DueDateDay = &day
	invs, err := BuildSchedule(c)
	require.NoError(t, err)
	require.Len(t, invs, 3)

	assert.Equal(t, date(2026, 1, 31), invs[0].DueDate)
	// February has no 31st; the due day clamps to the month's last day
	assert.Equal(t, date(2026, 2, 28), invs[1].DueDate)
	assert.Equal(t, date(2026, 3, 31), invs[2].DueDate)
}

func TestInvoiceNumber(t *testing.T) {
	n := InvoiceNumber("aaaaaaaaaaaaaaaaaaaaaaaaaa1b2c3d", 7)
	assert.Equal(t, "INV-1B2C3D-007", n)
}
