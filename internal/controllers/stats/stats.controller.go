package statsController

import (
	"context"
	"sort"
	"time"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
)

// Payment-type labels on itemized earning rows.
const (
	LabelDuePayment   = "Pembayaran Iuran"
	LabelHousePayment = "Pembayaran Rumah"
)

type StatsController struct {
	statsRepo repositories.StatsRepository
	db        database.DB
	log       logger.Logger
}

type DashboardResponse struct {
	TotalEarning  decimal.Decimal `json:"totalEarning"`
	TotalSpending decimal.Decimal `json:"totalSpending"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// MonthlySeriesResponse always carries exactly 12 buckets, index 0 = January.
// Empty months hold zero. The point totals ride along with the series:
// TotalEarning and Saldo are lifetime, MonthlySpending is bounded to the
// requested month.
type MonthlySeriesResponse struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	TotalEarning    decimal.Decimal   `json:"totalEarning"`
	MonthlySpending decimal.Decimal   `json:"monthlySpending"`
	Saldo           decimal.Decimal   `json:"saldo"`
	Earnings        []decimal.Decimal `json:"earnings"`
	Spendings       []decimal.Decimal `json:"spendings"`
}

type EarningItem struct {
	ResidentName string          `json:"residentName"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       PaymentStatus   `json:"status"`
	PaymentType  string          `json:"paymentType"`
	Description  *string         `json:"description,omitempty"`
}

type ReportResponse struct {
	Items []EarningItem   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type StatsControllerInterface interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	MonthlySeries(ctx context.Context, year, month int) (*MonthlySeriesResponse, error)
	EarningReport(ctx context.Context, start, end *time.Time) (*ReportResponse, error)
}

func New(repos repositories.Repository, db database.DB) StatsControllerInterface {
	return &StatsController{
		statsRepo: repos.Stats,
		db:        db,
		log:       logger.New("statsController"),
	}
}

// sumEarnings totals due payments plus paid house payments. Unpaid house
// payments never count toward earnings.
func sumEarnings(dues, houses []repositories.DatedAmount) decimal.Decimal {
	total := decimal.Zero
	for _, row := range dues {
		total = total.Add(row.Amount)
	}
	for _, row := range houses {
		if row.Status == PaymentStatusPaid {
			total = total.Add(row.Amount)
		}
	}
	return total
}

func sumAmounts(rows []repositories.DatedAmount) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}

func (c *StatsController) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	log := c.log.Function("Dashboard")

	lifetime := repositories.Period{}
	dues, err := c.statsRepo.DuePaymentAmounts(ctx, c.db.SQL, lifetime)
	if err != nil {
		return nil, log.Err("failed to get due payment totals", err)
	}
	houses, err := c.statsRepo.HousePaymentAmounts(ctx, c.db.SQL, lifetime)
	if err != nil {
		return nil, log.Err("failed to get house payment totals", err)
	}
	spendings, err := c.statsRepo.SpendingAmounts(ctx, c.db.SQL, lifetime)
	if err != nil {
		return nil, log.Err("failed to get spending totals", err)
	}

	earning := sumEarnings(dues, houses)
	spending := sumAmounts(spendings)

	return &DashboardResponse{
		TotalEarning:  earning,
		TotalSpending: spending,
		Saldo:         earning.Sub(spending).Abs(),
	}, nil
}

func (c *StatsController) MonthlySeries(
	ctx context.Context,
	year, month int,
) (*MonthlySeriesResponse, error) {
	log := c.log.Function("MonthlySeries")

	dashboard, err := c.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	period := repositories.Period{Start: &start, End: &end}

	dues, err := c.statsRepo.DuePaymentAmounts(ctx, c.db.SQL, period)
	if err != nil {
		return nil, log.Err("failed to get due payment series", err, "year", year)
	}
	houses, err := c.statsRepo.HousePaymentAmounts(ctx, c.db.SQL, period)
	if err != nil {
		return nil, log.Err("failed to get house payment series", err, "year", year)
	}
	spendings, err := c.statsRepo.SpendingAmounts(ctx, c.db.SQL, period)
	if err != nil {
		return nil, log.Err("failed to get spending series", err, "year", year)
	}

	earnings := zeroBuckets()
	spendingBuckets := zeroBuckets()
	monthlySpending := decimal.Zero

	for _, row := range dues {
		m := int(row.Date.Month()) - 1
		earnings[m] = earnings[m].Add(row.Amount)
	}
	for _, row := range houses {
		if row.Status != PaymentStatusPaid {
			continue
		}
		m := int(row.Date.Month()) - 1
		earnings[m] = earnings[m].Add(row.Amount)
	}
	for _, row := range spendings {
		m := int(row.Date.Month()) - 1
		spendingBuckets[m] = spendingBuckets[m].Add(row.Amount)
		if m == month-1 {
			monthlySpending = monthlySpending.Add(row.Amount)
		}
	}

	return &MonthlySeriesResponse{
		Year:            year,
		Month:           month,
		TotalEarning:    dashboard.TotalEarning,
		MonthlySpending: monthlySpending,
		Saldo:           dashboard.Saldo,
		Earnings:        earnings,
		Spendings:       spendingBuckets,
	}, nil
}

// EarningReport merges due and house payment line items for [start, end],
// newest first. Unpaid house payments are listed but excluded from the total.
func (c *StatsController) EarningReport(
	ctx context.Context,
	start, end *time.Time,
) (*ReportResponse, error) {
	log := c.log.Function("EarningReport")

	period := repositories.Period{Start: start}
	if end != nil {
		// End bound is inclusive on the wire, exclusive in the query.
		exclusive := end.AddDate(0, 0, 1)
		period.End = &exclusive
	}

	dueItems, err := c.statsRepo.DuePaymentItems(ctx, c.db.SQL, period)
	if err != nil {
		return nil, log.Err("failed to get due payment items", err)
	}
	houseItems, err := c.statsRepo.HousePaymentItems(ctx, c.db.SQL, period)
	if err != nil {
		return nil, log.Err("failed to get house payment items", err)
	}

	items := make([]EarningItem, 0, len(dueItems)+len(houseItems))
	total := decimal.Zero

	for _, row := range dueItems {
		items = append(items, EarningItem{
			ResidentName: row.ResidentName,
			Date:         utils.FormatDate(row.Date),
			Amount:       row.Amount,
			Status:       PaymentStatusPaid,
			PaymentType:  LabelDuePayment,
			Description:  row.Description,
		})
		total = total.Add(row.Amount)
	}
	for _, row := range houseItems {
		items = append(items, EarningItem{
			ResidentName: row.ResidentName,
			Date:         utils.FormatDate(row.Date),
			Amount:       row.Amount,
			Status:       row.Status,
			PaymentType:  LabelHousePayment,
			Description:  row.Description,
		})
		if row.Status == PaymentStatusPaid {
			total = total.Add(row.Amount)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	return &ReportResponse{Items: items, Total: total}, nil
}

func zeroBuckets() []decimal.Decimal {
	buckets := make([]decimal.Decimal, 12)
	for i := range buckets {
		buckets[i] = decimal.Zero
	}
	return buckets
}
