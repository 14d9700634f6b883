package usecase

import (
	"math"
	"math/big"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/polkiloo/logidash/internal/domain/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

type metricSlot struct {
	label  string
	change string
	trend  model.Trend
	icon   string
}

// The change/trend/icon values are fixed presentation metadata.
var (
	totalOrdersSlot      = metricSlot{"Total Orders", "+12%", model.TrendUp, "list_alt"}
	pendingShipmentsSlot = metricSlot{"Pending Shipments", "+5%", model.TrendUp, "pending_actions"}
	deliveredTodaySlot   = metricSlot{"Delivered Today", "-2%", model.TrendDown, "check_circle"}
	revenueSlot          = metricSlot{"Revenue", "+8%", model.TrendUp, "payments"}
)

func (s metricSlot) metric(value string) model.Metric {
	return model.Metric{Label: s.label, Value: value, Change: s.change, Trend: s.trend, Icon: s.icon}
}

// BuildMetrics formats raw dashboard figures into the four summary tiles.
func BuildMetrics(stats model.DashboardStats) []model.Metric {
	return []model.Metric{
		totalOrdersSlot.metric(FormatGrouped(stats.TotalOrders)),
		pendingShipmentsSlot.metric(strconv.FormatInt(stats.PendingShipments, 10)),
		deliveredTodaySlot.metric(strconv.FormatInt(stats.DeliveredOrders, 10)),
		revenueSlot.metric("$" + FormatAmount(stats.TotalRevenue)),
	}
}

// FormatGrouped renders n with en-US thousands separators.
func FormatGrouped(n int64) string {
	return printer.Sprintf("%d", n)
}

const amountFractionDigits = 3

// FormatAmount renders v with en-US grouping and at most three fraction digits.
func FormatAmount(v float64) string {
	return printer.Sprint(number.Decimal(roundHalfAway(v, amountFractionDigits), number.MaxFractionDigits(amountFractionDigits)))
}

// roundHalfAway rounds the exact binary value of v, not its shortest decimal
// form, so 2.0005 (stored just below the tie) rounds down.
func roundHalfAway(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, scale).Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)
	r, _ := new(big.Float).SetPrec(256).Quo(new(big.Float).SetInt(n), scale).Float64()
	return math.Copysign(r, v)
}
