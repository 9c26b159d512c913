package analytics

import (
	"math"

	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

type Elasticity string

// As faixas são aplicadas a |r| de Pearson. Como |r| <= 1, as duas faixas
// superiores só são alcançadas a partir de 1.0 exato.
const (
	ElasticityInelastic           Elasticity = "Inelastic"
	ElasticityRelativelyInelastic Elasticity = "Relatively Inelastic"
	ElasticityUnitElastic         Elasticity = "Unit Elastic"
	ElasticityElastic             Elasticity = "Elastic"
)

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

type PriceTrend struct {
	ProductID        int64                 `json:"product_id"`
	ProductName      string                `json:"product_name"`
	RecordedDays     int                   `json:"recorded_days"`
	AvgPrice         float64               `json:"avg_price"`
	MaxPrice         float64               `json:"max_price"`
	MinPrice         float64               `json:"min_price"`
	VolatilityPct    float64               `json:"volatility"`
	StdDeviation     float64               `json:"std_deviation"`
	Correlation      float64               `json:"elasticity_coefficient"`
	Elasticity       Elasticity            `json:"elasticity"`
	LatestPrice      float64               `json:"latest_price"`
	LatestPercentile float64               `json:"latest_price_percentile"`
	Recommendation   string                `json:"recommendation"`
	FirstPrice       float64               `json:"first_price"`
	PriceChange      float64               `json:"price_change"`
	PriceChangePct   float64               `json:"price_change_pct"`
	Direction        TrendDirection        `json:"direction"`
	Breakdown        []PriceBreakdownEntry `json:"breakdown"`
}

type PriceBreakdownEntry struct {
	Date        string  `json:"date"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price_per_unit"`
	Quantity    float64 `json:"sales_volume"`
	Recorded    bool    `json:"recorded"`
}

// AnalyzePriceTrend calcula estatísticas de preço e a correlação preço/volume.
// Dias sem registro ficam fora das estatísticas: preço zero não é um preço praticado.
func AnalyzePriceTrend(series Series[PricePoint], product domain.Product) PriceTrend {
	trend := PriceTrend{
		ProductID:   product.ID,
		ProductName: product.Name,
		Direction:   TrendFlat,
		Breakdown:   make([]PriceBreakdownEntry, 0, len(series)),
	}

	for _, p := range series {
		name := p.Label
		if name == "" {
			name = product.Name
		}
		trend.Breakdown = append(trend.Breakdown, PriceBreakdownEntry{
			Date:        p.Date.Format("2006-01-02"),
			ProductName: name,
			Price:       utils.RoundWithTwoDecimalPlace(p.Value.Price),
			Quantity:    utils.RoundWithTwoDecimalPlace(p.Value.Quantity),
			Recorded:    p.Recorded,
		})
	}

	recorded := series.Recorded()
	trend.RecordedDays = len(recorded)

	prices := make([]float64, 0, len(recorded))
	quantities := make([]float64, 0, len(recorded))
	for _, p := range recorded {
		prices = append(prices, p.Value.Price)
		quantities = append(quantities, p.Value.Quantity)
	}

	trend.Correlation = Pearson(prices, quantities)
	trend.Elasticity = ClassifyElasticity(trend.Correlation)
	trend.Recommendation = PricingRecommendation(trend.Elasticity)

	if len(prices) == 0 {
		return trend
	}

	total, maxP, minP := 0.0, prices[0], prices[0]
	for _, p := range prices {
		total += p
		maxP = math.Max(maxP, p)
		minP = math.Min(minP, p)
	}
	avg := total / float64(len(prices))

	trend.AvgPrice = avg
	trend.MaxPrice = maxP
	trend.MinPrice = minP
	if avg != 0 {
		trend.VolatilityPct = (maxP - minP) / avg * 100
	}
	trend.StdDeviation = SampleStdDev(prices)

	trend.LatestPrice = prices[len(prices)-1]
	if maxP > minP {
		trend.LatestPercentile = (trend.LatestPrice - minP) / (maxP - minP) * 100
	}

	trend.FirstPrice = prices[0]
	trend.PriceChange = trend.LatestPrice - trend.FirstPrice
	if trend.FirstPrice != 0 {
		trend.PriceChangePct = trend.PriceChange / trend.FirstPrice * 100
	}
	switch {
	case trend.PriceChange > 0:
		trend.Direction = TrendUp
	case trend.PriceChange < 0:
		trend.Direction = TrendDown
	}

	trend.round()

	return trend
}

func (t *PriceTrend) round() {
	t.AvgPrice = utils.RoundWithTwoDecimalPlace(t.AvgPrice)
	t.MaxPrice = utils.RoundWithTwoDecimalPlace(t.MaxPrice)
	t.MinPrice = utils.RoundWithTwoDecimalPlace(t.MinPrice)
	t.VolatilityPct = utils.RoundWithTwoDecimalPlace(t.VolatilityPct)
	t.StdDeviation = utils.RoundWithTwoDecimalPlace(t.StdDeviation)
	t.LatestPrice = utils.RoundWithTwoDecimalPlace(t.LatestPrice)
	t.LatestPercentile = utils.RoundWithTwoDecimalPlace(t.LatestPercentile)
	t.FirstPrice = utils.RoundWithTwoDecimalPlace(t.FirstPrice)
	t.PriceChange = utils.RoundWithTwoDecimalPlace(t.PriceChange)
	t.PriceChangePct = utils.RoundWithTwoDecimalPlace(t.PriceChangePct)
}

// Pearson devolve o coeficiente de correlação entre x e y.
// Séries vazias, de tamanhos diferentes ou sem variância resultam em 0.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) || constant(x) || constant(y) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	numerator := fn*sumXY - sumX*sumY
	denominator := (fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY)
	if denominator <= 0 {
		return 0
	}

	r := numerator / math.Sqrt(denominator)
	return math.Max(-1, math.Min(1, r))
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// SampleStdDev usa n-1 no denominador; menos de dois pontos resultam em 0
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sq := 0.0
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}

	return math.Sqrt(sq / float64(n-1))
}

func ClassifyElasticity(r float64) Elasticity {
	abs := math.Abs(r)
	switch {
	case abs < 0.5:
		return ElasticityInelastic
	case abs < 1.0:
		return ElasticityRelativelyInelastic
	case abs < 1.5:
		return ElasticityUnitElastic
	default:
		return ElasticityElastic
	}
}

func PricingRecommendation(e Elasticity) string {
	switch e {
	case ElasticityElastic:
		return "Demand is highly price-sensitive. Avoid price hikes and consider promotional pricing to grow volume."
	case ElasticityUnitElastic:
		return "Demand moves in step with price. Hold prices steady; increases will cost volume one to one."
	case ElasticityRelativelyInelastic:
		return "Demand reacts mildly to price. Small increases are possible, but watch sales volume closely."
	default:
		return "Demand is largely insensitive to price. There is room to raise prices without losing volume."
	}
}
