package domain

import (
	"math"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityLow      Severity = "LOW"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Rank ordena as severidades; maior é mais grave
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

type AlertKind string

const (
	AlertKindStock      AlertKind = "stock"
	AlertKindDeficit    AlertKind = "projected_deficit"
	AlertKindFinance    AlertKind = "finance"
	AlertKindAttendance AlertKind = "attendance"
	AlertKindPayroll    AlertKind = "payroll"
)

// priority ordena os tipos dentro do mesmo nível de severidade; menor vem antes
func (k AlertKind) priority() int {
	switch k {
	case AlertKindStock:
		return 0
	case AlertKindDeficit:
		return 1
	case AlertKindFinance:
		return 2
	case AlertKindAttendance:
		return 3
	case AlertKindPayroll:
		return 4
	default:
		return 5
	}
}

// Alert é um achado com severidade sobre um produto ou funcionário.
// Value é a urgência numérica: quanto menor, mais urgente entre alertas do mesmo
// nível e do mesmo tipo.
type Alert struct {
	Subject   string    `json:"subject"`
	Kind      AlertKind `json:"kind"`
	Severity  Severity  `json:"severity"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Unbounded bool      `json:"unbounded,omitempty"`
	Message   string    `json:"message"`
}

// MoreUrgent reporta se a deve aparecer antes de b
func (a Alert) MoreUrgent(b Alert) bool {
	if a.Severity.Rank() != b.Severity.Rank() {
		return a.Severity.Rank() > b.Severity.Rank()
	}
	if a.Kind.priority() != b.Kind.priority() {
		return a.Kind.priority() < b.Kind.priority()
	}
	if a.Unbounded != b.Unbounded {
		return !a.Unbounded
	}
	return a.Value < b.Value
}

// RankAlerts devolve uma cópia ordenada por severidade e urgência, estável para empates
func RankAlerts(alerts []Alert) []Alert {
	ranked := make([]Alert, len(alerts))
	copy(ranked, alerts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MoreUrgent(ranked[j])
	})
	return ranked
}

// Horizon é um número de dias que pode ser ilimitado (sem consumo líquido)
type Horizon struct {
	Days      float64
	Unbounded bool
}

func UnboundedHorizon() Horizon {
	return Horizon{Unbounded: true}
}

func (h Horizon) Value() float64 {
	if h.Unbounded {
		return math.Inf(1)
	}
	return h.Days
}

func (h Horizon) String() string {
	if h.Unbounded {
		return "unbounded"
	}
	return strconv.FormatFloat(h.Days, 'f', 1, 64)
}

func (h Horizon) MarshalJSON() ([]byte, error) {
	if h.Unbounded {
		return []byte(`"unbounded"`), nil
	}
	return jsoniter.Marshal(h.Days)
}

func (h *Horizon) UnmarshalJSON(data []byte) error {
	if string(data) == `"unbounded"` || string(data) == "null" {
		*h = UnboundedHorizon()
		return nil
	}
	var days float64
	if err := jsoniter.Unmarshal(data, &days); err != nil {
		return err
	}
	*h = Horizon{Days: days}
	return nil
}
