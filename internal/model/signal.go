package model

import "time"

// SignalKind tags the analytic family a record belongs to.
type SignalKind string

const (
	KindRatio    SignalKind = "ratio"
	KindMomentum SignalKind = "momentum"
	KindMacro    SignalKind = "macro"
)

// SignalLevel is the discrete classification of a signal.
type SignalLevel string

// Ratio levels.
const (
	LevelStrongBuySilver SignalLevel = "strong_buy_silver"
	LevelBuySilver       SignalLevel = "buy_silver"
	LevelStrongBuyGold   SignalLevel = "strong_buy_gold"
	LevelBuyGold         SignalLevel = "buy_gold"
	LevelRiskOn          SignalLevel = "risk_on"
	LevelRiskOff         SignalLevel = "risk_off"
	LevelBalanced        SignalLevel = "balanced"
)

// Momentum and composite levels.
const (
	LevelStrongBuy  SignalLevel = "strong_buy"
	LevelBuy        SignalLevel = "buy"
	LevelNeutral    SignalLevel = "neutral"
	LevelSell       SignalLevel = "sell"
	LevelStrongSell SignalLevel = "strong_sell"
)

// Macro levels.
const (
	LevelFavorable   SignalLevel = "favorable"
	LevelUnfavorable SignalLevel = "unfavorable"
)

// SignalRecord is the universal output unit of the analyzers. Ratio records
// carry the computed ratio; momentum records carry the day-over-day change.
type SignalRecord struct {
	Key       string      `json:"key"`
	Kind      SignalKind  `json:"kind"`
	Level     SignalLevel `json:"level"`
	Label     string      `json:"label"`
	Rationale string      `json:"rationale"`
	Action    string      `json:"action,omitempty"`
	Score     float64     `json:"score"` // 1..5, 3 = neutral
	Ratio     *float64    `json:"ratio,omitempty"`
	DayChange *float64    `json:"day_change,omitempty"`
}

// CompositeSignal is the average of all component scores mapped to a
// 5-level label. Derived each cycle, never stored.
type CompositeSignal struct {
	Score float64     `json:"score"`
	Level SignalLevel `json:"level"`
	Label string      `json:"label"`
}

// SignalSnapshot is the full output of one evaluation cycle.
type SignalSnapshot struct {
	Records     []SignalRecord  `json:"signals"`
	Composite   CompositeSignal `json:"composite"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Record returns the record with the given key, or nil.
func (s *SignalSnapshot) Record(key string) *SignalRecord {
	for i := range s.Records {
		if s.Records[i].Key == key {
			return &s.Records[i]
		}
	}
	return nil
}
