// Package wellness derives the financial wellness score and its narrative
// tips from average cashflow versus the profile target.
package wellness

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Band is the narrative band a score falls into.
type Band string

const (
	BandLow       Band = "low"       // <= 39
	BandModerate  Band = "moderate"  // 40-59
	BandGood      Band = "good"      // 60-79
	BandExcellent Band = "excellent" // >= 80
)

// BandFor maps a display score into its narrative band.
func BandFor(score int) Band {
	switch {
	case score <= 39:
		return BandLow
	case score <= 59:
		return BandModerate
	case score <= 79:
		return BandGood
	default:
		return BandExcellent
	}
}

// bandTips are the primary tip pools per band.
var bandTips = map[Band][]string{
	BandLow: {
		"Your cashflow is well below your target. Review your biggest expense categories for cuts.",
		"Consider pausing non-essential spending until your monthly balance recovers.",
		"Small recurring expenses add up. Cancel subscriptions you no longer use.",
		"Focus on one expense category this month and try to reduce it by a quarter.",
	},
	BandModerate: {
		"You are making progress, but there is room to push your savings rate higher.",
		"Try moving one discretionary expense into a lower-cost alternative this month.",
		"Review your envelope percentages; a small shift towards savings compounds quickly.",
		"A modest side income would close most of the gap to your target.",
	},
	BandGood: {
		"Solid month-over-month discipline. Keep your recurring costs flat as income grows.",
		"You are close to target. Automating transfers on payday would lock the habit in.",
		"Consider directing windfalls straight into your savings envelope.",
		"Your spending is under control. Revisit your target; it may be time to raise it.",
	},
	BandExcellent: {
		"Excellent cashflow. Consider putting the surplus to work in longer-term assets.",
		"You are beating your target consistently. A higher target would keep you stretching.",
		"Strong position. Build or top up an emergency fund if you have not already.",
		"Great discipline. Review the balance sheet side and reduce any expensive debt.",
	},
}

// belowTargetTips is the supplementary pool when cashflow is under target.
var belowTargetTips = []string{
	"Your average cashflow is still below your monthly target.",
	"Closing the gap to your target is mostly about the next two or three months.",
	"Track this month closely; you are under your cashflow target.",
}

// meetsTargetTips is the supplementary pool when cashflow meets or exceeds
// the target.
var meetsTargetTips = []string{
	"Your average cashflow meets or exceeds your monthly target.",
	"You are ahead of target; protect the habit that got you here.",
	"Target reached. Consider what the surplus should be doing for you.",
}

// TipFor selects one primary tip from the score's band pool and one
// supplementary tip keyed on whether cashflow is under target. Selection is
// uniformly random on each call; it is narrative flavor, not a computed fact.
func TipFor(score *ScoreResult, cashflow, target decimal.Decimal) (primary, supplementary string) {
	pool := bandTips[BandFor(score.Display)]
	primary = pool[rand.Intn(len(pool))]

	if cashflow.LessThan(target) {
		supplementary = belowTargetTips[rand.Intn(len(belowTargetTips))]
	} else {
		supplementary = meetsTargetTips[rand.Intn(len(meetsTargetTips))]
	}
	return primary, supplementary
}
