package scoring

// Badge is the coarse styling class of a score meter.
type Badge string

const (
	BadgeHigh   Badge = "high"
	BadgeMedium Badge = "medium"
	BadgeLow    Badge = "low"
)

// Badge cut points. The evidence badge and the strength meter use
// different upper thresholds.
const (
	EvidenceBadgeHigh = 75
	StrengthBadgeHigh = 80
	BadgeMediumFloor  = 50
)

// EvidenceBadge classifies an evidence quality score with two cut points.
func EvidenceBadge(score int) Badge {
	return badge(score, EvidenceBadgeHigh)
}

// StrengthBadge classifies a framework strength score.
func StrengthBadge(score int) Badge {
	return badge(score, StrengthBadgeHigh)
}

func badge(score, high int) Badge {
	switch {
	case score >= high:
		return BadgeHigh
	case score >= BadgeMediumFloor:
		return BadgeMedium
	default:
		return BadgeLow
	}
}

// Band is the textual rating of an evidence quality score.
type Band struct {
	Label          string `json:"label"`
	Recommendation string `json:"recommendation"`
}

// Evidence bands, highest first. Floor is inclusive.
var evidenceBands = []struct {
	floor int
	band  Band
}{
	{75, Band{
		Label:          "High Quality Evidence",
		Recommendation: "Strong evidence - suitable for clinical decision-making and policy development",
	}},
	{50, Band{
		Label:          "Moderate Quality Evidence",
		Recommendation: "Moderate evidence - can inform decisions but consider limitations",
	}},
	{25, Band{
		Label:          "Low Quality Evidence",
		Recommendation: "Low evidence - use with caution, consider as preliminary findings only",
	}},
}

var veryLowBand = Band{
	Label:          "Very Low Quality Evidence",
	Recommendation: "Very low evidence - insufficient for decision-making, more research needed",
}

// EvidenceBand returns the four-way textual band for an evidence score.
func EvidenceBand(score int) Band {
	for _, b := range evidenceBands {
		if score >= b.floor {
			return b.band
		}
	}
	return veryLowBand
}
