package game

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
)

// ExpertJudgementWindow is the widest offset for +2 (PGREAT) and +1
// (GREAT) in IIDX style EX score, in milliseconds.
type ExpertJudgementWindow [2]float64

// ExpertJudgementWindowFromChart uses the #RANK header, 2 (normal) when
// missing.
func ExpertJudgementWindowFromChart(chart *bms.Chart) ExpertJudgementWindow {
	rank := 2
	if v, ok := chart.Headers.Get("rank"); ok {
		if r, err := strconv.Atoi(strings.TrimSpace(v)); nil == err {
			rank = r
		}
	}
	switch rank {
	case 0:
		return ExpertJudgementWindow{8, 24} // very hard
	case 1:
		return ExpertJudgementWindow{15, 30}
	case 3:
		return ExpertJudgementWindow{21, 60} // easy
	}
	return ExpertJudgementWindow{18, 40}
}
