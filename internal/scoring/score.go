package scoring

import (
	"math"
	"sort"

	"github.com/abhisek/compass/internal/assessment"
)

// Score reduces the answers into a Result. It is pure and
// deterministic: identical inputs always produce the identical Result.
// Sections with no answers score 0, and every ratio is clamped to
// [0, 1] before rounding so out-of-range answer values cannot push a
// score outside [0, 100].
func Score(qn *assessment.Questionnaire, answers []assessment.Answer, cfg Config) *Result {
	sectionScores := sectionScores(qn, answers)

	byID := make(map[string]int, len(sectionScores))
	for _, s := range sectionScores {
		byID[s.SectionID] = s.Score
	}

	profile := make([]AxisScore, 0, len(cfg.Axes))
	for _, axis := range cfg.Axes {
		profile = append(profile, AxisScore{
			Key:   axis.Key,
			Label: axis.Label,
			Score: blend(axis.Blend, byID),
		})
	}

	overall := overallScore(qn, cfg, byID)
	tier := pickTier(cfg.Tiers, overall)

	careers := make([]CareerMatch, 0, len(cfg.Careers))
	for _, c := range cfg.Careers {
		careers = append(careers, CareerMatch{
			Role:           c.Role,
			Description:    c.Description,
			SkillLevel:     c.SkillLevel,
			AlignmentScore: clampScore(max(c.Floor, overall-c.Offset)),
		})
	}

	return &Result{
		Recommendation:  tier.Recommendation,
		ConfidenceScore: overall,
		Reason:          tier.Reason,
		NextSteps:       tier.NextSteps,
		SectionScores:   sectionScores,
		Profile:         profile,
		Careers:         careers,
	}
}

// sectionScores computes the per-section normalized scores in section
// order. Each answered question contributes value*weight against a
// maximum of MaxValue()*weight, so a 1-3 scale and a 1-5 scale carry
// equal influence (per-question normalization, not a fixed
// denominator).
func sectionScores(qn *assessment.Questionnaire, answers []assessment.Answer) []SectionScore {
	values := make(map[string]int, len(answers))
	for _, a := range answers {
		values[a.QuestionID] = a.Value
	}

	out := make([]SectionScore, 0, len(qn.Sections))
	for _, sec := range qn.Sections {
		var sum, maxSum float64
		for _, q := range sec.Questions {
			v, ok := values[q.ID]
			if !ok {
				continue
			}
			sum += float64(v) * q.Weight
			maxSum += float64(q.MaxValue()) * q.Weight
		}

		score := 0
		if maxSum > 0 { // a section with zero answers scores 0, never NaN
			score = clampScore(int(math.Round(100 * sum / maxSum)))
		}

		out = append(out, SectionScore{
			SectionID:  sec.ID,
			Score:      score,
			MaxScore:   100,
			Percentage: score,
		})
	}
	return out
}

// blend computes the weight-normalized blend of section scores, rounded
// and clamped. Sections absent from the score map contribute 0.
func blend(weights map[string]float64, scores map[string]int) int {
	var sum, totalW float64
	for id, w := range weights {
		if w <= 0 {
			continue
		}
		sum += w * float64(scores[id])
		totalW += w
	}
	if totalW == 0 {
		return 0
	}
	return clampScore(int(math.Round(sum / totalW)))
}

// overallScore applies the configured aggregate blend, falling back to
// the ScoreWeight-normalized mean of all section scores.
func overallScore(qn *assessment.Questionnaire, cfg Config, scores map[string]int) int {
	if len(cfg.Aggregate) > 0 {
		return blend(cfg.Aggregate, scores)
	}

	weights := make(map[string]float64, len(qn.Sections))
	uniform := true
	for _, sec := range qn.Sections {
		weights[sec.ID] = sec.ScoreWeight
		if sec.ScoreWeight > 0 {
			uniform = false
		}
	}
	if uniform {
		// No section declares a weight; use a plain mean.
		for id := range weights {
			weights[id] = 1
		}
	}
	return blend(weights, scores)
}

// pickTier returns the highest tier whose MinScore the overall score
// meets. With no tiers configured the zero Tier is returned, leaving
// the recommendation empty rather than inventing one.
func pickTier(tiers []Tier, overall int) Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinScore > sorted[j].MinScore
	})

	for _, t := range sorted {
		if overall >= t.MinScore {
			return t
		}
	}
	if len(sorted) > 0 {
		return sorted[len(sorted)-1]
	}
	return Tier{}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
