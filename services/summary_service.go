package services

import (
	"github.com/CJR1981/Macro-Tracker/models"
)

// MealSummary is one meal section of the day view.
type MealSummary struct {
	Meal  string             `json:"meal"`
	Items []models.FoodEntry `json:"items"`
}

// MacroProgress is one progress bar: consumed vs. target.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DaySummary is the full render model for one (user, date) pair.
type DaySummary struct {
	Date     string                   `json:"date"`
	Goals    models.Goals             `json:"goals"`
	Meals    []MealSummary            `json:"meals"`
	Totals   models.MacroTotals       `json:"totals"`
	Progress map[string]MacroProgress `json:"progress"`
}

// SummaryService recomputes the day view from the stored profile. It holds
// no state of its own; every call re-reads the profile.
type SummaryService struct {
	profiles *ProfileService
}

func NewSummaryService(profiles *ProfileService) *SummaryService {
	return &SummaryService{profiles: profiles}
}

// DaySummary lists the four meals in fixed order with their entries for
// date, sums totals across all meals, and computes clamped progress per
// goal macro.
func (s *SummaryService) DaySummary(user, date string) (*DaySummary, error) {
	p, err := s.profiles.Get(user)
	if err != nil {
		return nil, err
	}

	out := &DaySummary{
		Date:  date,
		Goals: p.Goals,
		Meals: make([]MealSummary, 0, len(models.MealNames)),
	}
	for _, meal := range models.MealNames {
		items := p.Entries(date, meal)
		if items == nil {
			items = []models.FoodEntry{}
		}
		for _, it := range items {
			out.Totals.Add(it)
		}
		out.Meals = append(out.Meals, MealSummary{Meal: meal, Items: items})
	}

	out.Progress = map[string]MacroProgress{
		"calories": progressFor(out.Totals.Calories, p.Goals.Calories),
		"protein":  progressFor(out.Totals.Protein, p.Goals.Protein),
		"carbs":    progressFor(out.Totals.Carbs, p.Goals.Carbs),
		"fat":      progressFor(out.Totals.Fat, p.Goals.Fat),
	}
	return out, nil
}

// progressFor clamps to [0, 100]. A zero or negative target reads as 0%
// rather than a non-finite value.
func progressFor(consumed, target float64) MacroProgress {
	pr := MacroProgress{Consumed: consumed, Goal: target}
	if target <= 0 {
		return pr
	}
	pct := consumed / target * 100
	if pct > 100 {
		pct = 100
	}
	pr.Percent = pct
	return pr
}
