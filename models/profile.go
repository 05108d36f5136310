package models

// Fixed meal categories, in display order.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

// MealNames is the render order; it never changes at runtime.
var MealNames = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

func IsMealName(name string) bool {
	for _, m := range MealNames {
		if m == name {
			return true
		}
	}
	return false
}

// FoodEntry is one logged food item. Entries are immutable once logged;
// changing one means deleting it and adding a replacement.
type FoodEntry struct {
	Name     string  `json:"name"`
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Goals holds the daily intake targets for the four tracked macros.
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultGoals are applied to every freshly created profile.
func DefaultGoals() Goals {
	return Goals{Calories: 1850, Protein: 150, Carbs: 120, Fat: 50}
}

// DayLog maps a meal name to that meal's entries, in append order.
// The entry index within a meal is the deletion key.
type DayLog map[string][]FoodEntry

// Logs maps a date key (YYYY-MM-DD) to that day's log. A missing date or
// meal is equivalent to an empty list.
type Logs map[string]DayLog

// Profile is the full per-user record. The JSON field names match the
// stored blob format, so persisted profiles are readable as-is.
type Profile struct {
	Logs   Logs   `json:"logs"`
	Goals  Goals  `json:"goals"`
	APIKey string `json:"apiKey"`
}

func NewProfile() *Profile {
	return &Profile{
		Logs:  Logs{},
		Goals: DefaultGoals(),
	}
}

// Entries returns the sequence for one (date, meal) pair, nil when absent.
func (p *Profile) Entries(date, meal string) []FoodEntry {
	day, ok := p.Logs[date]
	if !ok {
		return nil
	}
	return day[meal]
}

// MacroTotals accumulates the four macro sums for one day.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (t *MacroTotals) Add(e FoodEntry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Carbs += e.Carbs
	t.Fat += e.Fat
}
