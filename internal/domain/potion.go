package domain

// Ingredient categories as stored in the catalog
const (
	CategoryBinder   = "Liant"
	CategoryCatalyst = "Catalyseur"
	CategoryReactant = "Réactif"
)

// Selection slot types
const (
	SelectionBinder   = "binder"
	SelectionCatalyst = "catalyst"
	SelectionReactant = "reactant"
)

// Filter values
const (
	FilterCategoryAll  = "all"
	DefaultRecipeEmoji = "🧪"
)

// Ingredient is a potion catalog entry
type Ingredient struct {
	Name        string   `json:"name"`
	Category    string   `json:"cat"`
	Difficulty  int      `json:"difficulty"`
	ShortEffect string   `json:"shortEffect"`
	Effect      string   `json:"effect"`
	Origins     []string `json:"origins"`
	Books       []string `json:"books"`
}

// Recipe is a named potion with one or more exact ingredient sets
type Recipe struct {
	Name     string     `json:"name"`
	Emoji    string     `json:"emoji"`
	Desc     string     `json:"desc"`
	Bonus    int        `json:"bonus"`
	Books    []string   `json:"books"`
	Variants [][]string `json:"ingredients"`
}

// OriginNode is a node of the geographic origin tree
type OriginNode struct {
	Label    string       `json:"label"`
	Children []OriginNode `json:"children,omitempty"`
}

// PotionSelection holds at most one binder, one catalyst and a reactant set.
// Empty strings mean no pick.
type PotionSelection struct {
	Binder    string   `json:"binder"`
	Catalyst  string   `json:"catalyst"`
	Reactants []string `json:"reactants"`
}

// PotionFilters are the persisted browse filters
type PotionFilters struct {
	Cat     string   `json:"cat"`
	Origins []string `json:"origins"`
}

// PotionResult is the outcome of computing a selection
type PotionResult struct {
	TotalDifficulty int     `json:"total_difficulty"`
	Recipe          *Recipe `json:"recipe,omitempty"`
	Breakdown       string  `json:"breakdown"`
}

// NewPotionSelection returns an empty selection
func NewPotionSelection() PotionSelection {
	return PotionSelection{Reactants: []string{}}
}

// NewPotionFilters returns the default filters
func NewPotionFilters() PotionFilters {
	return PotionFilters{Cat: FilterCategoryAll, Origins: []string{}}
}
