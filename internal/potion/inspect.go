package potion

// InspectionReport lists data-integrity problems across the potion catalog.
// Every list is sorted.
type InspectionReport struct {
	MissingBooks      []string `json:"missing_books"`
	InvalidOrigins    []string `json:"invalid_origins"`
	UnusedIngredients []string `json:"unused_ingredients"`
	InvalidRecipes    []string `json:"invalid_recipes"`
	DuplicateNames    []string `json:"duplicate_names"`
}

// Clean reports whether the report found nothing
func (r InspectionReport) Clean() bool {
	return len(r.MissingBooks) == 0 && len(r.InvalidOrigins) == 0 &&
		len(r.UnusedIngredients) == 0 && len(r.InvalidRecipes) == 0 && len(r.DuplicateNames) == 0
}

// Inspect cross-checks ingredients, recipes, books and origins
func (c *Catalog) Inspect() InspectionReport {
	bookRef := toSet(c.books)
	labels, paths := originLabels(c.origins)

	missingBooks := map[string]struct{}{}
	invalidOrigins := map[string]struct{}{}
	for _, ing := range c.ingredients {
		for _, b := range ing.Books {
			if _, ok := bookRef[b]; b != "" && !ok {
				missingBooks[b] = struct{}{}
			}
		}
		for _, o := range ing.Origins {
			if o == "" {
				continue
			}
			_, isLabel := labels[o]
			_, isPath := paths[o]
			if !isLabel && !isPath {
				invalidOrigins[o] = struct{}{}
			}
		}
	}

	used := map[string]struct{}{}
	invalidRecipes := map[string]struct{}{}
	for _, r := range c.recipes {
		for _, variant := range r.Variants {
			for _, n := range variant {
				used[n] = struct{}{}
			}
		}
		for _, variant := range r.Variants {
			if _, err := c.ValidateCombo(variant); err != nil {
				invalidRecipes[r.Name] = struct{}{}
				break
			}
		}
	}

	unused := map[string]struct{}{}
	ingNames := make([]string, 0, len(c.ingredients))
	for _, ing := range c.ingredients {
		ingNames = append(ingNames, ing.Name)
		if _, ok := used[ing.Name]; !ok {
			unused[ing.Name] = struct{}{}
		}
	}
	recNames := make([]string, 0, len(c.recipes))
	for _, r := range c.recipes {
		recNames = append(recNames, r.Name)
	}
	dups := toSet(FindDuplicates(ingNames))
	for _, n := range FindDuplicates(recNames) {
		dups[n] = struct{}{}
	}

	return InspectionReport{
		MissingBooks:      sortedKeys(missingBooks),
		InvalidOrigins:    sortedKeys(invalidOrigins),
		UnusedIngredients: sortedKeys(unused),
		InvalidRecipes:    sortedKeys(invalidRecipes),
		DuplicateNames:    sortedKeys(dups),
	}
}
