package domain

import "strings"

type Category string

const (
	CategoryXP                  Category = "xp"
	CategoryKills               Category = "kills"
	CategorySurvivalDino        Category = "survival_dino"
	CategorySurvivalMilitia     Category = "survival_militia"
	CategorySurvivalChaos       Category = "survival_chaos"
	CategorySurvivalChicken     Category = "survival_chicken"
	CategorySurvivalZombie      Category = "survival_zombie"
	CategorySurvivalPandemonium Category = "survival_pandemonium"
)

func Categories() []Category {
	return []Category{
		CategoryXP,
		CategoryKills,
		CategorySurvivalDino,
		CategorySurvivalMilitia,
		CategorySurvivalChaos,
		CategorySurvivalChicken,
		CategorySurvivalZombie,
		CategorySurvivalPandemonium,
	}
}

// Valid reports whether c is one of the documented categories. Fetching does
// not require it; the remote service decides what an unknown id returns.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}
