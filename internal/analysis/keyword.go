package analysis

import (
	"context"
	"strings"
)

// Categories assigned by the keyword classifier.
const (
	CategoryBusiness      = "business"
	CategoryPolitics      = "politics"
	CategoryTechnology    = "technology"
	CategorySports        = "sports"
	CategoryHealth        = "health"
	CategoryScience       = "science"
	CategoryEntertainment = "entertainment"
	CategoryWorld         = "world"
	CategoryGeneral       = "general"
)

// AllCategories returns the keyword categories in canonical order. Ties
// between categories are resolved by this order.
func AllCategories() []string {
	return []string{
		CategoryBusiness, CategoryPolitics, CategoryTechnology, CategorySports,
		CategoryHealth, CategoryScience, CategoryEntertainment, CategoryWorld,
	}
}

var categoryKeywords = map[string][]string{
	CategoryBusiness: {
		"market", "markets", "stock", "stocks", "shares", "economy", "economic", "inflation",
		"bank", "earnings", "revenue", "profit", "investor", "investors", "trade", "company",
		"ceo", "merger", "acquisition", "interest rates", "oil", "price", "prices",
	},
	CategoryPolitics: {
		"election", "president", "minister", "government", "parliament", "senate", "congress",
		"vote", "voters", "policy", "law", "campaign", "party", "democrat", "republican",
		"lawmakers", "prime minister", "white house",
	},
	CategoryTechnology: {
		"technology", "tech", "software", "ai", "artificial intelligence", "app", "apple",
		"google", "microsoft", "startup", "cyber", "chip", "chips", "smartphone", "internet",
		"data", "robot", "hack", "hackers",
	},
	CategorySports: {
		"match", "game", "league", "cup", "championship", "football", "soccer", "basketball",
		"tennis", "cricket", "olympic", "olympics", "coach", "player", "players", "tournament",
		"goal", "season", "nba", "nfl",
	},
	CategoryHealth: {
		"health", "hospital", "disease", "virus", "vaccine", "covid", "cancer", "doctor",
		"doctors", "patients", "medical", "drug", "outbreak", "mental health",
	},
	CategoryScience: {
		"science", "scientists", "research", "study", "space", "nasa", "climate", "planet",
		"species", "discovery", "physics", "biology", "researchers",
	},
	CategoryEntertainment: {
		"film", "movie", "music", "album", "actor", "actress", "celebrity", "show", "series",
		"festival", "concert", "star", "hollywood", "netflix", "award", "awards",
	},
	CategoryWorld: {
		"war", "military", "border", "refugees", "united nations", "embassy", "troops",
		"conflict", "ceasefire", "sanctions", "foreign", "international",
	},
}

// KeywordClassifier assigns the category whose keywords occur most often.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify labels every text, preserving input order.
func (c *KeywordClassifier) Classify(ctx context.Context, texts []string) ([]string, error) {
	labels := make([]string, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		labels[i] = classifyText(text)
	}
	return labels, nil
}

func classifyText(text string) string {
	tokens := tokenize(text)
	lower := " " + strings.Join(tokens, " ") + " "

	bestCat := CategoryGeneral
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if !strings.Contains(kw, " ") {
				for _, t := range tokens {
					if t == kw {
						score++
					}
				}
				continue
			}
			// Multi-word keyword: match on the token-joined text
			score += 2 * strings.Count(lower, " "+kw+" ")
		}
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}

	return bestCat
}
