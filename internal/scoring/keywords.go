package scoring

// Keywords that indicate high-value opportunities.
var highValueKeywords = []string{
	"validation", "mvp", "product-market fit", "pmf", "traction",
	"revenue", "mrr", "arr", "customers", "users", "growth",
	"launch", "beta", "feedback", "pain point", "problem",
	"solution", "market opportunity", "niche", "underserved",
}

type businessModel struct {
	category string
	keywords []string
}

// Ordered so category resolution is deterministic: the first matching group
// wins.
var businessModels = []businessModel{
	{"saas", []string{"saas", "software as a service", "subscription", "recurring"}},
	{"marketplace", []string{"marketplace", "platform", "two-sided", "commission"}},
	{"ecommerce", []string{"ecommerce", "e-commerce", "online store", "dropshipping"}},
	{"service", []string{"consulting", "agency", "freelance", "service business"}},
	{"content", []string{"course", "ebook", "newsletter", "content creation"}},
	{"tool", []string{"tool", "app", "software", "automation", "productivity"}},
}

var negativeSignals = []string{
	"scam", "pyramid", "mlm", "get rich quick", "investment required",
	"pay to play", "crypto", "nft", "ponzi", "scheme",
}

// Subreddits whose audience gives posts extra authority.
var authoritativeSubreddits = map[string]bool{
	"entrepreneur": true,
	"startups":     true,
	"indiehackers": true,
	"saas":         true,
}
