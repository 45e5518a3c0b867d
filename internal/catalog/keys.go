package catalog

// KeyOverrides maps a mechanically normalized filename stem to the logical
// key the presentation uses for its slide.
var KeyOverrides = map[string]string{
	"maono_intro":             "intro",
	"agricultural_challenges": "problem",
	"maono_solution":          "solution",
	"technology_stack":        "technology",
	"impact_stories":          "impact",
	"future_vision":           "future",
}
