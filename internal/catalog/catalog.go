package catalog

import (
	"fmt"
	"strings"
)

// Visibility is the privacy level requested for an uploaded video.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// ParseVisibility accepts any casing of the three known values.
func ParseVisibility(value string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(value))); v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return v, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", value)
	}
}

func (v Visibility) String() string { return string(v) }

// Category is a host classification. Code is the numeric category id the
// upload CLI expects; Name is what the host's web form shows.
type Category struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

var (
	CategoryPeopleBlogs = Category{Name: "People & Blogs", Code: "22"}
	CategoryEducation   = Category{Name: "Education", Code: "27"}
	CategoryScienceTech = Category{Name: "Science & Technology", Code: "28"}
)

// AssetEntry describes one promotional video. Filename is its identity.
type AssetEntry struct {
	Filename    string     `json:"filename" yaml:"filename"`
	Label       string     `json:"label" yaml:"label"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Category    Category   `json:"category" yaml:"category"`
	Visibility  Visibility `json:"privacy" yaml:"privacy"`
}

var entries = []AssetEntry{
	{
		Filename:    "maono-intro.mp4",
		Label:       "MAONO Introduction",
		Title:       "MAONO: Revolutionary Agricultural Intelligence Platform",
		Description: "Discover how MAONO is transforming agriculture across Africa with AI-powered insights, satellite monitoring, and blockchain technology. Join the agricultural revolution!",
		Tags:        []string{"agriculture", "AI", "farming", "technology", "Africa", "MAONO", "agricultural intelligence", "smart farming"},
		Category:    CategoryPeopleBlogs,
		Visibility:  VisibilityUnlisted,
	},
	{
		Filename:    "agricultural-challenges.mp4",
		Label:       "Agricultural Challenges",
		Title:       "The Challenges Facing African Agriculture",
		Description: "Explore the critical issues smallholder farmers face across Africa: unpredictable weather, limited market access, and lack of modern farming techniques. See how MAONO provides solutions.",
		Tags:        []string{"agriculture", "Africa", "farming challenges", "smallholder farmers", "weather", "market access", "MAONO"},
		Category:    CategoryEducation,
		Visibility:  VisibilityUnlisted,
	},
	{
		Filename:    "maono-solution.mp4",
		Label:       "The MAONO Solution",
		Title:       "The MAONO Solution: Empowering Farmers with Smart Technology",
		Description: "Learn how MAONO provides AI-driven weather forecasts, satellite-based pest detection, personalized farming advice, and blockchain-powered marketplace for fair trade.",
		Tags:        []string{"MAONO", "agricultural solution", "AI farming", "satellite monitoring", "blockchain", "smart agriculture", "technology"},
		Category:    CategoryScienceTech,
		Visibility:  VisibilityUnlisted,
	},
	{
		Filename:    "technology-stack.mp4",
		Label:       "Technology Stack",
		Title:       "MAONO Technology Stack: Cutting-Edge Innovation",
		Description: "Discover the powerful technology behind MAONO: React frontend, Python AI/ML backend, blockchain security, and cloud scalability for global agricultural transformation.",
		Tags:        []string{"technology", "React", "Python", "AI", "blockchain", "cloud computing", "agricultural tech", "MAONO"},
		Category:    CategoryScienceTech,
		Visibility:  VisibilityUnlisted,
	},
	{
		Filename:    "impact-stories.mp4",
		Label:       "Impact Stories",
		Title:       "MAONO Impact: Building on Success, Taking It Further",
		Description: "See how MAONO builds on platforms like DigiFarm, providing even more precise AI and satellite monitoring, personal farm experts, and blockchain fair pricing for farmers.",
		Tags:        []string{"impact", "success stories", "DigiFarm", "AI precision", "satellite monitoring", "blockchain", "MAONO", "agricultural impact"},
		Category:    CategoryPeopleBlogs,
		Visibility:  VisibilityUnlisted,
	},
	{
		Filename:    "future-vision.mp4",
		Label:       "Future Vision",
		Title:       "MAONO Future Vision: Scaling for Sustainable Tomorrow",
		Description: "Explore MAONO's vision for the future: drone integration, global expansion, climate resilience, and partnerships to empower millions of farmers worldwide.",
		Tags:        []string{"future", "vision", "drone technology", "global expansion", "climate resilience", "sustainability", "MAONO", "agricultural future"},
		Category:    CategoryScienceTech,
		Visibility:  VisibilityUnlisted,
	},
}

// Build returns the catalog in its fixed order. Every call returns a fresh
// copy, so callers may modify the result freely.
func Build() []AssetEntry {
	out := make([]AssetEntry, len(entries))
	for i, entry := range entries {
		out[i] = entry.clone()
	}
	return out
}

// Lookup finds a catalog entry by filename.
func Lookup(filename string) (AssetEntry, bool) {
	for _, entry := range entries {
		if entry.Filename == filename {
			return entry.clone(), true
		}
	}
	return AssetEntry{}, false
}

// Filenames lists catalog filenames in catalog order.
func Filenames() []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Filename
	}
	return out
}

func (e AssetEntry) clone() AssetEntry {
	e.Tags = append([]string(nil), e.Tags...)
	return e
}
