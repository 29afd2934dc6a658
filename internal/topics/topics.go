// Package topics maps user-facing topic labels to provider query expressions.
package topics

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topic binds a display label to the boolean keyword expression sent to the
// providers.
type Topic struct {
	Label string `yaml:"label"`
	Query string `yaml:"query"`
}

// CustomSearchLabel is the pseudo-topic bound to free-text user input
// instead of a configured query expression.
const CustomSearchLabel = "Custom Search"

// Catalog is the ordered topic list loaded at startup. Static configuration
// data; never mutated after Load.
type Catalog struct {
	topics []Topic
}

// Defaults returns the built-in master topic list, used when no YAML file
// overrides it.
func Defaults() []Topic {
	return []Topic{
		{Label: "Product Management", Query: `("Product Launch" OR "New Feature" OR "UX Design" OR "App Update" OR "SaaS Metrics") AND NOT (Job OR Hiring)`},
		{Label: "Indian Biz Giants", Query: `("Tata Group" OR "Reliance Industries" OR "Adani" OR "Infosys" OR "HDFC Bank" OR "Sensex")`},
		{Label: "Tech Infrastructure", Query: `("Data Center" OR "Microchip" OR "Semiconductor" OR "Cloud Computing" OR "NVIDIA")`},
		{Label: "AI & GenAI", Query: `("Generative AI" OR "OpenAI" OR "LLM" OR "Machine Learning" OR "Gemini")`},
		{Label: "EdTech", Query: `("EdTech" OR "Online Learning" OR "Coursera" OR "Byju" OR "PhysicsWallah")`},
		{Label: "Crypto & Web3", Query: `("Bitcoin" OR "Ethereum" OR "Blockchain" OR "Web3")`},
		{Label: "Indian Startups", Query: `("Startup India" OR "Unicorn" OR "Venture Capital India" OR "Zepto" OR "Swiggy")`},
		{Label: "Global Business", Query: `("Wall Street" OR "Fed Rate" OR "Recession" OR "Global Economy" OR "Oil Prices")`},
		{Label: "National (India)", Query: `("India Politics" OR "Government of India" OR "Delhi" OR "Mumbai" OR "Bangalore News")`},
		{Label: "Sports", Query: `("Cricket" OR "Virat Kohli" OR "IPL" OR "BCCI" OR "Indian Football")`},
		{Label: "Entertainment", Query: `("Bollywood" OR "Cinema" OR "Movie Release" OR "Shah Rukh Khan" OR "Box Office")`},
		{Label: "International", Query: `("Geopolitics" OR "United Nations" OR "International Relations" OR "War" OR "Diplomacy")`},
		{Label: "Marketing & Advertising", Query: `("Digital Marketing" OR "Ad Campaign" OR "SEO" OR "Brand Strategy" OR "Content Marketing" OR "Sales")`},
		{Label: "Health & Wellness", Query: `("Healthcare" OR "Mental Health" OR "Wellness Trends" OR "Fitness" OR "Nutrition")`},
		{Label: "Environment & Sustainability", Query: `("Climate Change" OR "Sustainability" OR "Renewable Energy" OR "Conservation" OR "Green Tech")`},
	}
}

type topicsFile struct {
	Topics []Topic `yaml:"topics"`
}

// Load reads the catalog from a YAML file. A missing file is not an error;
// the built-in defaults apply. A present but unreadable or empty file is.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Catalog{topics: Defaults()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open topics config: %w", err)
	}
	defer f.Close()

	var cfg topicsFile
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse topics config: %w", err)
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("topics config %s has no topics", path)
	}
	for _, t := range cfg.Topics {
		if t.Label == "" || t.Query == "" {
			return nil, fmt.Errorf("topics config %s: every topic needs a label and a query", path)
		}
	}
	return &Catalog{topics: cfg.Topics}, nil
}

// All returns the configured topics in order.
func (c *Catalog) All() []Topic {
	return c.topics
}

// Labels returns the display labels in order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.topics))
	for i, t := range c.topics {
		labels[i] = t.Label
	}
	return labels
}

// Resolve turns a user-entered label into a Topic. Matching is
// case-insensitive. Free text that matches no label becomes the custom
// search pseudo-topic with the text itself as the query.
func (c *Catalog) Resolve(input string) (Topic, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Topic{}, fmt.Errorf("empty topic")
	}
	for _, t := range c.topics {
		if strings.EqualFold(t.Label, trimmed) {
			return t, nil
		}
	}
	return Topic{Label: CustomSearchLabel, Query: trimmed}, nil
}
