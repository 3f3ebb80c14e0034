package showcase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-aria/aria/pkg/responsive"
)

// SectionConfig is one titled content block shared by the accordion and tab
// demos.
type SectionConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// AccordionConfig configures the accordion demo group.
type AccordionConfig struct {
	Sections      []SectionConfig `yaml:"sections"`
	AllowMultiple bool            `yaml:"allowMultiple"`
	ClosedDefault bool            `yaml:"closedDefault"`
	ForceExpand   bool            `yaml:"forceExpand"`
	// MediaQuery gates the group, e.g. "(min-width: 768px)". Empty means
	// always active.
	MediaQuery string `yaml:"mediaQuery"`
}

// ToggleConfig configures the disclosure demo.
type ToggleConfig struct {
	Label           string `yaml:"label"`
	Body            string `yaml:"body"`
	IsOpened        bool   `yaml:"isOpened"`
	CloseOnEscPress bool   `yaml:"closeOnEscPress"`
}

// TabsConfig configures the tab group demo.
type TabsConfig struct {
	Sections []SectionConfig `yaml:"sections"`
}

// Config is the showcase demo content, loaded from YAML.
type Config struct {
	Title string `yaml:"title"`

	// PxPerColumn scales terminal columns to viewport pixels so breakpoint
	// media queries react to terminal resizes. Zero means 10.
	PxPerColumn int `yaml:"pxPerColumn"`

	Accordion AccordionConfig `yaml:"accordion"`
	Toggle    ToggleConfig    `yaml:"toggle"`
	Tabs      TabsConfig      `yaml:"tabs"`
}

// DefaultConfig returns the built-in demo content used when no config file
// is given.
func DefaultConfig() Config {
	return Config{
		Title:       "aria widget showcase",
		PxPerColumn: 10,
		Accordion: AccordionConfig{
			Sections: []SectionConfig{
				{Title: "Shipping", Body: "Orders ship within two business days."},
				{Title: "Returns", Body: "Free returns within thirty days."},
				{Title: "Support", Body: "Reach us on weekdays, nine to five."},
			},
			MediaQuery: "(min-width: 600px)",
		},
		Toggle: ToggleConfig{
			Label:           "Details",
			Body:            "The disclosure target. Escape closes it.",
			CloseOnEscPress: true,
		},
		Tabs: TabsConfig{
			Sections: []SectionConfig{
				{Title: "Overview", Body: "A quick tour of the widgets."},
				{Title: "Keyboard", Body: "Arrows rove, Enter activates."},
			},
		},
	}
}

// LoadConfig reads and validates a YAML config file. Omitted sections fall
// back to the defaults, so a partial file is fine.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("showcase: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config bytes over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("showcase: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PxPerColumn <= 0 {
		c.PxPerColumn = 10
	}
	if len(c.Accordion.Sections) == 0 {
		return fmt.Errorf("showcase: config needs at least one accordion section")
	}
	if len(c.Tabs.Sections) == 0 {
		return fmt.Errorf("showcase: config needs at least one tab section")
	}
	if q := c.Accordion.MediaQuery; q != "" {
		if _, ok := responsive.ParseBreakpoint(q); !ok {
			return fmt.Errorf("showcase: unsupported accordion mediaQuery %q", q)
		}
	}
	return nil
}
