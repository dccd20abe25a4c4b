package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lookia/lookia/internal/domain/look"
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is the table-driven source of images, tips and accessories shared by
// the recommendation, alternatives and chat flows. It is read-only after Load.
type Catalog struct {
	ProxyPrefix     string          `yaml:"proxyPrefix"`
	ImageQuery      string          `yaml:"imageQuery"`
	Styles          AliasTable      `yaml:"styles"`
	Occasions       AliasTable      `yaml:"occasions"`
	Looks           []StyleLooks    `yaml:"looks"`
	DefaultPhotos   []string        `yaml:"defaultPhotos"`
	TipRules        TipRules        `yaml:"tips"`
	AccessoryRules  AccessoryRules  `yaml:"accessories"`
	VariationList   []Variation     `yaml:"variations"`
	VariationPhotos VariationPhotos `yaml:"variationPhotos"`
}

// AliasTable maps user vocabulary onto table keys.
type AliasTable struct {
	Fallback string            `yaml:"fallback"`
	Aliases  map[string]string `yaml:"aliases"`
}

// Resolve maps a raw value; empty or unknown values resolve to the fallback.
func (a AliasTable) Resolve(raw string) string {
	if raw == "" {
		return a.Fallback
	}
	if v, ok := a.Aliases[raw]; ok {
		return v
	}
	return a.Fallback
}

// StyleLooks lists photo sets per occasion, in document order.
type StyleLooks struct {
	Style     string          `yaml:"style"`
	Occasions []OccasionLooks `yaml:"occasions"`
}

// OccasionLooks is one photo set.
type OccasionLooks struct {
	Name   string   `yaml:"name"`
	Photos []string `yaml:"photos"`
}

// TipRules holds the weather and style tip thresholds.
type TipRules struct {
	ColdMax     int               `yaml:"coldMax"`
	Cold        string            `yaml:"cold"`
	HotMin      int               `yaml:"hotMin"`
	Hot         string            `yaml:"hot"`
	RainKeyword string            `yaml:"rainKeyword"`
	Rain        string            `yaml:"rain"`
	ByStyle     map[string]string `yaml:"byStyle"`
}

// AccessoryRules is the binary formal/informal accessory branch.
type AccessoryRules struct {
	FormalLevel string   `yaml:"formalLevel"`
	Formal      []string `yaml:"formal"`
	Informal    []string `yaml:"informal"`
}

// Variation describes one of the fixed alternative looks.
type Variation struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Style       string   `yaml:"style"`
	Label       string   `yaml:"label"`
	Tips        []string `yaml:"tips"`
	Accessories []string `yaml:"accessories"`
}

// VariationPhotos keys photo sets by variation style.
type VariationPhotos struct {
	Fallback string              `yaml:"fallback"`
	Styles   map[string][]string `yaml:"styles"`
}

// Load parses the catalog at path, or the embedded document when path is empty.
func Load(path string) (*Catalog, error) {
	raw := embedded
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse decodes and validates a catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the embedded catalog and panics if it is malformed.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	if len(c.DefaultPhotos) == 0 {
		return fmt.Errorf("catalog: defaultPhotos cannot be empty")
	}
	if len(c.VariationList) == 0 {
		return fmt.Errorf("catalog: at least one variation is required")
	}
	if _, ok := c.VariationPhotos.Styles[c.VariationPhotos.Fallback]; !ok {
		return fmt.Errorf("catalog: variationPhotos fallback %q has no photos", c.VariationPhotos.Fallback)
	}
	return nil
}

// ImageURL turns a photo id into a proxied, sized image URL.
func (c *Catalog) ImageURL(photoID string) string {
	url := c.ProxyPrefix + photoID
	if c.ImageQuery != "" {
		url += "?" + c.ImageQuery
	}
	return url
}

// Images looks up the photo set for a style and occasion. Unknown occasions
// fall back to the first populated occasion of the same style, then to the
// default photos. The result is never empty.
func (c *Catalog) Images(style, occasion string) []string {
	styleKey := c.Styles.Resolve(style)
	occasionKey := c.Occasions.Resolve(occasion)

	for _, sl := range c.Looks {
		if sl.Style != styleKey {
			continue
		}
		for _, oc := range sl.Occasions {
			if oc.Name == occasionKey && len(oc.Photos) > 0 {
				return c.urls(oc.Photos)
			}
		}
		for _, oc := range sl.Occasions {
			if len(oc.Photos) > 0 {
				return c.urls(oc.Photos)
			}
		}
		break
	}
	return c.urls(c.DefaultPhotos)
}

// Tips derives weather and style tips for a profile.
func (c *Catalog) Tips(p look.Profile) []string {
	tips := []string{}
	r := c.TipRules
	if w := p.WeatherData; w != nil {
		if w.Temperature <= r.ColdMax {
			tips = append(tips, r.Cold)
		} else if w.Temperature >= r.HotMin {
			tips = append(tips, r.Hot)
		}
		if r.RainKeyword != "" && strings.Contains(w.Condition, r.RainKeyword) {
			tips = append(tips, r.Rain)
		}
	}
	if tip, ok := r.ByStyle[p.EstiloDesejado]; ok {
		tips = append(tips, tip)
	}
	return tips
}

// Accessories picks the formal or informal set from the profile formality.
func (c *Catalog) Accessories(p look.Profile) []string {
	if p.Formalidade == c.AccessoryRules.FormalLevel {
		return clone(c.AccessoryRules.Formal)
	}
	return clone(c.AccessoryRules.Informal)
}

// Variations returns the alternative variations in display order.
func (c *Catalog) Variations() []Variation {
	out := make([]Variation, len(c.VariationList))
	for i, v := range c.VariationList {
		v.Tips = clone(v.Tips)
		v.Accessories = clone(v.Accessories)
		out[i] = v
	}
	return out
}

// VariationImages returns the photo set for a variation style, case-insensitively.
func (c *Catalog) VariationImages(style string) []string {
	photos, ok := c.VariationPhotos.Styles[strings.ToLower(style)]
	if !ok {
		photos = c.VariationPhotos.Styles[c.VariationPhotos.Fallback]
	}
	return c.urls(photos)
}

// VariationTips returns tips for a variation label, defaulting to the first variation.
func (c *Catalog) VariationTips(label string) []string {
	return clone(c.variation(label).Tips)
}

// VariationAccessories returns accessories for a variation label, defaulting to the first variation.
func (c *Catalog) VariationAccessories(label string) []string {
	return clone(c.variation(label).Accessories)
}

func (c *Catalog) variation(label string) Variation {
	for _, v := range c.VariationList {
		if v.Label == label {
			return v
		}
	}
	return c.VariationList[0]
}

func (c *Catalog) urls(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, id := range photos {
		out = append(out, c.ImageURL(id))
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
