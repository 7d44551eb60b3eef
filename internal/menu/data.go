package menu

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenuYAML []byte

type menuFile struct {
	Items    []itemSpec        `yaml:"items"`
	Synonyms map[string]string `yaml:"synonyms"`
	Combos   []comboSpec       `yaml:"combos"`
}

type itemSpec struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Price    int      `yaml:"price"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

type comboSpec struct {
	Item1    string  `yaml:"item1"`
	Item2    string  `yaml:"item2"`
	Discount float64 `yaml:"discount"`
}

// Data bundles the three read-only stores built from one menu file.
type Data struct {
	Catalog  *Catalog
	Synonyms SynonymTable
	Combos   *ComboCatalog
}

// Load reads a menu file from disk.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read menu file: %w", err)
	}
	return parse(raw)
}

// LoadDefault builds the built-in menu shipped with the binary.
func LoadDefault() (Data, error) {
	return parse(defaultMenuYAML)
}

func parse(raw []byte) (Data, error) {
	var mf menuFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return Data{}, fmt.Errorf("parse menu file: %w", err)
	}
	if len(mf.Items) == 0 {
		return Data{}, fmt.Errorf("menu file has no items")
	}

	items := make([]Item, 0, len(mf.Items))
	for _, spec := range mf.Items {
		category, err := ParseCategory(spec.Category)
		if err != nil {
			return Data{}, fmt.Errorf("item %s: %w", spec.ID, err)
		}
		it, err := NewItem(spec.ID, spec.Name, spec.Price, category, spec.Tags...)
		if err != nil {
			return Data{}, err
		}
		items = append(items, it)
	}

	catalog, err := NewCatalog(items)
	if err != nil {
		return Data{}, err
	}

	offers := make([]ComboOffer, 0, len(mf.Combos))
	for _, spec := range mf.Combos {
		item1, err := catalog.ByID(spec.Item1)
		if err != nil {
			return Data{}, fmt.Errorf("combo %s-%s: %w", spec.Item1, spec.Item2, err)
		}
		item2, err := catalog.ByID(spec.Item2)
		if err != nil {
			return Data{}, fmt.Errorf("combo %s-%s: %w", spec.Item1, spec.Item2, err)
		}
		offer, err := NewComboOffer(item1, item2, spec.Discount)
		if err != nil {
			return Data{}, err
		}
		offers = append(offers, offer)
	}

	combos, err := NewComboCatalog(offers)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Catalog:  catalog,
		Synonyms: NewSynonymTable(mf.Synonyms),
		Combos:   combos,
	}, nil
}
