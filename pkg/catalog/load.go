package catalog

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

// Sentinel errors for catalog loading
var (
	ErrCatalogNotFound = goerr.New("catalog file not found")
	ErrInvalidCatalog  = goerr.New("invalid catalog")
)

type catalogFile struct {
	Categories []categoryEntry `toml:"category"`
}

type categoryEntry struct {
	ID            string             `toml:"id"`
	Name          string             `toml:"name"`
	Description   string             `toml:"description"`
	Subcategories []subcategoryEntry `toml:"subcategory"`
}

type subcategoryEntry struct {
	ID          string          `toml:"id"`
	Name        string          `toml:"name"`
	Description string          `toml:"description"`
	Questions   []questionEntry `toml:"question"`
}

type questionEntry struct {
	ID       string   `toml:"id"`
	Text     string   `toml:"text"`
	Type     string   `toml:"type"`
	Options  []string `toml:"options"`
	Weight   float64  `toml:"weight"`
	Required bool     `toml:"required"`

	// Optional authored scoring semantics. When omitted they are inferred
	// from the question and option prose, so catalogs written before these
	// fields existed keep scoring the same way.
	Favorable *bool  `toml:"favorable"`
	Order     string `toml:"order"`
}

// LoadFile reads and validates a TOML catalog from the given path
func LoadFile(path string) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrCatalogNotFound, "cannot open catalog file", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to open catalog file", goerr.V("path", path))
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog", goerr.V("path", path))
	}
	return c, nil
}

// Load reads and validates a TOML catalog from the given reader
func Load(r io.Reader) (*model.Catalog, error) {
	var file catalogFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, goerr.Wrap(ErrInvalidCatalog, "failed to parse catalog TOML", goerr.V("cause", err.Error()))
	}

	c := &model.Catalog{Categories: make([]model.Category, 0, len(file.Categories))}
	for _, cat := range file.Categories {
		category := model.Category{
			ID:            types.CategoryID(cat.ID),
			Name:          cat.Name,
			Description:   cat.Description,
			Subcategories: make([]model.Subcategory, 0, len(cat.Subcategories)),
		}

		for _, sub := range cat.Subcategories {
			subcategory := model.Subcategory{
				ID:          types.SubcategoryID(sub.ID),
				Name:        sub.Name,
				Description: sub.Description,
				Questions:   make([]model.Question, 0, len(sub.Questions)),
			}

			for _, q := range sub.Questions {
				question, err := buildQuestion(q)
				if err != nil {
					return nil, goerr.Wrap(err, "invalid question entry",
						goerr.V("category", cat.ID), goerr.V("subcategory", sub.ID))
				}
				subcategory.Questions = append(subcategory.Questions, question)
			}

			category.Subcategories = append(category.Subcategories, subcategory)
		}

		c.Categories = append(c.Categories, category)
	}

	if err := c.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed")
	}

	return c, nil
}

func buildQuestion(entry questionEntry) (model.Question, error) {
	qt := types.QuestionType(entry.Type)
	if err := qt.Validate(); err != nil {
		return model.Question{}, goerr.Wrap(err, "invalid question type", goerr.V("id", entry.ID))
	}

	q := model.Question{
		ID:       types.QuestionID(entry.ID),
		Text:     entry.Text,
		Type:     qt,
		Options:  entry.Options,
		Weight:   entry.Weight,
		Required: entry.Required,
	}

	switch qt {
	case types.QuestionTypeBoolean:
		if entry.Favorable != nil {
			q.Favorable = *entry.Favorable
		} else {
			q.Favorable = InferFavorable(entry.Text)
		}
	case types.QuestionTypeSelect:
		if entry.Order != "" {
			order := types.OptionOrder(entry.Order)
			if err := order.Validate(); err != nil {
				return model.Question{}, goerr.Wrap(err, "invalid option order", goerr.V("id", entry.ID))
			}
			q.Order = order
		} else {
			q.Order = InferOrder(entry.Options)
		}
	}

	return q, nil
}
