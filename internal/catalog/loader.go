package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pulse-meals/internal/model"

	"github.com/rs/zerolog"
)

// document is the on-disk JSON shape of a catalogue file. Prices are
// written in whole major units; the currency defaults to the system
// currency when omitted.
type document struct {
	Currency string        `json:"currency,omitempty"`
	Menu     []menuItemDoc `json:"menu"`
	Plans    []planDoc     `json:"plans"`
	Addons   []addonDoc    `json:"addons"`
}

type menuItemDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
}

type planDoc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Calories    string         `json:"calories,omitempty"`
	Description string         `json:"description,omitempty"`
	BasePrice   int64          `json:"basePrice"`
	Popular     bool           `json:"popular,omitempty"`
	MealPlan    model.MealPlan `json:"mealPlan"`
}

type addonDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
}

// fileLoader implements Loader for reading catalogue JSON files from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue JSON file and returns a Catalog.
func (l *fileLoader) Load(ctx context.Context, path string) (Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	cat, err := decode(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("menu_items", len(cat.menu)).
		Int("plans", len(cat.plans)).
		Int("addons", len(cat.addons)).
		Msg("catalogue file loaded")

	return cat, nil
}

// decode parses a catalogue document into a Catalog, validating that the
// plan and add-on tables are complete.
func decode(r io.Reader) (*staticCatalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	currency := doc.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	if len(doc.Plans) == 0 {
		return nil, fmt.Errorf("catalogue document has no subscription plans")
	}

	menu := make([]MenuItem, 0, len(doc.Menu))
	for _, m := range doc.Menu {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("menu item missing id or name")
		}
		menu = append(menu, MenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Category:    m.Category,
			Price:       model.NewAmount(m.Price, currency),
		})
	}

	plans := make([]Plan, 0, len(doc.Plans))
	for _, p := range doc.Plans {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("plan missing id or name")
		}
		if p.BasePrice <= 0 {
			return nil, fmt.Errorf("plan %s has non-positive base price", p.ID)
		}
		plans = append(plans, Plan{
			ID:          model.PlanID(p.ID),
			Name:        p.Name,
			Calories:    p.Calories,
			Description: p.Description,
			BasePrice:   model.NewAmount(p.BasePrice, currency),
			Popular:     p.Popular,
			MealPlan:    p.MealPlan,
		})
	}

	addons := make([]AddonOption, 0, len(doc.Addons))
	for _, a := range doc.Addons {
		if a.ID == "" || a.Name == "" {
			return nil, fmt.Errorf("addon missing id or name")
		}
		addons = append(addons, AddonOption{
			ID:          model.Addon(a.ID),
			Name:        a.Name,
			Description: a.Description,
			Price:       model.NewAmount(a.Price, currency),
		})
	}

	return newStaticCatalog(menu, plans, addons), nil
}
