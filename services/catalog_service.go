package services

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// CatalogService answers the province → district → neighborhood and
// category → subcategory cascades.
type CatalogService struct {
	catalog models.Catalog
}

// NewCatalogService loads the catalog at path, or the embedded one when path
// is empty.
func NewCatalogService(path string) (*CatalogService, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*CatalogService, error) {
	var catalog models.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(catalog.Provinces) == 0 {
		return nil, fmt.Errorf("catalog has no provinces")
	}
	if len(catalog.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	return &CatalogService{catalog: catalog}, nil
}

func (s *CatalogService) Provinces() []models.Option {
	out := make([]models.Option, 0, len(s.catalog.Provinces))
	for _, p := range s.catalog.Provinces {
		out = append(out, p.Option)
	}
	return out
}

func (s *CatalogService) Districts(province string) ([]models.Option, error) {
	p, ok := s.province(province)
	if !ok {
		return nil, utils.NotFound("Province not found")
	}
	out := make([]models.Option, 0, len(p.Districts))
	for _, d := range p.Districts {
		out = append(out, d.Option)
	}
	return out, nil
}

func (s *CatalogService) Neighborhoods(province, district string) ([]models.Option, error) {
	p, ok := s.province(province)
	if !ok {
		return nil, utils.NotFound("Province not found")
	}
	d, ok := findDistrict(p, district)
	if !ok {
		return nil, utils.NotFound("District not found")
	}
	return append([]models.Option(nil), d.Neighborhoods...), nil
}

func (s *CatalogService) MainCategories() []models.Option {
	out := make([]models.Option, 0, len(s.catalog.Categories))
	for _, c := range s.catalog.Categories {
		out = append(out, c.Option)
	}
	return out
}

func (s *CatalogService) SubCategories(mainCategory string) ([]models.Option, error) {
	c, ok := s.category(mainCategory)
	if !ok {
		return nil, utils.NotFound("Category not found")
	}
	return append([]models.Option(nil), c.SubCategories...), nil
}

// Resolve validates a selection against the cascades and attaches labels.
func (s *CatalogService) Resolve(req models.SearchRequest) (*models.Selection, error) {
	if strings.TrimSpace(req.Province) == "" || strings.TrimSpace(req.District) == "" || strings.TrimSpace(req.MainCategory) == "" {
		return nil, utils.BadRequest("Please fill in all fields")
	}

	p, ok := s.province(req.Province)
	if !ok {
		return nil, utils.BadRequest("Unknown province: " + req.Province)
	}
	d, ok := findDistrict(p, req.District)
	if !ok {
		return nil, utils.BadRequest("District " + req.District + " is not in " + p.Label)
	}
	c, ok := s.category(req.MainCategory)
	if !ok {
		return nil, utils.BadRequest("Unknown category: " + req.MainCategory)
	}

	sel := &models.Selection{
		Province:     p.Option,
		District:     d.Option,
		MainCategory: c.Option,
	}

	seen := make(map[string]bool)
	for _, value := range req.Neighborhoods {
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		n, ok := findOption(d.Neighborhoods, value)
		if !ok {
			return nil, utils.BadRequest("Neighborhood " + value + " is not in " + d.Label)
		}
		sel.Neighborhoods = append(sel.Neighborhoods, n)
	}

	seen = make(map[string]bool)
	for _, value := range req.SubCategories {
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		sc, ok := findOption(c.SubCategories, value)
		if !ok {
			return nil, utils.BadRequest("Subcategory " + value + " is not in " + c.Label)
		}
		sel.SubCategories = append(sel.SubCategories, sc)
	}

	return sel, nil
}

// Queries expands a selection into the neighborhood × subcategory
// combinations, neighborhoods outermost.
func Queries(sel *models.Selection) []models.Query {
	neighborhoods := sel.Neighborhoods
	if len(neighborhoods) == 0 {
		neighborhoods = []models.Option{{}}
	}
	subCategories := sel.SubCategories
	if len(subCategories) == 0 {
		subCategories = []models.Option{{}}
	}

	queries := make([]models.Query, 0, len(neighborhoods)*len(subCategories))
	for _, n := range neighborhoods {
		for _, sc := range subCategories {
			queries = append(queries, models.Query{
				Province:     sel.Province,
				District:     sel.District,
				Neighborhood: n,
				MainCategory: sel.MainCategory,
				SubCategory:  sc,
			})
		}
	}
	return queries
}

func (s *CatalogService) province(value string) (models.Province, bool) {
	for _, p := range s.catalog.Provinces {
		if p.Value == value {
			return p, true
		}
	}
	return models.Province{}, false
}

func (s *CatalogService) category(value string) (models.MainCategory, bool) {
	for _, c := range s.catalog.Categories {
		if c.Value == value {
			return c, true
		}
	}
	return models.MainCategory{}, false
}

func findDistrict(p models.Province, value string) (models.District, bool) {
	for _, d := range p.Districts {
		if d.Value == value {
			return d, true
		}
	}
	return models.District{}, false
}

func findOption(options []models.Option, value string) (models.Option, bool) {
	for _, o := range options {
		if o.Value == value {
			return o, true
		}
	}
	return models.Option{}, false
}
