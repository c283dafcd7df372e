package vehicles

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/AutoVitrine/AutoVitrine/internal/cache"
	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotFound marks a lookup against an id the detail store does not have.
var ErrNotFound = errors.New("vehicle not found")

type Repository interface {
	ListAll(ctx context.Context) ([]models.Vehicle, error)
	GetDetailByID(ctx context.Context, id string) (*models.VehicleDetail, bool, error)
}

type Service struct {
	repo      Repository
	cache     cache.BytesCache
	detailTTL time.Duration
}

func New(repo Repository, c cache.BytesCache, detailTTL time.Duration) *Service {
	return &Service{repo: repo, cache: c, detailTTL: detailTTL}
}

// List filters, sorts and paginates the catalog. Pure over the catalog
// snapshot; it never clamps out-of-range pages.
func (s *Service) List(ctx context.Context, params models.ListParams) (*models.ListResult, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := applyFilters(all, params.Filters)
	applySorting(filtered, params.SortBy)

	total := len(filtered)
	totalPages := (total + params.PageSize - 1) / params.PageSize

	return &models.ListResult{
		Vehicles:   paginate(filtered, params.Page, params.PageSize),
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FilterOptions derives facets from the whole catalog, never scoped to
// applied filters. Brands/models/transmissions ascending, years descending.
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	marcaSet := make(map[string]struct{})
	modeloSet := make(map[string]struct{})
	anoSet := make(map[int]struct{})
	cambioSet := make(map[string]struct{})
	for _, v := range all {
		marcaSet[v.Marca] = struct{}{}
		modeloSet[v.Modelo] = struct{}{}
		anoSet[v.Ano] = struct{}{}
		if v.Cambio != nil {
			cambioSet[*v.Cambio] = struct{}{}
		}
	}

	anos := make([]int, 0, len(anoSet))
	for a := range anoSet {
		anos = append(anos, a)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(anos)))

	return &models.FilterOptions{
		Marcas:  sortedStrings(marcaSet),
		Modelos: sortedStrings(modeloSet),
		Anos:    anos,
		Cambios: sortedStrings(cambioSet),
	}, nil
}

// ModelosByMarcas returns the distinct sorted models of the given
// brands; no brands means all models.
func (s *Service) ModelosByMarcas(ctx context.Context, marcas []string) ([]string, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, v := range all {
		if len(marcas) > 0 && !contains(marcas, v.Marca) {
			continue
		}
		set[v.Modelo] = struct{}{}
	}
	return sortedStrings(set), nil
}

// GetByID resolves a vehicle detail, via the byte cache when wired.
func (s *Service) GetByID(ctx context.Context, id string) (*models.VehicleDetail, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	if s.cache != nil && s.detailTTL > 0 {
		if b, ok, err := s.cache.Get(ctx, detailKey(id)); err == nil && ok {
			var d models.VehicleDetail
			if json.Unmarshal(b, &d) == nil {
				return &d, nil
			}
		}
	}

	d, ok, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	if s.cache != nil && s.detailTTL > 0 {
		// Best effort: the store is authoritative.
		if b, err := json.Marshal(d); err == nil {
			_ = s.cache.Set(ctx, detailKey(id), b, s.detailTTL)
		}
	}
	return d, nil
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i], out[j]) < 0 })
	return out
}

func detailKey(id string) string {
	return fmt.Sprintf("vehicle:%s:detail", id)
}
