package vehicles

import (
	"sort"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// applyFilters keeps vehicles matching every supplied predicate.
// Multi-value fields are OR within the field.
func applyFilters(list []models.Vehicle, f models.VehicleFilters) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(list))
	for _, v := range list {
		if len(f.Marcas) > 0 && !contains(f.Marcas, v.Marca) {
			continue
		}
		if len(f.Modelos) > 0 && !contains(f.Modelos, v.Modelo) {
			continue
		}
		if f.AnoMin != nil && v.Ano < *f.AnoMin {
			continue
		}
		if f.AnoMax != nil && v.Ano > *f.AnoMax {
			continue
		}
		if f.PrecoMin != nil && v.Preco < *f.PrecoMin {
			continue
		}
		if f.PrecoMax != nil && v.Preco > *f.PrecoMax {
			continue
		}
		if len(f.Cambios) > 0 && (v.Cambio == nil || !contains(f.Cambios, *v.Cambio)) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// applySorting orders the filtered set in place. Relevancia keeps the
// filtered order as is. Model names compare with pt-BR collation.
func applySorting(list []models.Vehicle, sortBy string) {
	switch sortBy {
	case models.SortPrecoAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Preco < list[j].Preco })
	case models.SortPrecoDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Preco > list[j].Preco })
	case models.SortAnoDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Ano > list[j].Ano })
	case models.SortAnoAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Ano < list[j].Ano })
	case models.SortModeloAsc:
		// Collator keeps internal buffers, so build one per sort.
		c := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(list, func(i, j int) bool { return c.CompareString(list[i].Modelo, list[j].Modelo) < 0 })
	case models.SortModeloDesc:
		c := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(list, func(i, j int) bool { return c.CompareString(list[i].Modelo, list[j].Modelo) > 0 })
	}
}

// paginate slices [(page-1)*size, page*size). Out-of-range pages yield
// an empty slice; clamping is the caller's job.
func paginate(list []models.Vehicle, page, pageSize int) []models.Vehicle {
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []models.Vehicle{}
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
