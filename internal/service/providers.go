package service

import (
	"context"
	"sort"
	"strings"

	"babytrack/internal/models"
	"babytrack/internal/repository"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ProviderService serves the read-only childcare provider directory.
type ProviderService struct {
	repo repository.ProviderRepo
}

func NewProviderService(repo repository.ProviderRepo) *ProviderService {
	return &ProviderService{repo: repo}
}

// ListProviders filters, sorts and pages the directory.
func (s *ProviderService) ListProviders(ctx context.Context, f ProviderFilter) (ProviderPage, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return ProviderPage{}, err
	}

	matched := make([]models.Provider, 0, len(all))
	for _, p := range all {
		if !matchesFilter(p, f) {
			continue
		}
		matched = append(matched, p)
	}

	sortProviders(matched, f.SortBy, f.Order)

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	start := (page - 1) * perPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}

	return ProviderPage{
		Providers: matched[start:end],
		Total:     len(matched),
		Page:      page,
		PerPage:   perPage,
	}, nil
}

func matchesFilter(p models.Provider, f ProviderFilter) bool {
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	if f.Service != "" && !hasService(p.Services, f.Service) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	return true
}

func hasService(services []string, want string) bool {
	for _, s := range services {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// sortProviders orders in place. Rating defaults to descending, price and
// name to ascending.
func sortProviders(ps []models.Provider, sortBy, order string) {
	var asc bool
	var less func(a, b models.Provider) bool
	switch sortBy {
	case "price":
		asc = order != "desc"
		less = func(a, b models.Provider) bool { return a.PricePerHour < b.PricePerHour }
	case "name":
		asc = order != "desc"
		less = func(a, b models.Provider) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	default: // rating
		asc = order == "asc"
		less = func(a, b models.Provider) bool { return a.Rating < b.Rating }
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if asc {
			return less(ps[i], ps[j])
		}
		return less(ps[j], ps[i])
	})
}
