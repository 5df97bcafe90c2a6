package service

import (
	"context"
	"errors"
	"testing"

	"babytrack/internal/models"
)

type fakeProviderRepo struct {
	providers []models.Provider
	err       error
}

func (f *fakeProviderRepo) ListAll(ctx context.Context) ([]models.Provider, error) {
	return f.providers, f.err
}

func directoryFixture() *ProviderService {
	return NewProviderService(&fakeProviderRepo{providers: []models.Provider{
		{ID: "a", Name: "Sunny Nursery", City: "Berlin", Services: []string{"daycare", "night care"}, Rating: 4.8, PricePerHour: 18},
		{ID: "b", Name: "Little Steps", City: "Berlin", Services: []string{"daycare"}, Rating: 4.2, PricePerHour: 12},
		{ID: "c", Name: "Night Owls", City: "Hamburg", Services: []string{"night care"}, Rating: 4.5, PricePerHour: 20},
		{ID: "d", Name: "Tiny Town", City: "berlin", Services: []string{"babysitting"}, Rating: 3.9, PricePerHour: 10},
	}})
}

func TestProviderService_ListProviders_DefaultSort(t *testing.T) {
	t.Parallel()

	svc := directoryFixture()
	page, err := svc.ListProviders(context.Background(), ProviderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 4 || len(page.Providers) != 4 {
		t.Fatalf("expected all 4 providers, got total=%d len=%d", page.Total, len(page.Providers))
	}
	if page.Providers[0].ID != "a" || page.Providers[3].ID != "d" {
		t.Fatalf("default sort should be rating descending, got %q..%q", page.Providers[0].ID, page.Providers[3].ID)
	}
	if page.Page != 1 || page.PerPage != defaultPerPage {
		t.Fatalf("paging defaults: got page=%d per_page=%d", page.Page, page.PerPage)
	}
}

func TestProviderService_ListProviders_Filters(t *testing.T) {
	t.Parallel()

	svc := directoryFixture()

	tests := []struct {
		name string
		in   ProviderFilter
		want []string
	}{
		{
			name: "city is case-insensitive",
			in:   ProviderFilter{City: "BERLIN"},
			want: []string{"a", "b", "d"},
		},
		{
			name: "service membership",
			in:   ProviderFilter{Service: "night care"},
			want: []string{"a", "c"},
		},
		{
			name: "min rating",
			in:   ProviderFilter{MinRating: 4.5},
			want: []string{"a", "c"},
		},
		{
			name: "name substring",
			in:   ProviderFilter{Query: "night"},
			want: []string{"c"},
		},
		{
			name: "combined",
			in:   ProviderFilter{City: "Berlin", Service: "daycare", MinRating: 4.5},
			want: []string{"a"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			page, err := svc.ListProviders(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, 0, len(page.Providers))
			for _, p := range page.Providers {
				got = append(got, p.ID)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v; want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v; want %v", got, tc.want)
				}
			}
		})
	}
}

func TestProviderService_ListProviders_SortAndPage(t *testing.T) {
	t.Parallel()

	svc := directoryFixture()

	page, err := svc.ListProviders(context.Background(), ProviderFilter{SortBy: "price", Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 4 || len(page.Providers) != 2 {
		t.Fatalf("expected first page of 2 out of 4, got total=%d len=%d", page.Total, len(page.Providers))
	}
	if page.Providers[0].ID != "d" || page.Providers[1].ID != "b" {
		t.Fatalf("price ascending page 1: got %q,%q", page.Providers[0].ID, page.Providers[1].ID)
	}

	page, err = svc.ListProviders(context.Background(), ProviderFilter{SortBy: "price", Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Providers[0].ID != "a" || page.Providers[1].ID != "c" {
		t.Fatalf("price ascending page 2: got %q,%q", page.Providers[0].ID, page.Providers[1].ID)
	}

	page, err = svc.ListProviders(context.Background(), ProviderFilter{SortBy: "name", Order: "desc", Page: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Providers) != 0 || page.Total != 4 {
		t.Fatalf("past-the-end page should be empty, got %+v", page)
	}
}

func TestProviderService_ListProviders_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc := NewProviderService(&fakeProviderRepo{err: boom})
	if _, err := svc.ListProviders(context.Background(), ProviderFilter{}); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
