package catalog

import (
	"reflect"
	"testing"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
)

func TestSearch(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Брус 100х100", Description: "Хвойный брус", Category: "Брус", WoodType: "Сосна", Purpose: "Строительство"},
		{ID: "2", Name: "Цемент", Description: "Портландцемент", Category: "Стройматериалы"},
		{ID: "3", Name: "Вагонка", Description: "Для отделки", Category: "Вагонка", WoodType: "Ольха", Purpose: "Отделка"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "name, case insensitive", term: "БРУС", want: []string{"1"}},
		{name: "description", term: "портланд", want: []string{"2"}},
		{name: "category", term: "стройматер", want: []string{"2"}},
		{name: "wood type", term: "ольх", want: []string{"3"}},
		{name: "purpose", term: "строительство", want: []string{"1"}},
		{name: "matches several fields across products", term: "отделк", want: []string{"3"}},
		{name: "no match", term: "гвозди", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(Search(products, tt.term))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestRelated(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "Брус"},
		{ID: "2", Category: "Брус"},
		{ID: "3", Category: "Метизы"},
		{ID: "4", Category: "Брус"},
		{ID: "5", Category: "Брус"},
		{ID: "6", Category: "Брус"},
		{ID: "7", Category: "Брус"},
	}

	tests := []struct {
		name     string
		id       string
		category string
		want     []string
	}{
		{name: "limited to four in store order", id: "2", category: "Брус", want: []string{"1", "4", "5", "6"}},
		{name: "excludes the product itself", id: "3", category: "Метизы", want: []string{}},
		{name: "unknown category", id: "1", category: "Инструменты", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(Related(products, tt.id, tt.category))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Related() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopular(t *testing.T) {
	products := make([]models.Product, 0, 8)
	for _, id := range []string{"8", "1", "2", "3", "4", "5", "6", "7"} {
		products = append(products, models.Product{ID: id})
	}

	tests := []struct {
		name     string
		products []models.Product
		limit    int
		want     []string
	}{
		{name: "first six in store order", products: products, limit: PopularLimit, want: []string{"8", "1", "2", "3", "4", "5"}},
		{name: "fewer products than the limit", products: products[:2], limit: PopularLimit, want: []string{"8", "1"}},
		{name: "zero limit", products: products, limit: 0, want: []string{}},
		{name: "no products", products: nil, limit: PopularLimit, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(Popular(tt.products, tt.limit))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Popular() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInCategories(t *testing.T) {
	products := lumberFixture()

	got := productIDs(InCategories(products, []string{"Брус", "Метизы", "Брус"}))
	want := []string{"2", "4", "6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InCategories() = %v, want %v", got, want)
	}

	if got := InCategories(products, nil); len(got) != 0 {
		t.Errorf("InCategories(nil) = %v, want empty", productIDs(got))
	}
}
