package models

import (
	"encoding/json"
	"testing"
)

func TestProduct_UnitPrice(t *testing.T) {
	sale := 80.0
	zero := 0.0

	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{"no sale price", Product{Price: 100}, 100},
		{"sale price set", Product{Price: 100, SalePrice: &sale}, 80},
		{"zero sale price ignored", Product{Price: 100, SalePrice: &zero}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.UnitPrice(); got != tt.want {
				t.Errorf("UnitPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductRef_UnmarshalJSON(t *testing.T) {
	t.Run("bare ID string", func(t *testing.T) {
		var ref ProductRef
		if err := json.Unmarshal([]byte(`"p1"`), &ref); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if ref.ID != "p1" || ref.Product != nil {
			t.Errorf("ref = %+v, want bare ID without product", ref)
		}
	})

	t.Run("populated product object", func(t *testing.T) {
		data := []byte(`{"_id":"p1","name":"Linen Shirt","price":99.5}`)
		var ref ProductRef
		if err := json.Unmarshal(data, &ref); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if ref.ID != "p1" {
			t.Errorf("ID = %q, want p1", ref.ID)
		}
		if ref.Product == nil || ref.Product.Name != "Linen Shirt" || ref.Product.Price != 99.5 {
			t.Errorf("product = %+v, want populated shirt", ref.Product)
		}
	})

	t.Run("cart item with both shapes", func(t *testing.T) {
		data := []byte(`{"items":[
			{"product_id":"p1","quantity":1},
			{"product_id":{"_id":"p2","name":"Silk Scarf","price":50},"quantity":2,"size":"L"}
		]}`)
		var cart Cart
		if err := json.Unmarshal(data, &cart); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if len(cart.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(cart.Items))
		}
		if cart.Items[0].Product.ID != "p1" || cart.Items[0].Product.Product != nil {
			t.Errorf("first item = %+v, want bare reference", cart.Items[0].Product)
		}
		if cart.Items[1].Product.Product == nil || cart.Items[1].Product.Product.Name != "Silk Scarf" {
			t.Errorf("second item = %+v, want populated reference", cart.Items[1].Product)
		}
	})
}

func TestProductRef_MarshalJSON(t *testing.T) {
	t.Run("bare reference round-trips as string", func(t *testing.T) {
		data, err := json.Marshal(ProductRef{ID: "p1"})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `"p1"` {
			t.Errorf("Marshal() = %s, want %q", data, `"p1"`)
		}
	})

	t.Run("populated reference round-trips as object", func(t *testing.T) {
		ref := ProductRef{ID: "p1", Product: &Product{ID: "p1", Name: "Linen Shirt", Price: 100}}
		data, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var back ProductRef
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if back.Product == nil || back.Product.Name != "Linen Shirt" {
			t.Errorf("round-trip = %+v, want populated product", back)
		}
	})
}
