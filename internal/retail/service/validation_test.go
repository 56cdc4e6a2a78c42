package service

import (
	"testing"

	"github.com/bitmarket/storehub/internal/retail/entity"
)

func TestAssignmentRowBlank(t *testing.T) {
	cases := []struct {
		name string
		row  AssignmentRow
		want bool
	}{
		{"empty row", AssignmentRow{}, true},
		{"only incoming qty", AssignmentRow{IncomingQty: 5}, true},
		{"whitespace new product name", AssignmentRow{NewProduct: &NewProductSpec{Name: "   "}}, true},
		{"product reference", AssignmentRow{ProductID: "p1"}, false},
		{"named new product", AssignmentRow{NewProduct: &NewProductSpec{Name: "新品"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.row.blank(); got != tc.want {
				t.Fatalf("blank() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRequestHasContent(t *testing.T) {
	cases := []struct {
		name    string
		items   []entity.RequestItem
		receipt string
		want    bool
	}{
		{"no items no receipt", nil, "", false},
		{"blank descriptions", []entity.RequestItem{{Description: " "}, {Description: ""}}, "", false},
		{"one real item", []entity.RequestItem{{Description: "鸡蛋", Quantity: 30}}, "", true},
		{"receipt only", nil, "receipts/2026/08/01/x.jpg", true},
		{"blank receipt", nil, "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasContent(tc.items, tc.receipt); got != tc.want {
				t.Fatalf("hasContent() = %v, want %v", got, tc.want)
			}
		})
	}
}
