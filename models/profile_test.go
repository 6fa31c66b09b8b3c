package models

import "testing"

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want bool
	}{
		{"zero profile", Profile{}, false},
		{"missing age", Profile{Name: "A", Email: "a@x.com", Income: 500000}, false},
		{"missing income", Profile{Name: "A", Email: "a@x.com", Age: 30}, false},
		{"missing name", Profile{Email: "a@x.com", Income: 500000, Age: 30}, false},
		{"complete", Profile{Name: "A", Email: "a@x.com", Income: 500000, Age: 30}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyUpdate(t *testing.T) {
	p := &Profile{}
	err := p.ApplyUpdate(map[string]interface{}{
		"name":           "Priya",
		"income":         float64(950000),
		"age":            float64(29),
		"property_owned": true,
		"unknown_field":  "ignored silently",
	})
	if err != nil {
		t.Fatalf("ApplyUpdate() error: %v", err)
	}
	if p.Name != "Priya" || p.Income != 950000 || p.Age != 29 || !p.PropertyOwned {
		t.Errorf("fields not applied: %+v", p)
	}
}

func TestApplyUpdateValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{"negative income", map[string]interface{}{"income": float64(-1)}},
		{"negative age", map[string]interface{}{"age": float64(-5)}},
		{"income as string", map[string]interface{}{"income": "lots"}},
		{"name as number", map[string]interface{}{"name": float64(5)}},
		{"bool as string", map[string]interface{}{"vehicle_owned": "yes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{}
			if err := p.ApplyUpdate(tt.fields); err == nil {
				t.Errorf("expected validation error for %v", tt.fields)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{45000, "₹45,000"},
		{150000, "₹150,000"},
		{1200000, "₹1,200,000"},
		{999.6, "₹1,000"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
