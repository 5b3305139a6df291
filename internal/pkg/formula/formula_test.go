package formula

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEval(t *testing.T) {
	vars := Bindings{
		"basic_salary":   dec("30000"),
		"monthly_salary": dec("30000"),
		"daily_rate":     dec("1363.64"),
		"service_months": dec("24"),
	}

	cases := []struct {
		name string
		expr string
		want string
	}{
		{"literal", "42", "42"},
		{"addition", "1 + 2 + 3", "6"},
		{"precedence", "2 + 3 * 4", "14"},
		{"parentheses", "(2 + 3) * 4", "20"},
		{"variable", "basic_salary * 0.5", "15000"},
		{"two variables", "daily_rate * 3 + 100", "4190.92"},
		{"division", "basic_salary / 12", "2500"},
		{"unary minus", "-5 + 10", "5"},
		{"nested", "((basic_salary / 12) * (service_months / 12))", "5000"},
		{"decimal literal", "0.10 * monthly_salary", "3000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Eval(c.expr, vars)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", c.expr, err)
			}
			if !got.Equal(dec(c.want)) {
				t.Errorf("Eval(%q) = %s, want %s", c.expr, got, c.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	vars := Bindings{"basic_salary": dec("30000")}

	cases := []struct {
		name string
		expr string
	}{
		{"unknown variable", "basic_salary + bonus_rate"},
		{"dangling operator", "basic_salary +"},
		{"missing paren", "(basic_salary + 1"},
		{"division by zero", "basic_salary / 0"},
		{"invalid character", "basic_salary; drop"},
		{"double dot", "1.2.3 + 1"},
		{"empty", ""},
		{"trailing garbage", "1 + 2 3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Eval(c.expr, vars); err == nil {
				t.Errorf("Eval(%q) succeeded, want error", c.expr)
			}
		})
	}
}

// Repeated evaluation must be byte-stable so recalculations are idempotent.
func TestEvalDeterministic(t *testing.T) {
	vars := Bindings{"basic_salary": dec("31415.92"), "service_months": dec("7")}
	expr := "basic_salary / 12 * (service_months / 12)"

	first, err := Eval(expr, vars)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Eval(expr, vars)
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("Eval not deterministic: %s vs %s", first, second)
	}
}
