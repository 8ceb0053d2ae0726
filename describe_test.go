package logger

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

type celsius float64

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"int", 1, "1"},
		{"string", "two", "two"},
		{"integral float", 3.0, "3.0"},
		{"negative float", -3.0, "-3.0"},
		{"fractional float", 2.5, "2.5"},
		{"float32", float32(0.1), "0.1"},
		{"zero", 0.0, "0.0"},
		{"large float", 1e21, "1e+21"},
		{"small float", 1e-5, "1e-05"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(-1), "-Inf"},
		{"bool", false, "false"},
		{"nil", nil, "<nil>"},
		{"stringer", point{1, 2}, "(1,2)"},
		{"error", errors.New("boom"), "boom"},
		{"named float keeps generic format", celsius(3), "3"},
		{"slice", []int{1, 2}, "[1 2]"},
		{"nested floats use generic format", []float64{3.0, 2.5}, "[3 2.5]"},
		{"map floats use generic format", map[string]float64{"a": 1}, "map[a:1]"},
		{"plain notation below 1e21", 1e16, "10000000000000000.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.v); got != tt.want {
				t.Errorf("Describe(%#v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
