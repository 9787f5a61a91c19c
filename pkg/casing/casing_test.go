package casing_test

import (
	"testing"

	"github.com/ryn-cx/devious-schema/pkg/casing"
)

func TestToSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"camelCase", "camel_case"},
		{"PascalCase", "pascal_case"},
		{"snake_case", "snake_case"},
		{"Nonsense_Case", "nonsense_case"},
		{"__private_string", "__private_string"},
		{"__privateString", "__private_string"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := casing.ToSnakeCase(tc.in); got != tc.want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToSnakeCaseIdempotent(t *testing.T) {
	inputs := []string{"already_snake", "__private_string", "plain", "with_number_2"}
	for _, in := range inputs {
		once := casing.ToSnakeCase(in)
		if twice := casing.ToSnakeCase(once); twice != once {
			t.Errorf("ToSnakeCase not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"camelCase", "CamelCase"},
		{"PascalCase", "PascalCase"},
		{"snake_case", "SnakeCase"},
		{"__private_string", "PrivateString"},
		{"__privateString", "PrivateString"},
		{"a__b", "AB"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := casing.ToPascalCase(tc.in); got != tc.want {
			t.Errorf("ToPascalCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
