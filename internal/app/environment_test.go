package app

import "testing"

func TestVariablesIsACopy(t *testing.T) {
	env := NewEnvironment(map[string]string{"PORT": "3000"})

	vars := env.Variables()
	vars["PORT"] = "8080"

	if got := env.Get("PORT"); got != "3000" {
		t.Errorf("Get(PORT) = %q, want %q", got, "3000")
	}
}

func TestMerge(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"PORT":     "3000",
		"NODE_ENV": "development",
	})

	merged := env.Merge(map[string]string{
		"NODE_ENV": "production",
		"CI":       "true",
	})

	want := map[string]string{
		"PORT":     "3000",
		"NODE_ENV": "production",
		"CI":       "true",
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("merged[%s] = %q, want %q", k, merged[k], v)
		}
	}
	if len(merged) != len(want) {
		t.Errorf("len(merged) = %d, want %d", len(merged), len(want))
	}

	// The base environment is unchanged.
	if got := env.Get("NODE_ENV"); got != "development" {
		t.Errorf("Get(NODE_ENV) = %q, want %q", got, "development")
	}
}
