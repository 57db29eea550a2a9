package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"int", "int", 0},
		{"", "abc", 3},
		{"abc", "", 3},

		{"a", "b", 1},
		{"int", "uint", 1},
		{"long", "lng", 1},

		{"kitten", "sitting", 3},
		{"list_head", "list_node", 4},
		{"size_t", "ssize_t", 1},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"List_Head", "list_head", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); result != reverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, reversed = %d", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"task_struct", "task_struct", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"size_t", "ssize_t", 1.0 - 1.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		{"list_head", "ListHead", 1.0},
		{"LIST_HEAD", "list_head", 1.0},
		{"list_head", "hlist_head", 0.8},
		{"task_struct", "mm_struct", 0.5},
		{"inode", "dentry", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedLevenshteinScore(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want >= %f", tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

func TestNormalizedLevenshteinScoreWithSuffixStrip(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"size_t", "size", 1.0},
		{"u32_t", "__u32", 1.0},
		{"pid_t", "PID", 1.0},
		{"page_struct", "page", 1.0},
		{"_t", "t", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedLevenshteinScoreWithSuffixStrip(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("NormalizedLevenshteinScoreWithSuffixStrip(%q, %q) = %f, want %f",
					tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for b.Loop() {
		Levenshtein("task_struct", "tasklet_struct")
	}
}

func BenchmarkNormalizedLevenshteinScore(b *testing.B) {
	for b.Loop() {
		NormalizedLevenshteinScore("TaskStruct", "task_struct")
	}
}
