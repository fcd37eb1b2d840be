package topics

import "testing"

func TestGet_Exists(t *testing.T) {
	topic, err := Get("go-concurrency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Title != "Go Concurrency" {
		t.Errorf("title = %q", topic.Title)
	}
	if topic.Category != "Programming" {
		t.Errorf("category = %q", topic.Category)
	}
}

func TestGet_NotFound(t *testing.T) {
	if _, err := Get("underwater-basket-weaving"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestAll_UniqueIDsAndOrdering(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool)
	for _, topic := range all {
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %q", topic.ID)
		}
		seen[topic.ID] = true
		if topic.Title == "" || topic.Description == "" || topic.Category == "" {
			t.Errorf("topic %q has empty fields", topic.ID)
		}
	}

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Category > cur.Category {
			t.Errorf("categories out of order: %q before %q", prev.Category, cur.Category)
		}
		if prev.Category == cur.Category && prev.Title > cur.Title {
			t.Errorf("titles out of order within %q: %q before %q", cur.Category, prev.Title, cur.Title)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}
