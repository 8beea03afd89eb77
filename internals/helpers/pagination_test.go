package helper

import "testing"

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"subject": "course_offering_subject_name",
		"year":    "course_offering_target_year",
	}

	tests := []struct {
		name    string
		params  PageParams
		want    string
		wantErr bool
	}{
		{"whitelisted key", PageParams{SortBy: "year", SortOrder: "desc"}, "course_offering_target_year DESC", false},
		{"unknown key falls back to default", PageParams{SortBy: "drop table", SortOrder: "asc"}, "course_offering_subject_name ASC", false},
		{"empty key uses default", PageParams{SortOrder: "asc"}, "course_offering_subject_name ASC", false},
		{"bad order defaults to asc", PageParams{SortBy: "subject", SortOrder: "sideways"}, "course_offering_subject_name ASC", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.SafeOrderClause(allowed, "subject")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("clause = %q, want %q", got, tt.want)
			}
		})
	}

	// The error branch is a config bug, not user input: the default key itself
	// must be whitelisted.
	if _, err := (PageParams{SortBy: "x"}).SafeOrderClause(allowed, "missing"); err == nil {
		t.Error("expected error for default key absent from whitelist")
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, PageParams{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Errorf("total pages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("has_next=%v has_prev=%v, want true/true", meta.HasNext, meta.HasPrev)
	}

	empty := BuildMeta(0, PageParams{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty meta = %+v, want no pages and no links", empty)
	}
}
