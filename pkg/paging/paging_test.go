package paging_test

import (
	"testing"

	"postbase-backend/pkg/paging"
)

func TestOffset(t *testing.T) {
	p := paging.Params{Page: 2, Limit: 10}
	if p.Offset() != 10 {
		t.Fatalf("expected offset 10, got %d", p.Offset())
	}

	p = paging.Params{Page: 1, Limit: 25}
	if p.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", p.Offset())
	}
}

func TestNewResult_CeilPages(t *testing.T) {
	r := paging.NewResult(paging.Params{Page: 2, Limit: 10}, 25)
	if r.Pages != 3 {
		t.Fatalf("expected 3 pages for 25 records at limit 10, got %d", r.Pages)
	}
	if r.Total != 25 || r.Page != 2 || r.Limit != 10 {
		t.Fatalf("unexpected result: %+v", r)
	}

	r = paging.NewResult(paging.Params{Page: 1, Limit: 10}, 30)
	if r.Pages != 3 {
		t.Fatalf("expected 3 pages for 30 records, got %d", r.Pages)
	}

	r = paging.NewResult(paging.Params{Page: 1, Limit: 10}, 0)
	if r.Pages != 0 {
		t.Fatalf("expected 0 pages for no records, got %d", r.Pages)
	}
}
