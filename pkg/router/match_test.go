package router

import (
	"testing"

	"github.com/strata-dev/strata/pkg/mem"
)

func TestMatchExact(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	params, ok := Match(alloc, "/about", "/about")
	if !ok {
		t.Fatal("expected match for /about")
	}
	if params != nil {
		t.Errorf("static match returned params %v, want nil", params)
	}
}

func TestMatchDynamic(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	params, ok := Match(alloc, "/users/[id]/posts/[slug]", "/users/42/posts/hello")
	if !ok {
		t.Fatal("expected match")
	}
	if params["id"] != "42" {
		t.Errorf("params[id] = %q, want %q", params["id"], "42")
	}
	if params["slug"] != "hello" {
		t.Errorf("params[slug] = %q, want %q", params["slug"], "hello")
	}
}

func TestMatchSegmentCountMismatch(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	if _, ok := Match(alloc, "/a/[b]", "/a"); ok {
		t.Error("pattern longer than path should not match")
	}
	if _, ok := Match(alloc, "/a/[b]", "/a/1/2"); ok {
		t.Error("path longer than pattern should not match")
	}
}

func TestMatchStaticMismatch(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	if _, ok := Match(alloc, "/users/[id]/posts", "/users/42/comments"); ok {
		t.Error("static segment mismatch should not match")
	}
}

func TestMatchRoot(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	if _, ok := Match(alloc, "/", "/"); !ok {
		t.Error("root pattern should match root path")
	}
	if _, ok := Match(alloc, "/", "/about"); ok {
		t.Error("root pattern should not match /about")
	}
}

func TestMatchDuplicateParamLastWriteWins(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	params, ok := Match(alloc, "/[id]/[id]", "/first/second")
	if !ok {
		t.Fatal("expected match")
	}
	if params["id"] != "second" {
		t.Errorf("params[id] = %q, want %q", params["id"], "second")
	}
}

func TestMatchBareBracketsAreStatic(t *testing.T) {
	alloc := mem.New()
	defer alloc.Release()

	if _, ok := Match(alloc, "/a/[]", "/a/anything"); ok {
		t.Error("bare [] segment should be static, not dynamic")
	}
	if _, ok := Match(alloc, "/a/[]", "/a/[]"); !ok {
		t.Error("bare [] segment should match itself")
	}
}
