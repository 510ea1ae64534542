package web_test

import (
	"context"
	"testing"

	"github.com/ferdiebergado/userhub/internal/pkg/web"
)

func TestParamsFromContext(t *testing.T) {
	t.Parallel()

	type params struct{ Name string }

	ctx := web.NewContextWithParams(context.Background(), params{Name: "alice"})

	got, err := web.ParamsFromContext[params](ctx)
	if err != nil {
		t.Fatalf("web.ParamsFromContext(ctx) = %v, want: nil", err)
	}
	if got.Name != "alice" {
		t.Errorf("got.Name = %q, want: %q", got.Name, "alice")
	}

	if _, err := web.ParamsFromContext[string](ctx); err == nil {
		t.Error("web.ParamsFromContext[string](ctx) = nil, want: error")
	}
}
