package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestFromValidationErrorListsFields(t *testing.T) {
	type req struct {
		Name string `validate:"required"`
		Code string `validate:"max=2"`
	}
	err := validator.New().Struct(&req{Code: "abc"})

	resp := FromValidationError(err)
	if resp.Code() != http.StatusBadRequest || resp.Kind() != KindValidation {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Fields) != 2 || resp.Fields[0] != "Name" || resp.Fields[1] != "Code" {
		t.Fatalf("unexpected fields %v", resp.Fields)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(SlotTakenError) != KindConflict {
		t.Fatal("expected conflict")
	}
	if KindOf(fmt.Errorf("wrapped: %w", SlotNotAllowedError)) != KindValidation {
		t.Fatal("expected validation through wrapping")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("expected no kind for a plain error")
	}
	if KindOf(nil) != "" {
		t.Fatal("expected no kind for nil")
	}
	if NewSimple(http.StatusConflict, "x").Kind() != KindConflict {
		t.Fatal("expected status-derived kind")
	}
}
