package schema

import (
	"testing"
	"time"
)

func testSchema() *Schema {
	return New(
		String("name"),
		PositiveNumber("value"),
		StringDefault("status", "active"),
		NumberRange("share", 0, 100),
		OptionalNumber("returns"),
		IntDefault("employees", 0),
		BoolDefault("repeatable", true),
		Date("acquired"),
		OptionalString("notes"),
	)
}

func validBody() map[string]any {
	return map[string]any{
		"name":     "Test",
		"value":    100.0,
		"share":    50.0,
		"acquired": "2024-03-01",
	}
}

func TestValidateDefaults(t *testing.T) {
	rec, errs := testSchema().Validate(validBody())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if rec.String("status") != "active" {
		t.Errorf("expected default status 'active', got %q", rec.String("status"))
	}
	if rec.Int("employees") != 0 {
		t.Errorf("expected default employees 0, got %d", rec.Int("employees"))
	}
	if !rec.Bool("repeatable") {
		t.Error("expected default repeatable true")
	}
	if rec.Has("returns") || rec.Has("notes") {
		t.Error("omitted optional fields should have no record entry")
	}

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !rec.Time("acquired").Equal(want) {
		t.Errorf("expected acquired %v, got %v", want, rec.Time("acquired"))
	}
}

func TestValidateMissingRequired(t *testing.T) {
	body := validBody()
	delete(body, "name")
	delete(body, "acquired")

	rec, errs := testSchema().Validate(body)
	if rec != nil {
		t.Error("expected nil record on validation failure")
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
		if e.Message != "required" {
			t.Errorf("expected 'required' message for %s, got %q", e.Field, e.Message)
		}
	}
	if !fields["name"] || !fields["acquired"] {
		t.Errorf("expected errors for name and acquired, got %v", errs)
	}
}

func TestValidateEnumeratesAllErrors(t *testing.T) {
	_, errs := testSchema().Validate(map[string]any{
		"name":     "",
		"value":    -5.0,
		"share":    150.0,
		"acquired": "not-a-date",
		"returns":  "lots",
	})
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateWrongTypes(t *testing.T) {
	body := validBody()
	body["value"] = "expensive"
	body["repeatable"] = "yes"
	body["employees"] = 2.5

	_, errs := testSchema().Validate(body)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	body := validBody()
	body["ownerId"] = "someone-else"
	body["unknown"] = 42.0

	rec, errs := testSchema().Validate(body)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Has("ownerId") || rec.Has("unknown") {
		t.Error("unknown fields must not appear in the record")
	}
}

func TestValidateDateAcceptsDatetime(t *testing.T) {
	body := validBody()
	body["acquired"] = "2024-03-01T10:30:00Z"

	rec, errs := testSchema().Validate(body)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Time("acquired").Hour() != 10 {
		t.Errorf("expected datetime parse, got %v", rec.Time("acquired"))
	}
}

func TestValidateDateTimeRejectsPlainDate(t *testing.T) {
	s := New(DateTime("publishedAt"))

	_, errs := s.Validate(map[string]any{"publishedAt": "2024-03-01"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}

	rec, errs := s.Validate(map[string]any{"publishedAt": "2024-03-01T12:00:00Z"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Time("publishedAt").IsZero() {
		t.Error("expected parsed datetime")
	}
}

func TestValidateNullTreatedAsAbsent(t *testing.T) {
	body := validBody()
	body["status"] = nil
	body["returns"] = nil

	rec, errs := testSchema().Validate(body)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.String("status") != "active" {
		t.Errorf("null should fall back to default, got %q", rec.String("status"))
	}
	if rec.Has("returns") {
		t.Error("null optional field should be absent from record")
	}
}
