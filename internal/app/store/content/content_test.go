package content

import (
	"testing"

	"github.com/brightharbor/schoolhub/internal/domain/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }

func TestSetFields_OnlySuppliedFields(t *testing.T) {
	patch := models.BannerPatch{
		Heading:  strPtr("Welcome Back"),
		IsActive: boolPtr(false),
	}

	set, err := SetFields(patch)
	if err != nil {
		t.Fatalf("SetFields failed: %v", err)
	}

	if set["heading"] != "Welcome Back" {
		t.Errorf("heading: got %v", set["heading"])
	}
	if set["is_active"] != false {
		t.Errorf("is_active: got %v", set["is_active"])
	}
	for _, absent := range []string{"image", "subheading", "button_label", "button_link", "order"} {
		if _, present := set[absent]; present {
			t.Errorf("%s should be absent from $set", absent)
		}
	}
}

func TestSetFields_Empty(t *testing.T) {
	set, err := SetFields(models.BannerPatch{})
	if err != nil {
		t.Fatalf("SetFields failed: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("empty patch produced fields: %v", set)
	}
}

func TestSetFields_ZeroValuesStillSet(t *testing.T) {
	// A pointer to a zero value is an explicit assignment, not an
	// omission.
	set, err := SetFields(models.BannerPatch{Order: intPtr(0)})
	if err != nil {
		t.Fatalf("SetFields failed: %v", err)
	}
	if v, present := set["order"]; !present {
		t.Error("order should be present")
	} else if v != int32(0) && v != int64(0) && v != 0 {
		t.Errorf("order: got %v", v)
	}
}
