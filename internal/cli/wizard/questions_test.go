package wizard

import (
	"testing"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
)

func TestDefaultQuestions(t *testing.T) {
	questions := DefaultQuestions()

	if len(questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(questions))
	}

	if questions[0].ID != "app_name" {
		t.Errorf("expected first question ID 'app_name', got %q", questions[0].ID)
	}
	if !questions[0].Required {
		t.Error("app_name question should be required")
	}
	if questions[0].Validate == nil {
		t.Error("app_name question should carry a validator")
	}

	var fontQ *Question
	for i := range questions {
		if questions[i].ID == "font" {
			fontQ = &questions[i]
			break
		}
	}
	if fontQ == nil {
		t.Fatal("font question not found")
	}
	if len(fontQ.Options) != len(config.Fonts) {
		t.Errorf("expected %d font options, got %d", len(config.Fonts), len(fontQ.Options))
	}
	if fontQ.Default != string(config.DefaultFont) {
		t.Errorf("expected font default %q, got %q", config.DefaultFont, fontQ.Default)
	}
}

func TestAppNameQuestionValidation(t *testing.T) {
	questions := DefaultQuestions()
	validate := questions[0].Validate

	if err := validate("my-app"); err != nil {
		t.Errorf("validate(my-app) = %v, want nil", err)
	}
	if err := validate("my app!"); err == nil {
		t.Error("validate(\"my app!\") should fail")
	}
}

func TestTabsQuestionCondition(t *testing.T) {
	questions := DefaultQuestions()

	var tabsQ *Question
	for i := range questions {
		if questions[i].ID == "needs_tabs" {
			tabsQ = &questions[i]
			break
		}
	}
	if tabsQ == nil {
		t.Fatal("needs_tabs question not found")
	}
	if tabsQ.Condition == nil {
		t.Fatal("needs_tabs question should be conditional")
	}

	if tabsQ.Condition(&Result{NeedsAuth: false}) {
		t.Error("tabs question should be hidden when auth is declined")
	}
	if !tabsQ.Condition(&Result{NeedsAuth: true}) {
		t.Error("tabs question should be shown when auth is requested")
	}
}
