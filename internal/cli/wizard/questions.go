package wizard

import (
	"fmt"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
)

// DefaultQuestions returns the standard question sequence for a new
// project. The tabs question is only shown when auth was requested,
// since the generated tab bar lives behind the authenticated area.
func DefaultQuestions() []Question {
	fontOptions := make([]Option, 0, len(config.Fonts))
	for _, f := range config.Fonts {
		fontOptions = append(fontOptions, Option{
			Label: string(f),
			Value: string(f),
		})
	}

	return []Question{
		{
			ID:          "app_name",
			Type:        QuestionTypeInput,
			Title:       "What is your app named?",
			Description: "Letters, digits, hyphens and underscores only",
			Placeholder: "my-app",
			Required:    true,
			Validate:    config.ValidateAppName,
		},
		{
			ID:          "font",
			Type:        QuestionTypeSelect,
			Title:       "Pick a font family",
			Description: "Loaded via @expo-google-fonts at startup",
			Options:     fontOptions,
			Default:     string(config.DefaultFont),
		},
		{
			ID:          "primary_color",
			Type:        QuestionTypeInput,
			Title:       "Primary color",
			Description: "Hex value, leave empty for the default",
			Placeholder: "#3B82F6",
		},
		{
			ID:          "secondary_color",
			Type:        QuestionTypeInput,
			Title:       "Secondary color",
			Description: "Hex value, leave empty for the default",
			Placeholder: "#6B7280",
		},
		{
			ID:          "needs_auth",
			Type:        QuestionTypeConfirm,
			Title:       "Include authentication screens?",
			Description: "Adds login and signup routes",
			Default:     "true",
		},
		{
			ID:          "needs_tabs",
			Type:        QuestionTypeConfirm,
			Title:       "Include bottom tab navigation?",
			Description: "Adds a four-tab layout behind auth",
			Default:     "true",
			Condition: func(r *Result) bool {
				return r.NeedsAuth
			},
		},
	}
}

// saveAnswer stores a question's answer into the result.
func saveAnswer(result *Result, id, value string) error {
	switch id {
	case "app_name":
		result.AppName = value
	case "font":
		result.Font = value
	case "primary_color":
		result.PrimaryColor = value
	case "secondary_color":
		result.SecondaryColor = value
	case "needs_auth":
		result.NeedsAuth = value == "true"
	case "needs_tabs":
		result.NeedsTabs = value == "true"
		result.TabsAnswered = true
	default:
		return fmt.Errorf("unknown question id: %s", id)
	}
	return nil
}
