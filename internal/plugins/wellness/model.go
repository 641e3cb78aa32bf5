package wellness

// Exercise is one guided mindfulness exercise. The catalog is static; the
// client runs the timer and cycles through the steps.
type Exercise struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DurationSeconds int      `json:"durationSeconds"`
	Steps           []string `json:"steps"`
}

// Resource is one crisis support contact.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Emergency   bool   `json:"emergency"`
}

var exercises = []Exercise{
	{
		ID:              "box-breathing",
		Title:           "Box Breathing",
		Description:     "A simple technique to slow down your breathing and reduce stress. Inhale, hold, exhale, hold for 4 seconds each.",
		DurationSeconds: 60,
		Steps:           []string{"Inhale (4s)", "Hold (4s)", "Exhale (4s)", "Hold (4s)"},
	},
	{
		ID:              "5-4-3-2-1",
		Title:           "5-4-3-2-1 Grounding",
		Description:     "Acknowledge 5 things you see, 4 you feel, 3 you hear, 2 you smell, and 1 you taste.",
		DurationSeconds: 120,
		Steps:           []string{"Look around (5)", "Touch things (4)", "Listen (3)", "Smell (2)", "Taste (1)"},
	},
	{
		ID:              "body-scan",
		Title:           "Quick Body Scan",
		Description:     "Focus attention on different parts of your body, from toes to head, releasing tension.",
		DurationSeconds: 180,
		Steps:           []string{"Focus on toes", "Legs & Knees", "Hips & Stomach", "Chest & Arms", "Neck & Head"},
	},
}

var resources = []Resource{
	{
		Name:        "Emergency Services",
		Description: "If you are in immediate danger or need urgent medical attention, please do not wait.",
		Contact:     "112",
		Emergency:   true,
	},
	{
		Name:        "Mental Health Helpline",
		Description: "24/7 confidential support for people in distress.",
		Contact:     "14416",
	},
	{
		Name:        "Suicide Prevention",
		Description: "Free and confidential support for people in distress.",
		Contact:     "9152987821",
	},
}

// Exercises returns the static exercise catalog.
func Exercises() []Exercise { return exercises }

// Resources returns the crisis support contacts.
func Resources() []Resource { return resources }
