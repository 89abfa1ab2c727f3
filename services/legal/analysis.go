// Package legal serves the static legal-suggestion payload and reference
// directories. The analysis endpoint is a stub, not a real NLP pipeline.
package legal

import "saarthi/models"

// Suggestion is one suggested statute for a complaint text.
type Suggestion struct {
	Section      string `json:"section"`
	Description  string `json:"description"`
	Act          string `json:"act"`
	IsCognizable bool   `json:"isCognizable"`
	IsBailable   bool   `json:"isBailable"`
	Punishment   string `json:"punishment"`
}

// Judgment is a relevant precedent.
type Judgment struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Summary  string `json:"summary"`
	FullText string `json:"fullText"`
	Citation string `json:"citation"`
}

// AnalysisResponse is the full mock analysis payload.
type AnalysisResponse struct {
	Suggestions     []Suggestion `json:"suggestions"`
	Judgments       []Judgment   `json:"judgments"`
	ProceduralSteps []string     `json:"proceduralSteps"`
}

// AnalyzeComplaint returns the fixed suggestion payload for any complaint
// text. Text and language are accepted for interface stability only.
func AnalyzeComplaint(text, language string) AnalysisResponse {
	return AnalysisResponse{
		Suggestions: []Suggestion{
			{
				Section:      "IPC 354",
				Description:  "Assault or criminal force to woman with intent to outrage her modesty",
				Act:          "Indian Penal Code",
				IsCognizable: true,
				IsBailable:   false,
				Punishment:   "Imprisonment up to 5 years and fine",
			},
			{
				Section:      "IPC 509",
				Description:  "Word, gesture or act intended to insult the modesty of a woman",
				Act:          "Indian Penal Code",
				IsCognizable: true,
				IsBailable:   true,
				Punishment:   "Imprisonment up to 3 years and fine",
			},
		},
		Judgments: []Judgment{
			{
				Title:    "Vishaka vs State of Rajasthan",
				Year:     1997,
				Summary:  "Landmark case that defined sexual harassment at workplace",
				FullText: "The Supreme Court of India laid down guidelines for preventing sexual harassment at workplace...",
				Citation: "AIR 1997 SC 3011",
			},
		},
		ProceduralSteps: []string{
			"File a written complaint at the police station",
			"Get a medical examination if there was physical contact",
			"Record your statement before a Magistrate under Section 164 CrPC",
			"Cooperate with the police investigation",
			"Identify the accused in an identification parade if required",
		},
	}
}

// PoliceStations returns the static station directory.
func PoliceStations() []models.PoliceStation {
	return []models.PoliceStation{
		{
			ID:       "1",
			Name:     "Central Police Station",
			Address:  "123 Main Street, City Center",
			Phone:    "+91 1234567890",
			Location: models.Location{Lat: 19.0760, Lng: 72.8777},
		},
		{
			ID:       "2",
			Name:     "North Police Station",
			Address:  "456 North Avenue, North District",
			Phone:    "+91 2345678901",
			Location: models.Location{Lat: 19.1136, Lng: 72.8697},
		},
		{
			ID:       "3",
			Name:     "South Police Station",
			Address:  "789 South Road, South District",
			Phone:    "+91 3456789012",
			Location: models.Location{Lat: 19.0330, Lng: 72.8353},
		},
	}
}
