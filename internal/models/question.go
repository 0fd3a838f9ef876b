package models

import "time"

type Question struct {
	ID     int           `json:"id" mapstructure:"-"`
	Text   string        `json:"text" mapstructure:"text"`
	Answer string        `json:"-" mapstructure:"answer"`
	TTL    time.Duration `json:"-" mapstructure:"-"`
}

// SeedQuestions are written by the setup endpoint on every call.
var SeedQuestions = []Question{
	{1, "Is 10 bigger than 5?", "yes", 1 * time.Minute},
	{2, "Does Fedia bench press 100 kg at the gym?", "yes", 2 * time.Minute},
	{3, "Are you smart?", "no", 3 * time.Minute},
}
