package server

// themePrompts maps the built-in theme labels to their prompt texts.
var themePrompts = map[string][]string{
	"life-events": {
		"Getting your first job",
		"Moving to a new city",
		"Getting married",
		"Having your first child",
		"Retiring from work",
	},
	"historical-events": {
		"The invention of the wheel",
		"The fall of the Roman Empire",
		"The discovery of America",
		"World War II",
		"The moon landing",
	},
	"daily-activities": {
		"Waking up in the morning",
		"Eating breakfast",
		"Commuting to work",
		"Having lunch",
		"Going to bed",
	},
}
