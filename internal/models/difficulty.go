package models

// difficultyNums maps upstream difficulty text to the 10-100 numeric
// scale used when the API sends only the text form. Unknown text maps
// to 0.
var difficultyNums = map[string]int{
	"Very Easy": 10,
	"Easy":      20,
	"Medium":    40,
	"Hard":      60,
	"Insane":    90,
}

// DifficultyNum returns the numeric difficulty for a text tier, 0 when
// the tier is unknown.
func DifficultyNum(text string) int {
	return difficultyNums[text]
}

// DifficultyText buckets a 10-100 community difficulty number into a
// text tier. Values outside the known buckets yield "Unknown".
func DifficultyText(num int) string {
	switch {
	case num >= 10 && num <= 20:
		return "Easy"
	case num >= 30 && num <= 40:
		return "Medium"
	case num >= 50 && num <= 60:
		return "Hard"
	case num >= 70 && num <= 100:
		return "Insane"
	default:
		return "Unknown"
	}
}
