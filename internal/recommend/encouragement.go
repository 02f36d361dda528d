package recommend

import "github.com/abhisek/brightpath/internal/subject"

// Band is an accuracy band used to pick encouragement text.
type Band int

const (
	BandKeepTrying Band = iota // below 60
	BandGood                   // 60-74
	BandGreat                  // 75-89
	BandExcellent              // 90 and above
)

// BandFor returns the band for an accuracy percentage.
func BandFor(accuracy float64) Band {
	switch {
	case accuracy >= 90:
		return BandExcellent
	case accuracy >= 75:
		return BandGreat
	case accuracy >= 60:
		return BandGood
	default:
		return BandKeepTrying
	}
}

// messages holds one register per age group: warm and simple for the
// youngest, achievement-framed for the middle band, growth-mindset for the
// oldest.
var messages = map[subject.AgeGroup][4]string{
	subject.AgeYoung: {
		BandKeepTrying: "Every try helps you grow! Let's play again together!",
		BandGood:       "Good job! You're learning so much!",
		BandGreat:      "Great work! You're doing so well!",
		BandExcellent:  "WOW! You're a superstar! Amazing job!",
	},
	subject.AgeMiddle: {
		BandKeepTrying: "Keep going! Every challenge makes you stronger. You've got this!",
		BandGood:       "Nice effort! Practice a bit more and you'll level up!",
		BandGreat:      "Awesome job! You're really getting the hang of this!",
		BandExcellent:  "Incredible! You've mastered this level. Ready for the next challenge?",
	},
	subject.AgeOlder: {
		BandKeepTrying: "Mistakes are how your brain learns. Review the tricky parts and try again.",
		BandGood:       "Solid progress. Focus on the concepts that tripped you up and you'll improve fast.",
		BandGreat:      "Strong work. Your effort is paying off. Keep pushing your skills further.",
		BandExcellent:  "Outstanding! Your hard work shows. Time to take on harder problems.",
	},
}

// Encouragement returns the message for an accuracy and age group. Unknown
// age groups use the middle register.
func Encouragement(accuracy float64, age subject.AgeGroup) string {
	register, ok := messages[age]
	if !ok {
		register = messages[subject.AgeMiddle]
	}
	return register[BandFor(accuracy)]
}
