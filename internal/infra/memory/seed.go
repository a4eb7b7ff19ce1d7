package infra_memory

import (
	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

// Seed ids match migrations/002_seed.sql so both drivers serve the same catalog.
var seedNamespace = uuid.MustParse("6f1a3c52-8d4e-4b8a-9c61-2f0e5d7b9a10")

func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(name))
}

func DefaultCatalog() []model.PowerUp {
	return []model.PowerUp{
		{ID: seedID("extra_time"), Kind: model.PowerUpExtraTime, Name: "Extra Time", Description: "Adds 10 seconds to the question timer.", EffectValue: 10},
		{ID: seedID("skip_question"), Kind: model.PowerUpSkipQuestion, Name: "Skip Question", Description: "Skip a question without losing points.", EffectValue: 0},
		{ID: seedID("double_points"), Kind: model.PowerUpDoublePoints, Name: "Double Points", Description: "Doubles the points of your next answer.", EffectValue: 2},
		{ID: seedID("hint"), Kind: model.PowerUpHint, Name: "Hint", Description: "Removes two wrong options.", EffectValue: 2},
		{ID: seedID("shield"), Kind: model.PowerUpShield, Name: "Shield", Description: "Protects you from losing points on a timeout.", EffectValue: 0},
	}
}

func question(text, correct, difficulty, explanation string, options ...string) model.Question {
	return model.Question{
		ID:            seedID(text),
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
		Difficulty:    difficulty,
		Explanation:   explanation,
	}
}

func DefaultQuestions() []model.Question {
	return []model.Question{
		question("What is the capital of France?", "Paris", model.DifficultyEasy,
			"Paris has been the capital of France since the 10th century.",
			"London", "Berlin", "Paris", "Madrid"),
		question("How many continents are there?", "7", model.DifficultyEasy,
			"Africa, Antarctica, Asia, Australia, Europe, North America and South America.",
			"5", "6", "7", "8"),
		question("Which planet is known as the Red Planet?", "Mars", model.DifficultyEasy,
			"Iron oxide on its surface gives Mars its reddish look.",
			"Venus", "Mars", "Jupiter", "Saturn"),
		question("What is the largest ocean on Earth?", "Pacific", model.DifficultyEasy,
			"The Pacific covers about a third of the planet's surface.",
			"Atlantic", "Indian", "Arctic", "Pacific"),
		question("What gas do plants absorb from the air?", "Carbon dioxide", model.DifficultyEasy,
			"Plants take in carbon dioxide for photosynthesis.",
			"Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"),
		question("Who painted the Mona Lisa?", "Leonardo da Vinci", model.DifficultyMedium,
			"Leonardo worked on it from around 1503.",
			"Michelangelo", "Raphael", "Leonardo da Vinci", "Donatello"),
		question("What is the chemical symbol for gold?", "Au", model.DifficultyMedium,
			"Au comes from the Latin word aurum.",
			"Go", "Gd", "Au", "Ag"),
		question("In which year did the Berlin Wall fall?", "1989", model.DifficultyMedium,
			"The border opened on 9 November 1989.",
			"1987", "1989", "1991", "1993"),
		question("What is the hardest natural substance?", "Diamond", model.DifficultyMedium,
			"Diamond scores 10 on the Mohs scale.",
			"Quartz", "Diamond", "Topaz", "Corundum"),
		question("Which language has the most native speakers?", "Mandarin Chinese", model.DifficultyMedium,
			"Mandarin has close to a billion native speakers.",
			"English", "Spanish", "Hindi", "Mandarin Chinese"),
		question("What is the smallest prime number?", "2", model.DifficultyMedium,
			"2 is the only even prime.",
			"0", "1", "2", "3"),
		question("What is the speed of light in vacuum, in km/s (rounded)?", "300000", model.DifficultyHard,
			"Exactly 299 792.458 km/s.",
			"150000", "300000", "450000", "1000000"),
		question("Which element has atomic number 1?", "Hydrogen", model.DifficultyHard,
			"Hydrogen has a single proton.",
			"Helium", "Hydrogen", "Lithium", "Oxygen"),
		question("Who developed the theory of general relativity?", "Albert Einstein", model.DifficultyHard,
			"Einstein published it in 1915.",
			"Isaac Newton", "Niels Bohr", "Albert Einstein", "Max Planck"),
		question("What is the longest river in the world?", "Nile", model.DifficultyHard,
			"The Nile is about 6 650 km long, though the Amazon is a close rival.",
			"Amazon", "Yangtze", "Mississippi", "Nile"),
	}
}
