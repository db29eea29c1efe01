package hangman

// Every table ends with the dead stage; tables are indexed by attempts used.
const (
	gallowsEmpty    = "  _______\n |       |\n |\n |\n |\n |\n |\n_|___"
	gallowsHead     = "  _______\n |       |\n |       O\n |\n |\n |\n |\n_|___"
	gallowsBody     = "  _______\n |       |\n |       O\n |       |\n |\n |\n |\n_|___"
	gallowsLeftArm  = "  _______\n |       |\n |       O\n |      /|\n |\n |\n |\n_|___"
	gallowsBothArms = "  _______\n |       |\n |       O\n |      /|\\\n |\n |\n |\n_|___"
	gallowsLeftLeg  = "  _______\n |       |\n |       O\n |      /|\\\n |      /\n |\n_|___"
	gallowsBothLegs = "  _______\n |       |\n |       O\n |      /|\\\n |      / \\\n |\n_|___"
	gallowsLeftFoot = "  _______\n |       |\n |       O\n |      /|\\\n |      / \\\n |     /\n_|___"
	gallowsBothFeet = "  _______\n |       |\n |       O\n |      /|\\\n |      / \\\n |     / \\\n_|___"
	deadAnnotation  = "\n\nYou are dead!"
)

var gallowsStages = map[Difficulty][]string{
	DifficultyEasy: {
		gallowsEmpty,
		gallowsHead,
		gallowsBody,
		gallowsLeftArm,
		gallowsBothArms,
		gallowsLeftLeg,
		gallowsBothLegs,
		gallowsLeftFoot,
		gallowsBothFeet,
		gallowsBothFeet + deadAnnotation,
	},
	DifficultyMedium: {
		gallowsEmpty,
		gallowsHead,
		gallowsBody,
		gallowsLeftArm,
		gallowsBothArms,
		gallowsLeftLeg,
		gallowsBothLegs + deadAnnotation,
	},
	DifficultyHard: {
		gallowsEmpty,
		gallowsHead,
		gallowsBody,
		gallowsBothLegs + deadAnnotation,
	},
}

// StageCount returns how many drawings the tier's table holds
func StageCount(d Difficulty) int {
	return len(stagesFor(d))
}

// RenderGallows returns the drawing for the given stage. The stage is clamped
// into the table, so any value is safe to pass.
func RenderGallows(stage int, d Difficulty) string {
	stages := stagesFor(d)
	if stage < 0 {
		stage = 0
	}
	if stage > len(stages)-1 {
		stage = len(stages) - 1
	}
	return stages[stage]
}

func stagesFor(d Difficulty) []string {
	if stages, ok := gallowsStages[d]; ok {
		return stages
	}
	return gallowsStages[DifficultyMedium]
}
