package gamify

// LevelSize is the flat XP width of every level.
const LevelSize = 500

// TaskCompletionXP is the flat award for completing a task with an assigned
// skill. It is priority-independent so the uncomplete reversal always nets
// the ledger back to zero.
const TaskCompletionXP = 25

// Skill categories. Tasks reference these by id; an unknown id renders as
// "uncategorized" and earns no skill XP.
const (
	SkillMental     = "mental"
	SkillPhysical   = "physical"
	SkillSocial     = "social"
	SkillCreative   = "creative"
	SkillDiscipline = "discipline"
)

// Skills lists every skill category in display order.
func Skills() []string {
	return []string{SkillMental, SkillPhysical, SkillSocial, SkillCreative, SkillDiscipline}
}

func IsSkill(id string) bool {
	for _, s := range Skills() {
		if s == id {
			return true
		}
	}
	return false
}

// LevelForXP maps accumulated XP to a level: floor(xp/LevelSize)+1. Level is
// always derived, never stored.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/LevelSize + 1
}

// LevelProgress is the fraction of the current level already earned, in
// [0, 1).
func LevelProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%LevelSize) / float64(LevelSize)
}

// XPToNextLevel returns how much XP is missing until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return LevelSize - xp%LevelSize
}
