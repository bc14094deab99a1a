package predictor

// Parental education groupings used by the rule table.
var (
	basicEducation  = []string{"SD", "SMP"}
	higherEducation = []string{"SMA", "D3", "S1", "S2"}
	tertiaryOnly    = []string{"S1", "S2"}
)

// FallbackEstimate is the deterministic rule table used when no trained model
// is available or the model cannot encode the inputs. It assumes the input
// already passed Validate.
//
// Note: for age 6.0 the mixed-education branch intentionally produces the same
// outcome as the both-basic branch. That matches the original rule table; it
// may have been meant to get a distinct intermediate tier, but the table is
// preserved as-is rather than second-guessed.
func FallbackEstimate(in Input) (float64, string) {
	switch {
	case in.Age == 5.0 || in.Age == 5.5:
		// Youngest group: only tertiary-educated parents plus PAUD qualify.
		fatherTertiary := containsString(tertiaryOnly, in.FatherEducation)
		motherTertiary := containsString(tertiaryOnly, in.MotherEducation)
		if fatherTertiary && motherTertiary && in.PaudExperience == "Ya" {
			return 85.0, LevelSiap
		}
		return 65.0, LevelBelumSiap

	case in.Age == 6.0:
		fatherBasic := containsString(basicEducation, in.FatherEducation)
		motherBasic := containsString(basicEducation, in.MotherEducation)
		fatherHigher := containsString(higherEducation, in.FatherEducation)
		motherHigher := containsString(higherEducation, in.MotherEducation)

		if fatherHigher && motherHigher {
			return 85.0, LevelSiap
		}
		if fatherBasic && motherBasic {
			if in.PaudExperience == "Ya" {
				return 75.0, LevelCukupSiap
			}
			return 65.0, LevelBelumSiap
		}
		// Mixed levels follow the same PAUD-dependent branch as both-basic.
		if in.PaudExperience == "Ya" {
			return 75.0, LevelCukupSiap
		}
		return 65.0, LevelBelumSiap

	case in.Age == 6.5 || in.Age == 7.0:
		// Oldest group: any formal education qualifies, PAUD decides the tier.
		fatherFormal := containsString(basicEducation, in.FatherEducation) ||
			containsString(higherEducation, in.FatherEducation)
		motherFormal := containsString(basicEducation, in.MotherEducation) ||
			containsString(higherEducation, in.MotherEducation)

		if fatherFormal && motherFormal {
			if in.PaudExperience == "Ya" {
				return 85.0, LevelSiap
			}
			return 75.0, LevelCukupSiap
		}
		return 65.0, LevelBelumSiap
	}

	// Unreachable for validated input.
	return 65.0, LevelBelumSiap
}
