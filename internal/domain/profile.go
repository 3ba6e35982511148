package domain

// ProfileCode is the opaque classification token produced by the profile
// classifier, e.g. "W8" or "B3". It combines occupation class, life stage
// and income tier. The zero value means classification found no match,
// which is a valid terminal outcome callers must branch on.
type ProfileCode string

// ProfileNone is the no-match sentinel.
const ProfileNone ProfileCode = ""

// Matched reports whether classification produced a profile.
func (p ProfileCode) Matched() bool { return p != ProfileNone }

// LifeStage is the coarse life-cycle bucket derived from age. Stage age
// ranges overlap at the boundaries; assignment is first-match in the
// declared order.
type LifeStage string

const (
	StageUnclassified LifeStage = "Unclassified"
	StageYoungAdult   LifeStage = "Young Adult"
	StageYoungFamily  LifeStage = "Young Family"
	StageMidCareer    LifeStage = "Mid-Career Family"
	StagePreRetire    LifeStage = "Pre-Retirement"
	StageRetirement   LifeStage = "Retirement"
)

// IncomeLevel is the income tier within an occupation class.
type IncomeLevel string

const (
	IncomeLow        IncomeLevel = "Low"
	IncomeSufficient IncomeLevel = "Sufficient"
	IncomeGood       IncomeLevel = "Good"
)
