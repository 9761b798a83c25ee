package ner

// Label is an integer NER tag. The values are shared with the training
// pipeline that consumes the corpus and must not change.
type Label int

const (
	LabelO      Label = 0
	LabelBPer   Label = 1
	LabelIPer   Label = 2
	LabelBOrg   Label = 3
	LabelIOrg   Label = 4
	LabelBLoc   Label = 5
	LabelILoc   Label = 6
	LabelBSkill Label = 7
	LabelISkill Label = 8
)

// MaxLabel is the highest valid label value.
const MaxLabel = LabelISkill

// Category is the entity category a placeholder resolves to.
type Category string

const (
	CategoryPerson       Category = "PER"
	CategoryOrganization Category = "ORG"
	CategoryLocation     Category = "LOC"
	CategorySkill        Category = "SKILL"
	CategoryOther        Category = "O"
)

// Labels returns the (beginning, inside) label pair for the category.
// CategoryOther is untagged and returns (LabelO, LabelO).
func (c Category) Labels() (Label, Label) {
	switch c {
	case CategoryPerson:
		return LabelBPer, LabelIPer
	case CategoryOrganization:
		return LabelBOrg, LabelIOrg
	case CategoryLocation:
		return LabelBLoc, LabelILoc
	case CategorySkill:
		return LabelBSkill, LabelISkill
	default:
		return LabelO, LabelO
	}
}

// IsBeginning reports whether l opens an entity span.
func (l Label) IsBeginning() bool {
	return l != LabelO && l%2 == 1
}

// IsInside reports whether l continues an entity span.
func (l Label) IsInside() bool {
	return l != LabelO && l%2 == 0
}

// Category returns the entity category encoded by the label.
func (l Label) Category() Category {
	switch l {
	case LabelBPer, LabelIPer:
		return CategoryPerson
	case LabelBOrg, LabelIOrg:
		return CategoryOrganization
	case LabelBLoc, LabelILoc:
		return CategoryLocation
	case LabelBSkill, LabelISkill:
		return CategorySkill
	default:
		return CategoryOther
	}
}

// LabeledExample is one corpus entry. Tokens and NERTags always have the same length.
type LabeledExample struct {
	ID      string   `json:"id"`
	Tokens  []string `json:"tokens"`
	NERTags []Label  `json:"ner_tags"`
}
