package generator

// ClassCount is one entry of an augmentation plan: how many feats to draw
// from one augmentation class.
type ClassCount struct {
	Class string
	Count int
}

// AugmentationPlan maps a d6 roll to the classes and counts of augmentations
// the character receives. Rolls 5 and 6 share a plan. Class "А" is the
// Cyrillic letter, matching the catalog's category labels.
func AugmentationPlan(roll int) []ClassCount {
	switch roll {
	case 1:
		return []ClassCount{{Class: "А", Count: 1}}
	case 2:
		return []ClassCount{{Class: "B", Count: 1}, {Class: "D", Count: 1}}
	case 3:
		return []ClassCount{{Class: "C", Count: 2}}
	case 4:
		return []ClassCount{{Class: "C", Count: 1}, {Class: "D", Count: 2}}
	default:
		return []ClassCount{{Class: "D", Count: 4}}
	}
}
