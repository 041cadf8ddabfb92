package models

// Actor extends a Student with acting experience and the costume-shop
// measurement sheet. A row may only exist for an existing student.
type Actor struct {
	NetID                 string `json:"netID" db:"netID"`
	YearsActingExperience *int   `json:"yearsActingExperience" db:"yearsActingExperience"`
	SkinTone              string `json:"skinTone" db:"skinTone"`
	Piercings             string `json:"piercings" db:"piercings"`
	HairColor             string `json:"hairColor" db:"hairColor"`
	PreviousInjuries      string `json:"previousInjuries" db:"previousInjuries"`
	SpecialNotes          string `json:"specialNotes" db:"specialNotes"`
	Height                string `json:"height" db:"height"`
	RingSize              string `json:"ringSize" db:"ringSize"`
	ShoeSize              string `json:"shoeSize" db:"shoeSize"`
	HeadCirc              string `json:"headCirc" db:"headCirc"`
	NeckBase              string `json:"neckBase" db:"neckBase"`
	Chest                 string `json:"chest" db:"chest"`
	Waist                 string `json:"waist" db:"waist"`
	HighHip               string `json:"highHip" db:"highHip"`
	LowHip                string `json:"lowHip" db:"lowHip"`
	ArmseyeToArmseyeFront string `json:"armseyeToArmseyeFront" db:"armseyeToArmseyeFront"`
	NeckToWaistFront      string `json:"neckToWaistFront" db:"neckToWaistFront"`
	ArmseyeToArmseyeBack  string `json:"armseyeToArmseyeBack" db:"armseyeToArmseyeBack"`
	NeckToWaistBack       string `json:"neckToWaistBack" db:"neckToWaistBack"`
	CenterBackToWrist     string `json:"centerBackToWrist" db:"centerBackToWrist"`
	OutsleeveToWrist      string `json:"outsleeveToWrist" db:"outsleeveToWrist"`
	OutseamBelowKnee      string `json:"outseamBelowKnee" db:"outseamBelowKnee"`
	OutseamToAnkle        string `json:"outseamToAnkle" db:"outseamToAnkle"`
	OutseamToFloor        string `json:"outseamToFloor" db:"outseamToFloor"`
	OtherNotes            string `json:"otherNotes" db:"otherNotes"`
}
