package dto

// ActorFields is the shared set of optional actor profile form fields.
type ActorFields struct {
	YearsActingExperience *int   `form:"yearsActingExperience"`
	SkinTone              string `form:"skinTone"`
	Piercings             string `form:"piercings"`
	HairColor             string `form:"hairColor"`
	PreviousInjuries      string `form:"previousInjuries"`
	SpecialNotes          string `form:"specialNotes"`
	Height                string `form:"height"`
	RingSize              string `form:"ringSize"`
	ShoeSize              string `form:"shoeSize"`
	HeadCirc              string `form:"headCirc"`
	NeckBase              string `form:"neckBase"`
	Chest                 string `form:"chest"`
	Waist                 string `form:"waist"`
	HighHip               string `form:"highHip"`
	LowHip                string `form:"lowHip"`
	ArmseyeToArmseyeFront string `form:"armseyeToArmseyeFront"`
	NeckToWaistFront      string `form:"neckToWaistFront"`
	ArmseyeToArmseyeBack  string `form:"armseyeToArmseyeBack"`
	NeckToWaistBack       string `form:"neckToWaistBack"`
	CenterBackToWrist     string `form:"centerBackToWrist"`
	OutsleeveToWrist      string `form:"outsleeveToWrist"`
	OutseamBelowKnee      string `form:"outseamBelowKnee"`
	OutseamToAnkle        string `form:"outseamToAnkle"`
	OutseamToFloor        string `form:"outseamToFloor"`
	OtherNotes            string `form:"otherNotes"`
}

// AddActorRequest creates an actor profile for an existing student.
type AddActorRequest struct {
	NetID string `form:"netID" binding:"required"`
	ActorFields
}

// EditActorRequest updates an actor profile. The netID itself is immutable;
// it is both the lookup key and the foreign key to student.
type EditActorRequest struct {
	NetID string `form:"netID" binding:"required"`
	ActorFields
}
