package dto

// AddCharacterRequest creates a character played by an actor in a show.
type AddCharacterRequest struct {
	CharacterName string `form:"characterName" binding:"required"`
	NetID         string `form:"netID" binding:"required"`
	ShowID        int64  `form:"showID" binding:"required"`
}

// EditCharacterRequest renames a character and/or recasts its actor. Lookup
// is by the old character name, which the department keeps unique enough in
// practice.
type EditCharacterRequest struct {
	NewCharacterName string `form:"NewCharacterName" binding:"required"`
	NetID            string `form:"netID" binding:"required"`
	OldCharacterName string `form:"OldcharacterName" binding:"required"`
}

// DeleteCharacterRequest identifies a character within a show for deletion.
type DeleteCharacterRequest struct {
	CharacterName string `form:"characterName" binding:"required"`
	ShowID        int64  `form:"showID" binding:"required"`
}
