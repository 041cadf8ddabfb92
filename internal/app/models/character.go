package models

// Character is a role in a show played by one actor. Character names are not
// globally unique; a character is identified by its name within a show.
type Character struct {
	CharacterName string `json:"characterName" db:"characterName"`
	NetID         string `json:"netID" db:"netID"`
	ShowID        int64  `json:"showID" db:"showID"`
}
