package models

// Scene is one scene of a show.
type Scene struct {
	SceneID    int64  `json:"sceneID" db:"sceneID"`
	ShowID     int64  `json:"showID" db:"showID"`
	SceneName  string `json:"sceneName" db:"sceneName"`
	ActNumber  int    `json:"actNumber" db:"actNumber"`
	Location   string `json:"location" db:"location"`
	Song       string `json:"song" db:"song"`
	ScriptPage string `json:"scriptPage" db:"scriptPage"`
	CrewNotes  string `json:"crewNotes" db:"crewNotes"`
}

// SceneDetail records a character's costume logistics within a scene.
type SceneDetail struct {
	SceneID            int64  `json:"sceneID" db:"sceneID"`
	CharacterName      string `json:"characterName" db:"characterName"`
	ShowID             int64  `json:"showID" db:"showID"`
	CostumeChange      bool   `json:"costumeChange" db:"costumeChange"`
	CostumeDescription string `json:"costumeDescription" db:"costumeDescription"`
	Location           string `json:"location" db:"location"`
	ChangeLocation     string `json:"changeLocation" db:"changeLocation"`
	ChangeDuration     string `json:"changeDuration" db:"changeDuration"`
	Notes              string `json:"notes" db:"notes"`
}
