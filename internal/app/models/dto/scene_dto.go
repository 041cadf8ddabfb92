package dto

// AddSceneRequest creates a scene of a show.
type AddSceneRequest struct {
	ShowID     int64  `form:"showID" binding:"required"`
	SceneName  string `form:"sceneName" binding:"required"`
	ActNumber  int    `form:"actNumber"`
	Location   string `form:"location"`
	Song       string `form:"song"`
	ScriptPage string `form:"scriptPage"`
	CrewNotes  string `form:"crewNotes"`
}

// EditSceneRequest updates a scene identified by its numeric ID.
type EditSceneRequest struct {
	SceneID    int64  `form:"sceneID" binding:"required"`
	SceneName  string `form:"sceneName" binding:"required"`
	ActNumber  int    `form:"actNumber"`
	Location   string `form:"location"`
	Song       string `form:"song"`
	ScriptPage string `form:"scriptPage"`
	CrewNotes  string `form:"crewNotes"`
}

// DeleteSceneRequest identifies a scene for deletion.
type DeleteSceneRequest struct {
	SceneID int64 `form:"sceneID" binding:"required"`
}

// SceneDetailFields is the shared set of scene detail form fields.
type SceneDetailFields struct {
	CostumeChange      int    `form:"costumeChange"`
	CostumeDescription string `form:"costumeDescription"`
	Location           string `form:"location"`
	ChangeLocation     string `form:"changeLocation"`
	ChangeDuration     string `form:"changeDuration"`
	Notes              string `form:"notes"`
}

// AddSceneDetailRequest records a character's costume logistics in a scene.
type AddSceneDetailRequest struct {
	SceneID       int64  `form:"sceneID" binding:"required"`
	CharacterName string `form:"characterName" binding:"required"`
	ShowID        int64  `form:"showID" binding:"required"`
	SceneDetailFields
}

// EditSceneDetailRequest updates a scene detail row.
type EditSceneDetailRequest struct {
	SceneID       int64  `form:"sceneID" binding:"required"`
	CharacterName string `form:"characterName" binding:"required"`
	ShowID        int64  `form:"showID" binding:"required"`
	SceneDetailFields
}

// DeleteSceneDetailRequest identifies a scene detail row for deletion.
type DeleteSceneDetailRequest struct {
	SceneID       int64  `form:"sceneID" binding:"required"`
	CharacterName string `form:"characterName" binding:"required"`
	ShowID        int64  `form:"showID" binding:"required"`
}
