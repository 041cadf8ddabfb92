package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/controllers"
	"github.com/cabanes/backstage/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; everything
// that writes to the database sits behind staff JWT auth.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	actorController *controllers.ActorController,
	crewController *controllers.CrewController,
	showController *controllers.ShowController,
	characterController *controllers.CharacterController,
	sceneController *controllers.SceneController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	v1.GET("/student/getAll", studentController.GetAll)
	v1.GET("/student/filterBy", studentController.FilterBy)
	v1.GET("/student/getShows", studentController.GetShows)

	v1.GET("/actors/getAll", actorController.GetAll)
	v1.GET("/actors/filterBy", actorController.FilterBy)
	v1.GET("/actors/get", actorController.Get)

	v1.GET("/crew/getAll", crewController.GetAll)
	v1.GET("/crew/filterBy", crewController.FilterBy)

	v1.GET("/shows/getAll", showController.GetAll)
	v1.GET("/shows/getShowIDName", showController.GetShowIDName)
	v1.GET("/shows/getCrew", showController.GetCrew)

	v1.GET("/characters/getAll", characterController.GetAll)
	v1.GET("/characters/filterBy", characterController.FilterBy)

	v1.GET("/scenes/getAll", sceneController.GetAll)
	v1.GET("/scenes/filterBy", sceneController.FilterBy)
	v1.GET("/scenes/forShow", sceneController.ForShow)

	v1.GET("/sceneDetails/forScene", sceneController.DetailsForScene)

	// --- Staff-only mutation routes ---
	staff := v1.Group("")
	staff.Use(authMiddleware.JWTAuth())
	{
		staff.POST("/student/add", studentController.Add)
		staff.POST("/student/:netID/edit", studentController.Edit)
		staff.POST("/student/delete", studentController.Delete)

		staff.POST("/actors/add", actorController.Add)
		staff.POST("/actors/edit", actorController.Edit)
		staff.POST("/actors/delete", actorController.Delete)

		staff.POST("/crew/add", crewController.Add)
		staff.POST("/crew/edit", crewController.Edit)
		staff.POST("/crew/delete", crewController.Delete)

		staff.POST("/shows/add", showController.Add)
		staff.POST("/shows/edit", showController.Edit)
		staff.POST("/shows/delete", showController.Delete)
		staff.POST("/shows/addCrew", showController.AddCrew)
		staff.POST("/shows/removeCrew", showController.RemoveCrew)

		staff.POST("/characters/add", characterController.Add)
		staff.POST("/characters/edit", characterController.Edit)
		staff.POST("/characters/delete", characterController.Delete)

		staff.POST("/scenes/add", sceneController.Add)
		staff.POST("/scenes/edit", sceneController.Edit)
		staff.POST("/scenes/delete", sceneController.Delete)

		staff.POST("/sceneDetails/add", sceneController.AddDetail)
		staff.POST("/sceneDetails/edit", sceneController.EditDetail)
		staff.POST("/sceneDetails/delete", sceneController.DeleteDetail)
	}

	// Health check endpoint (public)
	v1.GET("/health", healthController.Check)
}
