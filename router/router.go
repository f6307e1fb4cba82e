package router

import (
	"FileNest/internal/handler"
	"FileNest/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger())
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", handler.Login)
			auth.POST("/logout", handler.Logout)
			auth.GET("/me", handler.Me)
			auth.POST("/change-password", handler.SessionMiddleware(), handler.ChangePassword)
		}

		// public, token-gated inside the handler
		api.GET("/files/:id/view", handler.FileView)
		api.GET("/notes/:id/view", handler.ViewNote)

		files := api.Group("/files")
		files.Use(handler.SessionMiddleware())
		{
			files.GET("", handler.ListFiles)
			files.POST("/upload", handler.UploadFile)
			files.GET("/:id/content", handler.FileContent)
			files.DELETE("/:id", handler.DeleteFile)
			files.POST("/:id/share", handler.ShareFile)
		}

		notes := api.Group("/notes")
		notes.Use(handler.SessionMiddleware())
		{
			notes.POST("", handler.CreateNote)
			notes.GET("", handler.ListNotes)
			notes.GET("/:id", handler.GetNote)
			notes.PUT("/:id", handler.UpdateNote)
			notes.DELETE("/:id", handler.DeleteNote)
			notes.POST("/:id/share", handler.ShareNote)
		}

		admin := api.Group("/admin")
		admin.Use(handler.SessionMiddleware(), handler.AdminMiddleware())
		{
			admin.GET("/users", handler.AdminListUsers)
			admin.PUT("/users/:id/ban", handler.AdminBanUser)
			admin.DELETE("/users/:id", handler.AdminDeleteUser)
			admin.GET("/users/:id/files", handler.AdminUserFiles)
			admin.GET("/users/:id/notes", handler.AdminUserNotes)
			admin.GET("/files/:id/content", handler.AdminFileContent)
			admin.GET("/files/:id/view", handler.AdminFileView)
			admin.DELETE("/files/:id", handler.AdminDeleteFile)
		}
	}
	return r
}
