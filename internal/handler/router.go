package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atendemei/painel/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Posts         *PostHandler
	Reset         *ResetHandler
	Contact       *ContactHandler
	Uploads       *UploadHandler
	Authenticator middleware.Authenticator
}

func RegisterRoutes(root *gin.RouterGroup, deps RouterDeps) {
	root.GET("/uploads/:key", deps.Uploads.Get)

	api := root.Group("/api")
	api.POST("/login", deps.Auth.Login)
	api.POST("/logout", deps.Auth.Logout)
	api.GET("/check-auth", deps.Auth.CheckAuth)

	api.GET("/posts", deps.Posts.List)
	api.GET("/posts/:id", deps.Posts.Get)

	authGroup := api.Group("")
	authGroup.Use(middleware.SessionAuth(deps.Authenticator))
	authGroup.POST("/posts", deps.Posts.Create)
	authGroup.PUT("/posts/:id", deps.Posts.Update)
	authGroup.DELETE("/posts/:id", deps.Posts.Delete)

	// verification stays unthrottled on purpose: a pending code expires on
	// its own and the admin frontend retries on typos
	api.POST("/forgot-password", deps.Reset.ForgotPassword)
	api.POST("/verify-code", deps.Reset.VerifyCode)
	api.POST("/reset-password-with-code", deps.Reset.ResetPassword)

	api.POST("/contact", middleware.RateLimit(10*time.Second), deps.Contact.Submit)
}
