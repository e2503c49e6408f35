package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/EzIsEzzy/Continue/src/core/middleware"
	"github.com/EzIsEzzy/Continue/src/modules/authentication"
	"github.com/EzIsEzzy/Continue/src/modules/comments"
	"github.com/EzIsEzzy/Continue/src/modules/feed"
	"github.com/EzIsEzzy/Continue/src/modules/friends"
	"github.com/EzIsEzzy/Continue/src/modules/jobs"
	"github.com/EzIsEzzy/Continue/src/modules/likes"
	"github.com/EzIsEzzy/Continue/src/modules/posts"
	"github.com/EzIsEzzy/Continue/src/modules/users"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)
}

func setupAPIV1Routes(router fiber.Router) {
	// Grouped API endpoints
	authGroup := router.Group("/auth")
	userGroup := router.Group("/users")
	postGroup := router.Group("/posts")
	commentGroup := router.Group("/comments")
	likeGroup := router.Group("/likes")
	friendGroup := router.Group("/friends")
	jobGroup := router.Group("/jobs")
	applicationGroup := router.Group("/applications")
	feedGroup := router.Group("/feed")

	// Authentication routes
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)

	// User routes
	userGroup.Get("/profile", middleware.Protected(), users.GetProfile)
	userGroup.Get("/search", middleware.Protected(), users.SearchUsers)

	// Post routes
	postGroup.Post("/", middleware.Protected(), posts.CreatePost)
	postGroup.Get("/", middleware.Protected(), posts.ListPosts)
	postGroup.Get("/:id", middleware.Protected(), posts.GetPost)
	postGroup.Put("/:id", middleware.Protected(), posts.UpdatePost)
	postGroup.Delete("/:id", middleware.Protected(), posts.DeletePost)
	postGroup.Post("/:post_id/comments", middleware.Protected(), comments.CreateComment)
	postGroup.Get("/:post_id/comments", middleware.Protected(), comments.ListComments)
	postGroup.Get("/:post_id/likes/count", middleware.Protected(), likes.GetLikesCount)

	// Comment routes
	commentGroup.Put("/:id", middleware.Protected(), comments.UpdateComment)
	commentGroup.Delete("/:id", middleware.Protected(), comments.DeleteComment)

	// Like routes
	likeGroup.Post("/", middleware.Protected(), likes.CreateLike)
	likeGroup.Delete("/", middleware.Protected(), likes.DeleteLike)

	// Friendship routes
	friendGroup.Get("/", middleware.Protected(), friends.ListFriends)
	friendGroup.Post("/", middleware.Protected(), friends.RequestFriend)
	friendGroup.Put("/:id/accept", middleware.Protected(), friends.AcceptFriend)
	friendGroup.Delete("/:id", middleware.Protected(), friends.RemoveFriend)

	// Job routes
	jobGroup.Post("/", middleware.Protected(), jobs.CreateJob)
	jobGroup.Get("/", middleware.Protected(), jobs.ListJobs)
	jobGroup.Get("/:id", middleware.Protected(), jobs.GetJob)
	jobGroup.Put("/:id", middleware.Protected(), jobs.UpdateJob)
	jobGroup.Delete("/:id", middleware.Protected(), jobs.DeleteJob)
	jobGroup.Post("/:id/apply", middleware.Protected(), jobs.ApplyToJob)
	jobGroup.Get("/:id/applications", middleware.Protected(), jobs.ListApplications)

	// Job application routes
	applicationGroup.Put("/:id", middleware.Protected(), jobs.UpdateApplication)
	applicationGroup.Delete("/:id", middleware.Protected(), jobs.WithdrawApplication)
	applicationGroup.Put("/:id/decision", middleware.Protected(), jobs.DecideApplication)
	applicationGroup.Get("/:id/cv", middleware.Protected(), jobs.DownloadCV)

	// Feed routes
	feedGroup.Get("/", middleware.Protected(), feed.FetchFeed)
}
