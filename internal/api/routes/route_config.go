package routes

import (
	"recipehub/internal/api/handlers"
	"recipehub/internal/middleware"
	"recipehub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	EngagementHandler handlers.EngagementHandler
	DashboardHandler  handlers.DashboardHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/verify-reset", c.UserHandler.VerifyResetCode)
		user.Post("/reset", c.UserHandler.ResetPassword)

		user.Post("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.FollowUser)
		user.Delete("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.UnfollowUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Public reads; the viewer is resolved when a token is present so the
	// response can carry is_liked/is_favorited.
	recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Post("/generate", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GenerateRecipeDraft)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
	recipes.Post("/:id/video", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeVideo)

	recipes.Post("/:id/like", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.LikeRecipe)
	recipes.Delete("/:id/like", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.UnlikeRecipe)
	recipes.Post("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.FavoriteRecipe)
	recipes.Delete("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.UnfavoriteRecipe)
	recipes.Post("/:id/comments", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.AddComment)
	recipes.Get("/:id/comments", c.EngagementHandler.GetComments)
}

func (c *Config) Dashboard() {
	c.App.Get("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService), c.DashboardHandler.GetDashboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
