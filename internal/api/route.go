package api

import (
	"Lumen/internal/api/middleware"
	"Lumen/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		feedGroup := apiGroup.Group("/feed")
		feedGroup.Use(middleware.AuthMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
			feedGroup.GET("/explore", group.FeedHandler.GetExplore)
		}

		hashtagGroup := apiGroup.Group("/hashtags")
		{
			hashtagGroup.GET("/trending", group.HashtagHandler.GetTrending)

			authOptGroup := hashtagGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:name/posts", group.HashtagHandler.GetPostsByHashtag)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/suggested", group.SuggestionHandler.GetSuggestedUsers)
		}
	}

	return r
}
