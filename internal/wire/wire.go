package wire

import (
	"Lumen/internal/api"
	"Lumen/internal/api/config"
	"Lumen/internal/api/handler"
	"Lumen/internal/job"
	"Lumen/internal/pkg/cron"
	"Lumen/internal/pkg/kafka"
	"Lumen/internal/repository"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	socialRepo := repository.NewSocialGraphRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	interestRepo := repository.NewUserInterestRepo(db)
	hashtagRepo := repository.NewHashtagRepo(db)

	feedService := service.NewFeedService(
		userRepo, postRepo, socialRepo, engagementRepo, interestRepo, hashtagRepo,
		cfg.Feed, cfg.Ranking,
	)
	interestService := service.NewInterestService(engagementRepo, interestRepo, cfg.Feed)
	hashtagService := service.NewHashtagService(postRepo, socialRepo, hashtagRepo, cfg.Feed)
	suggestionService := service.NewSuggestionService(userRepo, socialRepo, interestRepo, hashtagRepo, cfg.Feed)

	handlers := &api.HandlersGroup{
		FeedHandler:       handler.NewFeedHandler(feedService),
		HashtagHandler:    handler.NewHashtagHandler(hashtagService),
		SuggestionHandler: handler.NewSuggestionHandler(suggestionService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	postCounterJob := job.NewPostCounterJob(postRepo, engagementRepo)
	userInterestJob := job.NewUserInterestJob(interestService)
	cronMgr := cron.NewCronManager(postCounterJob, userInterestJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
