package echoapi

import (
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core/quiz"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

type topicApi struct {
	svc      topic.Service
	quizSvc  quiz.Service
	validate *validator.Validate
}

func registerTopicAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc topic.Service, quizSvc quiz.Service, validate *validator.Validate) {
	api := topicApi{
		svc:      svc,
		quizSvc:  quizSvc,
		validate: validate,
	}

	tg := g.Group("/topics")

	// public read
	tg.GET("", api.query)
	tg.GET("/:slug", api.retrieve)
	tg.POST("/:slug/quiz", api.generateQuiz)

	// owner-gated write
	tg.POST("", api.create, jwt)
	tg.PUT("/:slug", api.update, jwt)
	tg.DELETE("/:slug", api.destroy, jwt)
}

// Handlers

func (api *topicApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data topic.NewTopic
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTopic")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating topic")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *topicApi) query(ctx echo.Context) error {
	filter := topic.SearchFilter{
		Search: ctx.QueryParam("search"),
		Level:  ctx.QueryParam("level"),
		UserID: ctx.QueryParam("user_id"),
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	topics, err := api.svc.Search(ctx.Request().Context(), filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "searching topics")
	}
	if topics == nil {
		topics = []topic.Topic{}
	}
	return ctx.JSON(http.StatusOK, topics)
}

func (api *topicApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return errors.Wrap(err, "getting topic by slug")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *topicApi) update(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data topic.UpdateTopic
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTopic")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Update(ctx.Request().Context(), ctx.Param("slug"), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "updating topic")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *topicApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	t, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("slug"), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "deleting topic")
	}
	return ctx.JSON(http.StatusOK, DeleteTopicResponse{Msg: "Topic deleted successfully.", Slug: t.Slug})
}

func (api *topicApi) generateQuiz(ctx echo.Context) error {
	t, err := api.svc.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return errors.Wrap(err, "getting topic by slug")
	}

	var data quiz.NewQuiz
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuiz")
	}
	if data.Level == "" {
		data.Level = t.Level
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	questions := api.quizSvc.Generate(ctx.Request().Context(), t.Title, data.Level, data.NumQuestions)
	return ctx.JSON(http.StatusOK, QuizResponse{Questions: questions})
}

type (
	DeleteTopicResponse struct {
		Msg  string `json:"msg"`
		Slug string `json:"slug"`
	}

	QuizResponse struct {
		Questions []quiz.Question `json:"questions"`
	}
)
