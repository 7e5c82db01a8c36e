package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeserve/pipeserve/engine/infra/server/router"
	"github.com/pipeserve/pipeserve/engine/pipeline"
	"github.com/pipeserve/pipeserve/pkg/logger"
)

func registerRoutes(r *gin.Engine, registry *pipeline.Registry) {
	r.GET("/status", getStatus(registry))
	r.GET("/status/:name", getPipelineStatus(registry))
	r.POST("/deploy", postDeploy(registry))
	r.POST("/undeploy/:name", postUndeploy(registry))
	r.POST("/run/:name", postRun(registry))
}

// getStatus handles GET /status.
func getStatus(registry *pipeline.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "Up!",
			"pipelines": registry.Names(),
		})
	}
}

// getPipelineStatus handles GET /status/:name.
func getPipelineStatus(registry *pipeline.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if _, ok := registry.Get(name); !ok {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusNotFound,
				Detail: "pipeline not found: " + name,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pipeline": name})
	}
}

// postDeploy handles POST /deploy. The body is a pipeline definition record;
// deployment introspects it and builds both schema types.
func postDeploy(registry *pipeline.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var def pipeline.Definition
		if err := c.ShouldBindJSON(&def); err != nil {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusBadRequest,
				Detail: "invalid pipeline definition: " + err.Error(),
			})
			return
		}
		deployed, err := registry.Deploy(c.Request.Context(), &def)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, pipeline.ErrAlreadyDeployed) {
				status = http.StatusConflict
			}
			router.RespondProblem(c, &router.Problem{Status: status, Detail: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": deployed.Definition.Name})
	}
}

// postUndeploy handles POST /undeploy/:name.
func postUndeploy(registry *pipeline.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if err := registry.Undeploy(name); err != nil {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusNotFound,
				Detail: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": name})
	}
}

// postRun handles POST /run/:name. The body is validated against the
// pipeline's request schema; component outputs are normalized to plain
// mappings and validated against the response schema before responding.
func postRun(registry *pipeline.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		name := c.Param("name")
		deployed, ok := registry.Get(name)
		if !ok {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusNotFound,
				Detail: "pipeline not found: " + name,
			})
			return
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusBadRequest,
				Detail: "invalid request body: " + err.Error(),
			})
			return
		}
		if err := deployed.ValidateRequest(ctx, body); err != nil {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusBadRequest,
				Detail: err.Error(),
			})
			return
		}

		if deployed.Runner == nil {
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusServiceUnavailable,
				Detail: "no execution engine configured for pipeline: " + name,
			})
			return
		}
		result, err := deployed.Runner.Run(ctx, body)
		if err != nil {
			log.Error("Pipeline run failed", "name", name, "error", err)
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusInternalServerError,
				Detail: "pipeline run failed: " + err.Error(),
			})
			return
		}

		normalized := make(map[string]any, len(result))
		for componentName, componentOutput := range result {
			if outputs, ok := componentOutput.(map[string]any); ok {
				normalized[componentName] = pipeline.ConvertComponentOutput(outputs)
				continue
			}
			normalized[componentName] = componentOutput
		}
		if err := deployed.ValidateResponse(ctx, normalized); err != nil {
			log.Error("Pipeline produced an invalid response", "name", name, "error", err)
			router.RespondProblem(c, &router.Problem{
				Status: http.StatusInternalServerError,
				Detail: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, normalized)
	}
}
