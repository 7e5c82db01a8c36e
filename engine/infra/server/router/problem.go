package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Problem captures the information returned in an RFC 7807 error response.
type Problem struct {
	Type   string
	Title  string
	Status int
	Detail string
}

// NormalizeProblem ensures the provided problem includes canonical defaults.
func NormalizeProblem(problem *Problem) *Problem {
	if problem == nil {
		problem = &Problem{}
	}
	if problem.Status == 0 {
		problem.Status = http.StatusInternalServerError
	}
	if problem.Title == "" {
		problem.Title = http.StatusText(problem.Status)
	}
	if problem.Type == "" {
		problem.Type = "about:blank"
	}
	return problem
}

// RespondProblem writes the problem as the response body and aborts the
// handler chain.
func RespondProblem(c *gin.Context, problem *Problem) {
	problem = NormalizeProblem(problem)
	body := gin.H{
		"status": problem.Status,
		"error":  problem.Title,
		"type":   problem.Type,
	}
	if problem.Detail != "" {
		body["details"] = problem.Detail
	}
	c.AbortWithStatusJSON(problem.Status, body)
}
