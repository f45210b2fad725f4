package main

import (
	handler "assignment-hub/biz/adaptor/controller"
	"assignment-hub/biz/adaptor/controller/assign"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", assign.SignUp)
			auth.POST("/login", assign.SignIn)
			auth.GET("/me", assign.GetUserInfo)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("", assign.CreateAssignment)
			assignments.GET("", assign.ListAssignments)
			assignments.GET("/:id", assign.GetAssignment)
			assignments.PUT("/:id", assign.UpdateAssignment)
			assignments.DELETE("/:id", assign.DeleteAssignment)
			assignments.POST("/:id/publish", assign.PublishAssignment)
			assignments.POST("/:id/complete", assign.CompleteAssignment)
			assignments.GET("/:id/submissions", assign.ListAssignmentSubmissions)
		}

		submissions := api.Group("/submissions")
		{
			submissions.POST("", assign.SubmitAnswer)
			submissions.GET("/my", assign.ListMySubmissions)
			submissions.GET("/:id", assign.GetSubmission)
			submissions.POST("/:id/review", assign.ReviewSubmission)
		}

		api.GET("/templates", assign.ListTemplates)
	}
}
