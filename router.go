package main

import (
	handler "classroom-sync/biz/adaptor/controller"
	"classroom-sync/biz/adaptor/controller/classroom"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	apiV1 := r.Group("/api/v1")
	{
		cls := apiV1.Group("/classroom")
		{
			cls.POST("/create", classroom.CreateClassroom)
			cls.POST("/update", classroom.UpdateClassroom)
			cls.GET("/detail", classroom.GetClassroom)

			resource := cls.Group("/resource")
			resource.POST("/attach", classroom.AttachResource)
		}

		sts := apiV1.Group("/sts")
		{
			sts.POST("/apply_signed_url", classroom.ApplySignedUrl)
		}
	}
}
