package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	BulkUploadEvents(c *ginext.Context)
	BookEvent(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetChat(c *ginext.Context)
	PostMessage(c *ginext.Context)
	ListMessages(c *ginext.Context)
	EditMessage(c *ginext.Context)
	DeleteMessage(c *ginext.Context)
	ListMembers(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, identity ginext.HandlerFunc, ws ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Everything below acts on behalf of a user.
		private := api.Group("", identity)
		{
			private.POST("/events", h.CreateEvent)
			private.PUT("/events/:id", h.UpdateEvent)
			private.DELETE("/events/:id", h.DeleteEvent)
			private.POST("/events/bulk", h.BulkUploadEvents)

			// Bookings
			private.POST("/events/:id/book", h.BookEvent)
			private.DELETE("/bookings/:id", h.CancelBooking)
			private.GET("/bookings", h.ListMyBookings)

			// Chat
			private.GET("/events/:id/chat", h.GetChat)
			private.GET("/events/:id/chat/messages", h.ListMessages)
			private.POST("/events/:id/chat/messages", h.PostMessage)
			private.GET("/events/:id/chat/members", h.ListMembers)
			private.PUT("/messages/:id", h.EditMessage)
			private.DELETE("/messages/:id", h.DeleteMessage)
		}
	}

	router.GET("/ws", ws)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
