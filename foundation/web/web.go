// Package web is the small web framework the service is built on. It wraps
// gin with handlers that return errors, so every controller ends with a
// single Respond/RespondError call.
package web

import (
	"github.com/gin-gonic/gin"
)

// Handler is the signature all application handlers implement.
type Handler func(c *Context) error

// Middleware runs code before or after a Handler.
type Middleware func(Handler) Handler

// App is the entry point for the web application. It embeds the gin engine
// so raw gin routes can still be registered where needed.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	return &App{Engine: engine}
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	h := handler
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{Context: c, Ctx: c.Request.Context()}
		if err := h(ctx); err != nil {
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}
