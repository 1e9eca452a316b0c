package notification

import (
	"net/http"
	"reflect"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
)

type Controller struct {
	notification Notification
}

func NewController(notification Notification) *Controller {
	return &Controller{notification}
}

func (uc Controller) GetMyNotifications(c *web.Context) error {
	list, err := uc.notification.MyList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) MarkNotificationRead(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.notification.MarkRead(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
