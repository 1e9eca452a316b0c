package inquiry

import (
	"net/http"
	"reflect"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/inquiry"
)

type Controller struct {
	inquiry Inquiry
}

func NewController(inquiry Inquiry) *Controller {
	return &Controller{inquiry}
}

func (uc Controller) CreateInquiry(c *web.Context) error {
	var request inquiry.CreateRequest

	if err := c.BindFunc(&request, "Subject", "Message"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.inquiry.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) GetMyInquiries(c *web.Context) error {
	list, err := uc.inquiry.MyList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetInquiryList(c *web.Context) error {
	var filter inquiry.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.inquiry.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

// AnswerInquiry stores the admin reply; the status flip happens server-side.
func (uc Controller) AnswerInquiry(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request inquiry.AnswerRequest

	if err := c.BindFunc(&request, "Answer"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.inquiry.Answer(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteInquiry(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.inquiry.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
