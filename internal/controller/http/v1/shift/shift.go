package shift

import (
	"net/http"
	"reflect"
	"time"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/shift"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service/shifttime"
)

type Controller struct {
	shift Shift
}

func NewController(shift Shift) *Controller {
	return &Controller{shift}
}

func (sc Controller) GetShiftList(c *web.Context) error {
	var filter shift.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if employeeID, ok := c.GetQueryFunc(reflect.Int, "employee").(*int); ok {
		filter.EmployeeID = employeeID
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := sc.shift.GetList(c.Ctx, filter)
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

func (sc Controller) GetShiftDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.shift.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) GetMyShifts(c *web.Context) error {
	list, err := sc.shift.MyShifts(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

// GetMyDashboard buckets the caller's shifts into past/today/upcoming and a
// current-week view, the grouping the employee dashboard renders.
func (sc Controller) GetMyDashboard(c *web.Context) error {
	list, err := sc.shift.MyShifts(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	board, err := buildDashboard(list, time.Now())
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"past":         board.Past,
			"today":        board.Today,
			"upcoming":     board.Upcoming,
			"current_week": board.CurrentWeek,
		},
		"status": true,
	}, http.StatusOK)
}

type dashboard struct {
	Past        []shift.GetListResponse
	Today       []shift.GetListResponse
	Upcoming    []shift.GetListResponse
	CurrentWeek []shift.GetListResponse
}

// buildDashboard groups the rows by their calendar key for the classifier,
// then maps the classified keys back to the rows. Several rows can share one
// key, so each key holds a slice and resolving consumes it in order.
func buildDashboard(list []shift.GetListResponse, now time.Time) (dashboard, error) {
	byKey := make(map[shifttime.Shift][]shift.GetListResponse, len(list))
	shifts := make([]shifttime.Shift, 0, len(list))
	for _, item := range list {
		if item.Date == nil || item.StartTime == nil || item.EndTime == nil {
			continue
		}
		s := shifttime.Shift{
			Date:      item.Date.String(),
			StartTime: *item.StartTime,
			EndTime:   *item.EndTime,
		}
		byKey[s] = append(byKey[s], item)
		shifts = append(shifts, s)
	}

	buckets, err := shifttime.ClassifyByWindow(shifts, now.Format(shifttime.DateLayout))
	if err != nil {
		return dashboard{}, err
	}

	week, err := shifttime.CurrentWeekBucket(shifts, now)
	if err != nil {
		return dashboard{}, err
	}

	resolve := func(keys []shifttime.Shift) []shift.GetListResponse {
		taken := make(map[shifttime.Shift]int, len(keys))
		out := make([]shift.GetListResponse, 0, len(keys))
		for _, k := range keys {
			rows := byKey[k]
			if i := taken[k]; i < len(rows) {
				out = append(out, rows[i])
				taken[k] = i + 1
			}
		}
		return out
	}

	return dashboard{
		Past:        resolve(buckets.Past),
		Today:       resolve(buckets.Today),
		Upcoming:    resolve(buckets.Upcoming),
		CurrentWeek: resolve(week.CurrentWeek),
	}, nil
}

func (sc Controller) GetAvailableForSwap(c *web.Context) error {
	list, err := sc.shift.AvailableForSwap(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) CreateShift(c *web.Context) error {
	var request shift.CreateRequest

	if err := c.BindFunc(&request, "Date", "StartTime", "EndTime", "EmployeeID"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.shift.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (sc Controller) CreateShiftWithUser(c *web.Context) error {
	var request shift.CreateWithUserRequest

	if err := c.BindFunc(&request, "Email", "Date", "StartTime", "EndTime"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.shift.CreateWithUser(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (sc Controller) UpdateShiftColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request shift.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := sc.shift.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) UpdateMyShiftStatus(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request shift.UpdateStatusRequest

	if err := c.BindFunc(&request, "Status"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	response, err := sc.shift.UpdateMyStatus(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) DeleteShift(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := sc.shift.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
