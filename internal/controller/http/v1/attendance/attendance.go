package attendance

import (
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/config"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/attendance"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service"
)

type Controller struct {
	attendance Attendance
	geofence   Geofence
}

// Geofence is the circle around the workplace inside which clocking is
// accepted. Radius is in meters.
type Geofence struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

func NewController(attendance Attendance, cfg *config.Config) *Controller {
	return &Controller{
		attendance: attendance,
		geofence: Geofence{
			Latitude:  cfg.OfficeLatitude,
			Longitude: cfg.OfficeLongitude,
			Radius:    cfg.OfficeRadius,
		},
	}
}

func (uc Controller) ClockIn(c *web.Context) error {
	var request attendance.ClockInRequest
	if err := c.BindFunc(&request, "ShiftID"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.checkGeofence(request.ClockInLocation); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.ClockIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) ClockOut(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.ClockOutRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.checkGeofence(request.ClockOutLocation); err != nil {
		return c.RespondError(err)
	}

	if err := uc.attendance.ClockOut(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetActive(c *web.Context) error {
	response, err := uc.attendance.Active(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetAll(c.Ctx, filter)
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

func (uc Controller) GetByUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.attendance.GetByUser(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

// Export writes the filtered attendance rows to an xlsx file and serves it.
func (uc Controller) Export(c *web.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.attendance.GetAll(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	fileName, err := service.AttendanceReportExcel(list)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "building report"), http.StatusInternalServerError))
	}

	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(fileName)

	return nil
}

func bindFilter(c *web.Context) (attendance.Filter, error) {
	var filter attendance.Filter

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
	if err := c.ValidQuery(); err != nil {
		return attendance.Filter{}, err
	}

	return filter, nil
}

// checkGeofence rejects a clock action reported from outside the workplace
// circle. A missing location is allowed, the coordinates come from browsers
// that may withhold them.
func (uc Controller) checkGeofence(location *string) error {
	if location == nil || *location == "" {
		return nil
	}

	lat, lng, err := ParseLocation(*location)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if Distance(uc.geofence.Latitude, uc.geofence.Longitude, lat, lng) > uc.geofence.Radius {
		return web.NewRequestError(errors.New("location is outside the workplace area"), http.StatusBadRequest)
	}

	return nil
}

// ParseLocation splits a "lat,lng" pair.
func ParseLocation(location string) (float64, float64, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected location format: lat,lng, got %q", location)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing longitude")
	}

	return lat, lng, nil
}

// Distance returns the great-circle distance between two points in meters.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
