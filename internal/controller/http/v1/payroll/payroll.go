package payroll

import (
	"net/http"
	"reflect"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/payroll"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service"
)

type Controller struct {
	payroll Payroll
}

func NewController(payroll Payroll) *Controller {
	return &Controller{payroll}
}

func (uc Controller) GetPayrollEmployees(c *web.Context) error {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return c.RespondError(web.NewRequestError(errors.New("start_date and end_date parameters are required"), http.StatusBadRequest))
	}

	list, err := uc.payroll.Employees(c.Ctx, startDate, endDate)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ProcessPayroll(c *web.Context) error {
	var request payroll.ProcessRequest

	if err := c.BindFunc(&request, "StartDate", "EndDate"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.payroll.Process(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) GetPayrollHistory(c *web.Context) error {
	var filter payroll.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.payroll.History(c.Ctx, filter)
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

// GetPayslip renders one payroll detail row as a PDF and serves it.
func (uc Controller) GetPayslip(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.payroll.PayslipData(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	fileName, err := service.PayslipPDF(detail)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "building payslip"), http.StatusInternalServerError))
	}

	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Type", "application/pdf")
	c.File(fileName)

	return nil
}
