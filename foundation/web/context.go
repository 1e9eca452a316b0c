package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps the gin context for a single request. Ctx is the request
// context and is the value handed to repositories, so cancellation of the
// request cancels the database work it started.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

// Respond sends a JSON response back to the client.
func (c *Context) Respond(data interface{}, statusCode int) error {
	c.JSON(statusCode, data)
	return nil
}

// RespondError converts an application error to a JSON error payload. Errors
// without web context are treated as internal.
func (c *Context) RespondError(err error) error {
	if webErr, ok := IsRequestError(err); ok {
		body := gin.H{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			body["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, body)
		return nil
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  err.Error(),
		"status": false,
	})
	return nil
}

// BindFunc binds the request body to obj and verifies that the named struct
// fields were provided.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	return ValidateRequired(obj, requiredFields...)
}

// GetParam parses the named path parameter as the given kind. Parse failures
// are collected and surfaced by ValidParam so call sites can stay linear.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		number, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Wrapf(err, "parsing param %q", name))
			return 0
		}
		return number
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, errors.Errorf("unsupported param kind %s", kind))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}
	return nil
}

// GetQueryFunc parses the named query parameter as the given kind. A missing
// parameter yields nil so the caller's type assertion reports !ok.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)
	if !ok {
		return nil
	}

	switch kind {
	case reflect.Int:
		number, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return nil
		}
		return &number
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return nil
		}
		return &b
	case reflect.String:
		return &value
	default:
		c.queryErrs = append(c.queryErrs, errors.Errorf("unsupported query kind %s", kind))
		return nil
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}
	return nil
}

// ValidateRequired checks by reflection that the named fields of a struct
// (or pointer to struct) carry non-zero values.
func ValidateRequired(obj interface{}, requiredFields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", value.Kind())
	}

	fields := map[string]string{}
	for _, name := range requiredFields {
		field := value.FieldByName(name)
		if !field.IsValid() {
			return errors.Errorf("unknown field %q", name)
		}
		if field.IsZero() {
			fields[name] = fmt.Sprintf("field %s is required", name)
		}
	}

	if len(fields) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}
